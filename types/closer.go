// closer.go defines the Closer interface.

package types

import (
	"context"
)

// Closer is implemented by owners of native resources (e.g. arenas).
type Closer interface {
	Close(context.Context) error
}
