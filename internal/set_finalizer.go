package internal

import (
	"context"
	"runtime"

	"github.com/xaionaro-go/avnative/logger"
)

// SetFinalizerFree makes the GC release the native side of freer once the
// Go wrapper becomes unreachable. avnative attaches it to every astiav
// object it allocates; astiav's Free clears the C pointer, so an explicit
// Free before the finalizer runs leaves nothing for it to release.
func SetFinalizerFree[T interface{ Free() }](
	ctx context.Context,
	freer T,
) {
	runtime.SetFinalizer(freer, func(freer T) {
		logger.Debugf(ctx, "freeing %T", freer)
		freer.Free()
	})
}
