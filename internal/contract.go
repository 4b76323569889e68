// contract.go provides reporting of caller precondition breaches.

package internal

import (
	"context"

	"github.com/xaionaro-go/avnative/logger"
	"github.com/xaionaro-go/avnative/types"
)

// Violation logs the breach and panics with types.ErrContractViolation
// wrapping err.
func Violation(
	ctx context.Context,
	err error,
) {
	logger.Errorf(ctx, "contract violation: %v", err)
	panic(types.ErrContractViolation{Err: err})
}

// Assert raises a contract violation built by errFn if mustBeTrue is false.
// errFn is only called on failure.
func Assert(
	ctx context.Context,
	mustBeTrue bool,
	errFn func() error,
) {
	if mustBeTrue {
		return
	}

	Violation(ctx, errFn())
}
