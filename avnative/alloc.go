// alloc.go wraps go-astiav allocations into Result-s.

package avnative

import (
	"context"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avnative/internal"
	"github.com/xaionaro-go/avnative/logger"
	"github.com/xaionaro-go/avnative/result"
)

type ErrAllocationFailed struct {
	What string
}

func (e ErrAllocationFailed) Error() string {
	return fmt.Sprintf("unable to allocate %s", e.What)
}

// allocated turns a nil allocation into a failure and makes the GC free
// the object otherwise.
func allocated[T interface {
	comparable
	Free()
}](
	ctx context.Context,
	what string,
	obj T,
) result.Result[T] {
	var zero T
	if obj == zero {
		logger.Errorf(ctx, "unable to allocate %s", what)
		return result.Fail[T](ErrAllocationFailed{What: what})
	}
	internal.SetFinalizerFree(ctx, obj)
	return result.Ok(obj)
}

func AllocFrame(ctx context.Context) result.Result[*astiav.Frame] {
	return allocated(ctx, "AVFrame", astiav.AllocFrame())
}

func AllocPacket(ctx context.Context) result.Result[*astiav.Packet] {
	return allocated(ctx, "AVPacket", astiav.AllocPacket())
}

func AllocCodecParameters(ctx context.Context) result.Result[*astiav.CodecParameters] {
	return allocated(ctx, "AVCodecParameters", astiav.AllocCodecParameters())
}
