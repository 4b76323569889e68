// call.go wraps fallible go-astiav calls into Result-s.

package avnative

import (
	"context"
	"errors"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/davecgh/go-spew/spew"
	"github.com/xaionaro-go/avnative/logger"
	"github.com/xaionaro-go/avnative/result"
)

func Call[T any](
	ctx context.Context,
	name string,
	fn func() (T, error),
) (_ret result.Result[T]) {
	logger.Tracef(ctx, "%s", name)
	defer func() { logger.Tracef(ctx, "/%s: %s", name, _ret) }()

	v, err := fn()
	if err != nil {
		return result.Fail[T](fmt.Errorf("%s failed: %w", name, err))
	}
	return result.Ok(v)
}

func CallErr(
	ctx context.Context,
	name string,
	fn func() error,
) result.Result[struct{}] {
	return Call(ctx, name, func() (struct{}, error) {
		return struct{}{}, fn()
	})
}

func IsEOF(err error) bool {
	return errors.Is(err, astiav.ErrEof)
}

func IsAgain(err error) bool {
	return errors.Is(err, astiav.ErrEagain)
}

// TraceNative dumps the C structure behind a go-astiav object.
func TraceNative(ctx context.Context, obj any) {
	field, ok := cPointerField(obj)
	if !ok || field.Elem().IsNil() {
		logger.Tracef(ctx, "%T: <nil>", obj)
		return
	}
	logger.Tracef(ctx, "%T: %s", obj, spew.Sdump(field.Elem().Elem().Interface()))
}
