// result.go implements Result, a success value or an error.

// Package result provides Result, the return wrapper for operations on
// native resources that can fail: it carries either a value or an error,
// and composes without checking the error at every step.
package result

import (
	"context"
	"fmt"
	"reflect"

	"github.com/xaionaro-go/avnative/internal"
	"github.com/xaionaro-go/avnative/types"
	"github.com/xaionaro-go/typing"
	"github.com/xaionaro-go/xsync"
)

// Result is either a success carrying a value, or a failure carrying a
// non-nil error. The zero value is a failure with ErrUninitialized.
//
// T must not be an error type.
type Result[T any] struct {
	value     T
	err       error
	isSuccess bool
}

type ErrUninitialized struct{}

func (ErrUninitialized) Error() string {
	return "the result was never initialized"
}

var (
	errorType = reflect.TypeFor[error]()

	isErrorTypedCache xsync.Map[reflect.Type, bool]
)

func isErrorTyped[T any]() bool {
	t := reflect.TypeFor[T]()
	if v, ok := isErrorTypedCache.Load(t); ok {
		return v
	}
	v := t.Implements(errorType)
	isErrorTypedCache.Store(t, v)
	return v
}

func Ok[T any](value T) Result[T] {
	internal.Assert(context.TODO(), !isErrorTyped[T](), func() error {
		return types.ErrErrorTypedValue{TypeName: reflect.TypeFor[T]().String()}
	})
	return Result[T]{
		value:     value,
		isSuccess: true,
	}
}

// Fail returns a failure carrying err. A nil err is a contract violation
// (the call panics), not a failure.
func Fail[T any](err error) Result[T] {
	internal.Assert(context.TODO(), err != nil, func() error {
		return types.ErrMissingError{}
	})
	return Result[T]{
		err: err,
	}
}

// Of converts the usual (value, error) pair.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(value)
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Err returns nil on success, and the (non-nil) error otherwise.
func (r Result[T]) Err() error {
	if r.isSuccess {
		return nil
	}
	if r.err == nil {
		return ErrUninitialized{}
	}
	return r.err
}

// Unwrap returns the value and the error, Go style.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.Err()
}

// Value returns the value of a success, and panics with the error of a
// failure.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic(r.Err())
	}
	return r.value
}

func (r Result[T]) Or(defaultValue T) T {
	if !r.isSuccess {
		return defaultValue
	}
	return r.value
}

func (r Result[T]) OrResult(defaultResult Result[T]) Result[T] {
	if !r.isSuccess {
		return defaultResult
	}
	return r
}

// IfSuccess calls fn with the value on success and reports whether it was
// called. Panics from fn are not recovered.
func (r Result[T]) IfSuccess(fn func(T)) bool {
	if !r.isSuccess {
		return false
	}
	fn(r.value)
	return true
}

func (r Result[T]) IfFailure(fn func(error)) bool {
	if r.isSuccess {
		return false
	}
	fn(r.Err())
	return true
}

// Optional is the value as a typing.Optional: set on success only.
func (r Result[T]) Optional() typing.Optional[T] {
	if !r.isSuccess {
		return typing.Optional[T]{}
	}
	return typing.Opt(r.value)
}

func (r Result[T]) String() string {
	if !r.isSuccess {
		return fmt.Sprintf("Failure(%v)", r.Err())
	}
	return fmt.Sprintf("Success(%v)", r.value)
}
