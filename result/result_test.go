package result

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avnative/types"
)

func TestOk(t *testing.T) {
	r := Ok(5)
	require.True(t, r.IsSuccess())
	require.False(t, r.IsFailure())
	require.Equal(t, 5, r.Value())
	require.NoError(t, r.Err())

	v, err := r.Unwrap()
	require.NoError(t, err)
	require.Equal(t, 5, v)
}

func TestFail(t *testing.T) {
	e := errors.New("native call failed")
	r := Fail[int](e)
	require.False(t, r.IsSuccess())
	require.True(t, r.IsFailure())
	require.Same(t, e, r.Err())
	require.PanicsWithError(t, e.Error(), func() {
		r.Value()
	})

	_, err := r.Unwrap()
	require.Same(t, e, err)
}

func TestFailWithoutErrorIsContractViolation(t *testing.T) {
	require.PanicsWithValue(t, types.ErrContractViolation{Err: types.ErrMissingError{}}, func() {
		Fail[int](nil)
	})
}

func TestOkOfErrorTypeIsContractViolation(t *testing.T) {
	require.Panics(t, func() {
		Ok[error](io.EOF)
	})
	require.Panics(t, func() {
		Ok(&fs{})
	})
}

type fs struct{}

func (*fs) Error() string { return "fs" }

func TestZeroValue(t *testing.T) {
	var r Result[string]
	require.False(t, r.IsSuccess())
	require.Equal(t, ErrUninitialized{}, r.Err())
	require.Equal(t, "fallback", r.Or("fallback"))
	require.Panics(t, func() {
		r.Value()
	})
}

func TestOf(t *testing.T) {
	require.True(t, Of(1, nil).IsSuccess())
	r := Of(0, io.EOF)
	require.False(t, r.IsSuccess())
	require.ErrorIs(t, r.Err(), io.EOF)
}

func TestOr(t *testing.T) {
	require.Equal(t, 5, Ok(5).Or(7))
	require.Equal(t, 7, Fail[int](io.EOF).Or(7))

	def := Ok(9)
	require.Equal(t, 5, Ok(5).OrResult(def).Value())
	require.Equal(t, 9, Fail[int](io.EOF).OrResult(def).Value())
	require.ErrorIs(t, Fail[int](io.EOF).OrResult(Fail[int](io.ErrClosedPipe)).Err(), io.ErrClosedPipe)
}

func TestIfSuccess(t *testing.T) {
	var got []int
	require.True(t, Ok(3).IfSuccess(func(v int) { got = append(got, v) }))
	require.False(t, Fail[int](io.EOF).IfSuccess(func(v int) { got = append(got, v) }))
	require.Equal(t, []int{3}, got)

	require.PanicsWithValue(t, "boom", func() {
		Ok(3).IfSuccess(func(int) { panic("boom") })
	})

	var gotErr error
	require.False(t, Ok(3).IfFailure(func(err error) { gotErr = err }))
	require.True(t, Fail[int](io.EOF).IfFailure(func(err error) { gotErr = err }))
	require.Equal(t, io.EOF, gotErr)
}

func TestAndThen(t *testing.T) {
	r := AndThen(Ok(5), func(x int) int { return x * 2 })
	require.Equal(t, 10, r.Value())

	s := AndThen(Ok(5), func(x int) string { return fmt.Sprint(x) })
	require.Equal(t, "5", s.Value())

	e := errors.New("some error")
	called := false
	f := AndThen(Fail[int](e), func(x int) string {
		called = true
		return fmt.Sprint(x)
	})
	require.False(t, called)
	require.False(t, f.IsSuccess())
	require.Same(t, e, f.Err())

	var zero Result[int]
	require.Equal(t, ErrUninitialized{}, AndThen(zero, func(x int) int { return x }).Err())
}

func TestAndThenTry(t *testing.T) {
	r := AndThenTry(Ok(5), func(x int) (int, error) { return x + 1, nil })
	require.Equal(t, 6, r.Value())

	r = AndThenTry(Ok(5), func(x int) (int, error) { return 0, io.EOF })
	require.ErrorIs(t, r.Err(), io.EOF)

	r = AndThenTry(Fail[int](io.ErrUnexpectedEOF), func(x int) (int, error) { return x, nil })
	require.ErrorIs(t, r.Err(), io.ErrUnexpectedEOF)
}

func TestCollect(t *testing.T) {
	require.Equal(t, []int{1, 2}, Collect(Ok(1), Ok(2)).Value())
	require.Equal(t, []int{}, Collect[int]().Value())
	require.ErrorIs(t, Collect(Ok(1), Fail[int](io.EOF), Fail[int](io.ErrClosedPipe)).Err(), io.EOF)
}

func TestSequence(t *testing.T) {
	var got []int
	for v := range Ok(4).All() {
		got = append(got, v)
	}
	require.Equal(t, []int{4}, got)

	got = nil
	for v := range Fail[int](io.EOF).All() {
		got = append(got, v)
	}
	require.Empty(t, got)

	require.Equal(t, []int{4}, Ok(4).Slice())
	require.Empty(t, Fail[int](io.EOF).Slice())
}

func TestEquality(t *testing.T) {
	require.True(t, EqualsValue(Ok(5), 5))
	require.False(t, EqualsValue(Ok(5), 6))
	require.False(t, EqualsValue(Fail[int](io.EOF), 0))
	require.False(t, EqualsValue(Result[int]{}, 0))

	require.True(t, Equal(Ok(5), Ok(5)))
	require.False(t, Equal(Ok(5), Ok(6)))
	require.False(t, Equal(Ok(5), Fail[int](io.EOF)))
	require.True(t, Equal(Fail[int](io.EOF), Fail[int](io.EOF)))
	require.False(t, Equal(Fail[int](io.EOF), Fail[int](errors.New(io.EOF.Error()))))
	require.True(t, Equal(Result[int]{}, Result[int]{}))
}

type multiError struct {
	errs []string
}

func (e multiError) Error() string { return fmt.Sprint(e.errs) }

func TestEqualityOfUncomparableErrors(t *testing.T) {
	wrapped := types.ErrContractViolation{Err: multiError{errs: []string{"x"}}}
	require.NotPanics(t, func() {
		require.False(t, Equal(Fail[int](wrapped), Fail[int](wrapped)))
	})

	direct := multiError{errs: []string{"x"}}
	require.False(t, Equal(Fail[int](direct), Fail[int](direct)))

	plain := types.ErrContractViolation{Err: io.EOF}
	require.True(t, Equal(Fail[int](plain), Fail[int](plain)))
}

func TestOkErrorTypeCheckIsStable(t *testing.T) {
	for range 3 {
		require.True(t, Ok(1).IsSuccess())
		require.Panics(t, func() {
			Ok[error](io.EOF)
		})
	}
	require.True(t, isErrorTyped[*fs]())
	require.False(t, isErrorTyped[fs]())
	require.False(t, isErrorTyped[int]())
}

func TestOptional(t *testing.T) {
	opt := Ok("x").Optional()
	require.True(t, opt.IsSet())
	require.Equal(t, "x", opt.Get())
	require.False(t, Fail[string](io.EOF).Optional().IsSet())
}

func TestString(t *testing.T) {
	require.Equal(t, "Success(5)", Ok(5).String())
	require.Equal(t, "Failure(EOF)", Fail[int](io.EOF).String())
	require.Equal(t, "Failure(the result was never initialized)", Result[int]{}.String())
}
