package result

// AndThen maps the value of a success through fn. A failure is passed
// through with the very same error, whatever fn is.
func AndThen[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.isSuccess {
		return Result[U]{err: r.err}
	}
	return Ok(fn(r.value))
}

// AndThenTry is AndThen for a fallible fn.
func AndThenTry[T, U any](r Result[T], fn func(T) (U, error)) Result[U] {
	if !r.isSuccess {
		return Result[U]{err: r.err}
	}
	return Of(fn(r.value))
}

// Collect returns all values if every result is a success, and the first
// failure otherwise.
func Collect[T any](results ...Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if !r.isSuccess {
			return Result[[]T]{err: r.err}
		}
		values = append(values, r.value)
	}
	return Ok(values)
}
