/*
Package result provides a sum type for the outcome of a computation that
may fail.

A Result either holds a value (Ok) or an error (Err). It is used at build
boundaries, where a computation wants to hand back both the fact that it
failed and what went wrong, without two separate calls.

Clients either pattern-match:

    var v *Thing
    var err error
    switch m := r.Match(); m {
    case m.Ok(&v):
        …
    case m.Err(&err):
        …
    }

or unpack the Go way:

    v, err := r.Get()

*/
package result

import "fmt"

// Result is the result of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)     // unpack into value and error
	IsOk() bool          // does the result carry a value?
	WithDefault(T) T     // value if Ok, else the default
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error. A nil error is turned into an error anyway, as an
// Err without an error would be indistinguishable from Ok.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = fmt.Errorf("result: Err called with nil error")
	}
	return result[T]{err: err}
}

// Of creates a result from a Go-style (value, error) pair.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

// Try calls f and captures its outcome. A panic within f is recovered
// and turned into an Err.
func Try[T any](f func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				r = Err[T](fmt.Errorf("recovered: %w", e))
			} else {
				r = Err[T](fmt.Errorf("recovered: %v", p))
			}
		}
	}()
	return Of(f())
}

// Map applies f to the value of an Ok result.
func Map[T, S any](r Result[T], f func(T) S) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// --- Matching --------------------------------------------------------------

// Matcher is used to pattern-match on a Result in a switch statement.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
