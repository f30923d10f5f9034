package try

// something have method `Fatal`.
//
// For example in standard libraries: *testing.T, log.Logger
type Fataler interface {
	Fatal(...any)
}

type helperFataler interface {
	Fataler
	Helper()
}

// Wrapper of a pair of (T, error).
//
// When error is nil, such Either is "ok", and T value is handled as valid.
// Otherwise, it is "no good", and T value is not valid.
type Either[T any] struct {
	value T
	err   error
}

// To wraps a (value, error) pair, as Go functions return them.
func To[T any](value T, err error) Either[T] {
	return Either[T]{value: value, err: err}
}

// Get returns the wrapped value & error pair.
func (e Either[T]) Get() (T, error) {
	return e.value, e.err
}

// OrFatal returns the value when the Either is ok.
//
// Otherwise, it calls ftl.Fatal(err). If ftl has a Helper method
// (like *testing.T), that is called before Fatal.
func (e Either[T]) OrFatal(ftl Fataler) T {
	if e.err != nil {
		if h, ok := ftl.(helperFataler); ok {
			h.Helper()
		}
		ftl.Fatal(e.err)
	}
	return e.value
}

// OrDefault returns the value when the Either is ok, and d otherwise.
func (e Either[T]) OrDefault(d T) T {
	if e.err != nil {
		return d
	}
	return e.value
}
