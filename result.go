package fieldschema

// Result is the outcome of a single validation: either a value of type T or
// exactly one Issue, never both.
type Result[T any] struct {
	value T
	issue Issue
	valid bool
}

// Success returns a valid Result holding v.
func Success[T any](v T) Result[T] { return Result[T]{value: v, valid: true} }

// Failure returns an invalid Result carrying it.
func Failure[T any](it Issue) Result[T] { return Result[T]{issue: it} }

// Valid reports whether validation succeeded.
func (r Result[T]) Valid() bool { return r.valid }

// Value returns the validated value, or the zero T when invalid.
func (r Result[T]) Value() T { return r.value }

// Issue returns the failure and true when the result is invalid.
func (r Result[T]) Issue() (Issue, bool) {
	if r.valid {
		return Issue{}, false
	}
	return r.issue, true
}

// Err returns nil on success and a single-entry Issues otherwise, so callers
// can use AsIssues the same way for every error produced by this package.
func (r Result[T]) Err() error {
	if r.valid {
		return nil
	}
	return Issues{r.issue}
}

// Unwrap returns the value and error pair, handy at call sites that prefer
// the usual (v, err) shape.
func (r Result[T]) Unwrap() (T, error) { return r.value, r.Err() }
