package constraint

import (
	"strconv"

	fs "github.com/reoring/fieldschema"
)

// Kind names the terminal kind a Provider validates.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindArray
	KindBoolean
	KindDateTime
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindArray:
		return "array"
	case KindBoolean:
		return "boolean"
	case KindDateTime:
		return "date-time"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Check validates a resolved value. name is the display path cited in the
// returned fieldschema.Issue.
type Check func(v any, name string) error

// Provider is a bundle of bounds for one kind that compiles into a Check.
type Provider interface {
	Kind() Kind
	// Compile returns the first configuration error recorded while setting
	// bounds, or the compiled Check.
	Compile() (Check, error)
}

// bounds is an inclusive [min,max] pair where -1 means unset. It is shared by
// the length-bounded providers.
type bounds struct {
	min, max int
}

func unbounded() bounds { return bounds{min: -1, max: -1} }

func (b *bounds) setMin(n int) error {
	if n < 0 {
		return fs.Configf(fs.ErrInvalidBound, "min length %d is negative", n)
	}
	if b.max >= 0 && n > b.max {
		return fs.Configf(fs.ErrBoundConflict, "min length %d is greater than max length %d", n, b.max)
	}
	b.min = n
	return nil
}

func (b *bounds) setMax(n int) error {
	if n < 0 {
		return fs.Configf(fs.ErrInvalidBound, "max length %d is negative", n)
	}
	if b.min >= 0 && n < b.min {
		return fs.Configf(fs.ErrBoundConflict, "max length %d is less than min length %d", n, b.min)
	}
	b.max = n
	return nil
}

// errHolder keeps the first configuration error seen by a provider.
type errHolder struct{ err error }

func (h *errHolder) keep(err error) {
	if h.err == nil && err != nil {
		h.err = err
	}
}

// Err returns the first configuration error recorded so far.
func (h *errHolder) Err() error { return h.err }

func invalidType(name string, want Kind, got any) error {
	return fs.NewIssue(name, fs.CodeInvalidType, quote(name)+" must be "+article(want)+" "+want.String(),
		"expected", want.String(), "got", typeName(got))
}

// count renders n with unit, pluralized: "1 element", "3 elements".
func count(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

func quote(name string) string {
	if name == "" {
		return "input"
	}
	return "\"" + name + "\""
}

func article(k Kind) string {
	switch k {
	case KindInteger, KindArray, KindObject:
		return "an"
	default:
		return "a"
	}
}
