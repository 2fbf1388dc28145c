package constraint

import (
	"strconv"

	fs "github.com/reoring/fieldschema"
	"github.com/reoring/fieldschema/internal/numeric"
)

// IntegerProvider validates whole numbers with optional inclusive bounds.
//
// Any mathematically integral number is accepted, so 1.0 decoded as float64
// passes while 1.5 fails with not_integer. json.Number literals are judged on
// their digits, so precision beyond float64 is never lost.
type IntegerProvider struct {
	errHolder
	min, max       int64
	hasMin, hasMax bool
}

// Integer returns an unbounded integer provider.
func Integer() *IntegerProvider { return &IntegerProvider{} }

func (p *IntegerProvider) Kind() Kind { return KindInteger }

// WithMinValue sets the inclusive lower bound.
func (p *IntegerProvider) WithMinValue(n int64) *IntegerProvider {
	if p.hasMax && n > p.max {
		p.keep(fs.Configf(fs.ErrBoundConflict, "min value %d is greater than max value %d", n, p.max))
		return p
	}
	p.min, p.hasMin = n, true
	return p
}

// WithMaxValue sets the inclusive upper bound.
func (p *IntegerProvider) WithMaxValue(n int64) *IntegerProvider {
	if p.hasMin && n < p.min {
		p.keep(fs.Configf(fs.ErrBoundConflict, "max value %d is less than min value %d", n, p.min))
		return p
	}
	p.max, p.hasMax = n, true
	return p
}

func (p *IntegerProvider) Compile() (Check, error) {
	if p.err != nil {
		return nil, p.err
	}
	min, max, hasMin, hasMax := p.min, p.max, p.hasMin, p.hasMax
	tooSmall := func(name string, got any) error {
		return fs.NewIssue(name, fs.CodeTooSmall,
			quote(name)+" must be greater than or equal to "+strconv.FormatInt(min, 10),
			"min", min, "got", got)
	}
	tooBig := func(name string, got any) error {
		return fs.NewIssue(name, fs.CodeTooBig,
			quote(name)+" must be less than or equal to "+strconv.FormatInt(max, 10),
			"max", max, "got", got)
	}
	return func(v any, name string) error {
		n, class := numeric.Classify(v)
		switch class {
		case numeric.NotNumber:
			return invalidType(name, KindInteger, v)
		case numeric.Fractional:
			return fs.NewIssue(name, fs.CodeNotInteger, quote(name)+" must be a whole number", "got", v)
		case numeric.TooLarge:
			if hasMax {
				return tooBig(name, v)
			}
			return nil
		case numeric.TooNegative:
			if hasMin {
				return tooSmall(name, v)
			}
			return nil
		}
		if hasMin && n < min {
			return tooSmall(name, n)
		}
		if hasMax && n > max {
			return tooBig(name, n)
		}
		return nil
	}, nil
}
