package constraint

import (
	fs "github.com/reoring/fieldschema"
)

// ArrayProvider validates array-like values: []any or any Go slice or array
// except []byte. Each element goes through the nested provider, so arrays of
// arrays nest to any depth.
type ArrayProvider struct {
	errHolder
	length bounds
	elem   Provider
}

// Array returns an array provider whose elements are checked by elem.
func Array(elem Provider) *ArrayProvider {
	return &ArrayProvider{length: unbounded(), elem: elem}
}

func (p *ArrayProvider) Kind() Kind { return KindArray }

// WithMinLength requires at least n elements.
func (p *ArrayProvider) WithMinLength(n int) *ArrayProvider {
	p.keep(p.length.setMin(n))
	return p
}

// WithMaxLength allows at most n elements.
func (p *ArrayProvider) WithMaxLength(n int) *ArrayProvider {
	p.keep(p.length.setMax(n))
	return p
}

// WithElements replaces the element provider.
func (p *ArrayProvider) WithElements(elem Provider) *ArrayProvider {
	p.elem = elem
	return p
}

// Elem returns the element provider (nil when unset).
func (p *ArrayProvider) Elem() Provider { return p.elem }

func (p *ArrayProvider) Compile() (Check, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.elem == nil {
		return nil, fs.Configf(fs.ErrMissingElement, "call WithElements before building")
	}
	if p.containsItself() {
		return nil, fs.Configf(fs.ErrElementCycle, "an array provider is its own element")
	}
	elemCheck, err := p.elem.Compile()
	if err != nil {
		return nil, err
	}
	length := p.length
	return func(v any, name string) error {
		n, at, ok := elements(v)
		if !ok {
			return invalidType(name, KindArray, v)
		}
		if length.min >= 0 && n < length.min {
			return fs.NewIssue(name, fs.CodeTooShort,
				quote(name)+" must contain at least "+count(length.min, "element"),
				"min", length.min, "got", n)
		}
		if length.max >= 0 && n > length.max {
			return fs.NewIssue(name, fs.CodeTooLong,
				quote(name)+" must contain at most "+count(length.max, "element"),
				"max", length.max, "got", n)
		}
		// The lowest failing index wins; later elements are not inspected.
		for i := 0; i < n; i++ {
			if err := elemCheck(at(i), fs.IndexName(name, i)); err != nil {
				return err
			}
		}
		return nil
	}, nil
}

// containsItself reports whether following element providers from p leads
// back to an array provider already on the chain.
func (p *ArrayProvider) containsItself() bool {
	seen := map[*ArrayProvider]bool{p: true}
	for cur := p.elem; ; {
		a, ok := cur.(*ArrayProvider)
		if !ok || a == nil {
			return false
		}
		if seen[a] {
			return true
		}
		seen[a] = true
		cur = a.elem
	}
}
