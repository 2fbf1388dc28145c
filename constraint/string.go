package constraint

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	fs "github.com/reoring/fieldschema"
)

// StringProvider validates strings. Leading and trailing whitespace is
// trimmed before every bound check; lengths count runes.
type StringProvider struct {
	errHolder
	length bounds
	re     *regexp.Regexp
	uuid   bool
}

// String returns an unbounded string provider.
func String() *StringProvider { return &StringProvider{length: unbounded()} }

func (p *StringProvider) Kind() Kind { return KindString }

// WithMinLength requires at least n characters after trimming.
func (p *StringProvider) WithMinLength(n int) *StringProvider {
	p.keep(p.length.setMin(n))
	return p
}

// WithMaxLength allows at most n characters after trimming.
func (p *StringProvider) WithMaxLength(n int) *StringProvider {
	p.keep(p.length.setMax(n))
	return p
}

// WithRegex requires the trimmed value to match expr. The expression is used
// as written; add ^ and $ yourself for a full match.
func (p *StringProvider) WithRegex(expr string) *StringProvider {
	re, err := regexp.Compile(expr)
	if err != nil {
		p.keep(fs.Configf(fs.ErrInvalidRegex, "%q: %v", expr, err))
		return p
	}
	p.re = re
	return p
}

// WithUUID requires the trimmed value to be a UUID.
func (p *StringProvider) WithUUID() *StringProvider {
	p.uuid = true
	return p
}

func (p *StringProvider) Compile() (Check, error) {
	if p.err != nil {
		return nil, p.err
	}
	length, re, wantUUID := p.length, p.re, p.uuid
	return func(v any, name string) error {
		raw, ok := stringValue(v)
		if !ok {
			return invalidType(name, KindString, v)
		}
		s := strings.TrimSpace(raw)
		n := utf8.RuneCountInString(s)
		if length.min >= 0 && n < length.min {
			return fs.NewIssue(name, fs.CodeTooShort,
				quote(name)+" must be at least "+count(length.min, "character")+" long",
				"min", length.min, "got", n)
		}
		if length.max >= 0 && n > length.max {
			return fs.NewIssue(name, fs.CodeTooLong,
				quote(name)+" must be at most "+count(length.max, "character")+" long",
				"max", length.max, "got", n)
		}
		if re != nil && !re.MatchString(s) {
			return fs.NewIssue(name, fs.CodePattern,
				quote(name)+" does not match pattern "+re.String(),
				"pattern", re.String())
		}
		if wantUUID {
			if _, err := uuid.Parse(s); err != nil {
				it := fs.NewIssue(name, fs.CodeInvalidFormat, quote(name)+" must be a UUID", "format", "uuid")
				it.Cause = err
				return it
			}
		}
		return nil
	}, nil
}
