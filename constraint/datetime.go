package constraint

import (
	"strings"
	"time"

	fs "github.com/reoring/fieldschema"
)

// DateTimeProvider accepts RFC 3339 timestamps given as strings (trimmed
// first) and time.Time values such as those produced by YAML decoding.
type DateTimeProvider struct{}

// DateTime returns the date-time provider.
func DateTime() *DateTimeProvider { return &DateTimeProvider{} }

func (p *DateTimeProvider) Kind() Kind { return KindDateTime }

func (p *DateTimeProvider) Compile() (Check, error) {
	return func(v any, name string) error {
		switch t := v.(type) {
		case time.Time:
			return nil
		case string:
			if _, err := parseRFC3339(strings.TrimSpace(t)); err != nil {
				it := fs.NewIssue(name, fs.CodeInvalidFormat, quote(name)+" must be an RFC 3339 date-time", "format", "date-time")
				it.Cause = err
				return it
			}
			return nil
		default:
			return fs.NewIssue(name, fs.CodeInvalidType, quote(name)+" must be a date-time string",
				"expected", KindDateTime.String(), "got", typeName(v))
		}
	}, nil
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
