package fieldschema

import (
	"strconv"
	"strings"
)

// Path addresses a (possibly nested) field with dot-joined segments such as
// "address.num". It is immutable once parsed.
type Path struct {
	raw      string
	segments []string
}

// ParsePath splits s on '.' and trims every segment. An empty segment
// (leading, trailing or doubled dots, or a blank string) is a configuration
// error wrapping ErrInvalidPath.
func ParsePath(s string) (Path, error) {
	parts := strings.Split(s, ".")
	segs := make([]string, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return Path{}, &ConfigError{Path: s, Err: Configf(ErrInvalidPath, "segment %d of %q is empty", i, s)}
		}
		segs = append(segs, p)
	}
	return Path{raw: strings.Join(segs, "."), segments: segs}, nil
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the normalized dot-joined form.
func (p Path) String() string { return p.raw }

// Segments returns a copy of the parsed segments.
func (p Path) Segments() []string { return append([]string(nil), p.segments...) }

// Resolve walks the path from root. See Resolve.
func (p Path) Resolve(root any) (any, bool) { return Resolve(root, p.segments) }

// Resolve returns the value found at segments inside root. The boolean is
// false when any step lands on something that is not a map (nil and
// primitives included) or the key is absent: a missing intermediate container
// means the field is absent, not malformed.
func Resolve(root any, segments []string) (any, bool) {
	cur := root
	for _, seg := range segments {
		switch m := cur.(type) {
		case map[string]any:
			v, ok := m[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case map[any]any:
			v, ok := m[seg]
			if !ok {
				return nil, false
			}
			cur = v
		default:
			return nil, false
		}
	}
	return cur, true
}

// JoinName extends a display name with a child segment.
func JoinName(name, seg string) string {
	if name == "" {
		return seg
	}
	return name + "." + seg
}

// IndexName extends a display name with an element index, e.g. prices.2.
func IndexName(name string, i int) string { return JoinName(name, strconv.Itoa(i)) }
