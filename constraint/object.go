package constraint

import (
	"reflect"

	fs "github.com/reoring/fieldschema"
)

// Nested is satisfied by *fieldschema.Validator[T]: it validates an object
// and names issues under the given prefix.
type Nested interface {
	Check(v any, name string) error
}

// ObjectProvider validates a map value with a nested Validator, typically as
// the element provider of an array of objects.
type ObjectProvider struct {
	nested Nested
}

// Object returns a provider delegating to nested.
func Object(nested Nested) *ObjectProvider { return &ObjectProvider{nested: nested} }

func (p *ObjectProvider) Kind() Kind { return KindObject }

func (p *ObjectProvider) Compile() (Check, error) {
	if isNil(p.nested) {
		return nil, fs.Configf(fs.ErrMissingElement, "object provider has no validator")
	}
	nested := p.nested
	return func(v any, name string) error {
		switch v.(type) {
		case map[string]any, map[any]any:
			return nested.Check(v, name)
		default:
			return invalidType(name, KindObject, v)
		}
	}, nil
}

// isNil also catches a typed nil such as (*fieldschema.Validator[T])(nil).
func isNil(n Nested) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}
