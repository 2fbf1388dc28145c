package fieldschema

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/reoring/fieldschema/internal/numeric"
)

// Field is one sealed field checker: the path to resolve, whether absence is
// an error, and the compiled check for the resolved value.
type Field struct {
	path     Path
	required bool
	check    func(v any, name string) error
}

// NewField seals a field. check receives the resolved value and the display
// name to cite in issues.
func NewField(p Path, required bool, check func(v any, name string) error) Field {
	return Field{path: p, required: required, check: check}
}

// Path returns the field path.
func (f Field) Path() Path { return f.path }

// Required reports whether the field must be present.
func (f Field) Required() bool { return f.required }

// Validator is the frozen artifact produced by a schema builder. It holds no
// mutable state and is safe for concurrent use.
type Validator[T any] struct {
	fields []Field
}

// NewValidator freezes fields in declaration order.
func NewValidator[T any](fields []Field) *Validator[T] {
	return &Validator[T]{fields: append([]Field(nil), fields...)}
}

// Fields returns the declared paths in declaration order.
func (v *Validator[T]) Fields() []string {
	out := make([]string, len(v.fields))
	for i, f := range v.fields {
		out[i] = f.path.String()
	}
	return out
}

// Validate runs every field checker against raw in declaration order and
// stops at the first failure. A nil raw behaves like an empty object. On
// success the value is raw itself viewed as T.
func (v *Validator[T]) Validate(raw any) Result[T] {
	if err := v.Check(raw, ""); err != nil {
		return Failure[T](toIssue(err, ""))
	}
	val, err := project[T](raw)
	if err != nil {
		return Failure[T](projectionIssue[T](err))
	}
	return Success(val)
}

// Check validates raw as a nested object whose issues are named under name.
// It lets a Validator act as the element check of an array.
func (v *Validator[T]) Check(raw any, name string) error {
	for _, f := range v.fields {
		fname := JoinName(name, f.path.String())
		val, ok := f.path.Resolve(raw)
		if !ok {
			if f.required {
				return NewIssue(fname, CodeRequired, "\""+fname+"\" is required but missing")
			}
			continue
		}
		if err := f.check(val, fname); err != nil {
			return toIssue(err, fname)
		}
	}
	return nil
}

func toIssue(err error, name string) Issue {
	var it Issue
	if errors.As(err, &it) {
		return it
	}
	if iss, ok := AsIssues(err); ok && len(iss) > 0 {
		return iss[0]
	}
	return Issue{Path: name, Code: CodeInvalidType, Message: err.Error(), Cause: err}
}

// project views raw as T: a direct type assertion when the dynamic type
// matches, otherwise a JSON round trip (e.g. map input into a struct T).
func project[T any](raw any) (T, error) {
	var out T
	if raw == nil {
		return out, nil
	}
	if t, ok := raw.(T); ok {
		return t, nil
	}
	b, err := json.Marshal(projectable(raw))
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, err
	}
	return out, nil
}

// projectable copies v with every integral number rewritten as int64, so
// 120.0 accepted by an integer field lands in an int struct field. YAML maps
// with non-string keys become map[string]any. v itself is never modified.
func projectable(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = projectable(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = projectable(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = projectable(e)
		}
		return out
	case float32, float64, json.Number:
		if n, class := numeric.Classify(t); class == numeric.Whole {
			return n
		}
	}
	return v
}

// projectionIssue reports a T that disagrees with the declared fields. It is
// a programming error rather than bad input; the Cause wraps ErrProjection.
func projectionIssue[T any](err error) Issue {
	var target T
	it := Issue{
		Code:    CodeProjection,
		Message: fmt.Sprintf("validated input cannot be stored in %T", target),
		Cause:   fmt.Errorf("%w: %w", ErrProjection, err),
	}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		it.Path = ute.Field
		it.Message = fmt.Sprintf("%q cannot be stored in %T", ute.Field, target)
	}
	return it
}
