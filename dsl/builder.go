package dsl

import (
	fs "github.com/reoring/fieldschema"
	"github.com/reoring/fieldschema/constraint"
)

// builder is the single mutable state behind every step. It is not safe for
// concurrent use; hand the built Validator to other goroutines instead.
type builder[T any] struct {
	fields []fs.Field
	cur    *openField
	err    error
}

// openField is the field being configured. It is sealed into an fs.Field when
// the next field opens or Build runs.
type openField struct {
	raw      string
	path     fs.Path
	required bool
	invalid  bool
	provider constraint.Provider
}

// New starts a schema whose validated values are viewed as T.
func New[T any]() BuildStep[T] { return &builder[T]{} }

func (b *builder[T]) Requires(path string) TypeStep[T] { return b.open(path, true) }

func (b *builder[T]) Optional(path string) TypeStep[T] { return b.open(path, false) }

func (b *builder[T]) open(path string, required bool) TypeStep[T] {
	b.seal()
	f := &openField{raw: path, required: required}
	p, err := fs.ParsePath(path)
	if err != nil {
		b.keep(err)
		f.invalid = true
	} else {
		f.path = p
	}
	b.cur = f
	return typeStep[T]{b: b, f: f}
}

func (b *builder[T]) Build() (*fs.Validator[T], error) {
	b.seal()
	if b.err != nil {
		return nil, b.err
	}
	return fs.NewValidator[T](b.fields), nil
}

func (b *builder[T]) MustBuild() *fs.Validator[T] {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}
	return v
}

// seal compiles the open field's provider and appends the resulting checker.
func (b *builder[T]) seal() {
	f := b.cur
	b.cur = nil
	if f == nil || f.invalid {
		return
	}
	if f.provider == nil {
		b.keep(&fs.ConfigError{Path: f.raw, Err: fs.ErrUntypedField})
		return
	}
	check, err := f.provider.Compile()
	if err != nil {
		b.keep(fs.WithConfigPath(f.path.String(), err))
		return
	}
	b.fields = append(b.fields, fs.NewField(f.path, f.required, check))
}

func (b *builder[T]) keep(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

// live reports whether f is still the open field; configuring a field after
// it was sealed is a configuration error.
func (b *builder[T]) live(f *openField) bool {
	if b.cur == f {
		return true
	}
	b.keep(&fs.ConfigError{Path: f.raw, Err: fs.ErrFieldSealed})
	return false
}
