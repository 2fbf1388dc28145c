package dsl

import (
	"github.com/reoring/fieldschema/constraint"
)

type typeStep[T any] struct {
	b *builder[T]
	f *openField
}

func (s typeStep[T]) attach(p constraint.Provider) {
	if s.b.live(s.f) {
		s.f.provider = p
	}
}

func (s typeStep[T]) ToBeString() StringStep[T] {
	p := constraint.String()
	s.attach(p)
	return stringStep[T]{builder: s.b, f: s.f, p: p}
}

func (s typeStep[T]) ToBeInteger() IntegerStep[T] {
	p := constraint.Integer()
	s.attach(p)
	return integerStep[T]{builder: s.b, f: s.f, p: p}
}

func (s typeStep[T]) ToBeArray() ArrayStep[T] {
	p := constraint.Array(nil)
	s.attach(p)
	return arrayStep[T]{builder: s.b, f: s.f, p: p}
}

func (s typeStep[T]) ToBeBoolean() BooleanStep[T] {
	s.attach(constraint.Boolean())
	return s.b
}

func (s typeStep[T]) ToBeDateTime() DateTimeStep[T] {
	s.attach(constraint.DateTime())
	return s.b
}

// ----- per-kind steps -----
// Each embeds the builder so Requires/Optional/Build are reachable directly.

type stringStep[T any] struct {
	*builder[T]
	f *openField
	p *constraint.StringProvider
}

func (s stringStep[T]) WithMinLength(n int) StringStep[T] {
	if s.live(s.f) {
		s.p.WithMinLength(n)
	}
	return s
}

func (s stringStep[T]) WithMaxLength(n int) StringStep[T] {
	if s.live(s.f) {
		s.p.WithMaxLength(n)
	}
	return s
}

func (s stringStep[T]) WithRegex(expr string) StringStep[T] {
	if s.live(s.f) {
		s.p.WithRegex(expr)
	}
	return s
}

func (s stringStep[T]) WithUUID() StringStep[T] {
	if s.live(s.f) {
		s.p.WithUUID()
	}
	return s
}

type integerStep[T any] struct {
	*builder[T]
	f *openField
	p *constraint.IntegerProvider
}

func (s integerStep[T]) WithMinValue(n int64) IntegerStep[T] {
	if s.live(s.f) {
		s.p.WithMinValue(n)
	}
	return s
}

func (s integerStep[T]) WithMaxValue(n int64) IntegerStep[T] {
	if s.live(s.f) {
		s.p.WithMaxValue(n)
	}
	return s
}

type arrayStep[T any] struct {
	*builder[T]
	f *openField
	p *constraint.ArrayProvider
}

func (s arrayStep[T]) WithMinLength(n int) ArrayStep[T] {
	if s.live(s.f) {
		s.p.WithMinLength(n)
	}
	return s
}

func (s arrayStep[T]) WithMaxLength(n int) ArrayStep[T] {
	if s.live(s.f) {
		s.p.WithMaxLength(n)
	}
	return s
}

func (s arrayStep[T]) WithElements(elem constraint.Provider) ArrayStep[T] {
	if s.live(s.f) {
		s.p.WithElements(elem)
	}
	return s
}
