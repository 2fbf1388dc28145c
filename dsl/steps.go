package dsl

import (
	fs "github.com/reoring/fieldschema"
	"github.com/reoring/fieldschema/constraint"
)

// BuildStep is the state with no field being typed: open a new field or
// freeze the schema.
type BuildStep[T any] interface {
	// Requires opens a field that must be present.
	Requires(path string) TypeStep[T]
	// Optional opens a field that is skipped when absent.
	Optional(path string) TypeStep[T]
	// Build seals the open field and returns the frozen Validator, or the
	// first configuration error recorded while building.
	Build() (*fs.Validator[T], error)
	// MustBuild is like Build but panics on error.
	MustBuild() *fs.Validator[T]
}

// TypeStep chooses the terminal kind of the field just opened.
type TypeStep[T any] interface {
	ToBeString() StringStep[T]
	ToBeInteger() IntegerStep[T]
	ToBeArray() ArrayStep[T]
	ToBeBoolean() BooleanStep[T]
	ToBeDateTime() DateTimeStep[T]
}

// StringStep configures a string field.
type StringStep[T any] interface {
	BuildStep[T]
	WithMinLength(n int) StringStep[T]
	WithMaxLength(n int) StringStep[T]
	// WithRegex matches the trimmed value against expr without adding anchors.
	WithRegex(expr string) StringStep[T]
	WithUUID() StringStep[T]
}

// IntegerStep configures an integer field.
type IntegerStep[T any] interface {
	BuildStep[T]
	WithMinValue(n int64) IntegerStep[T]
	WithMaxValue(n int64) IntegerStep[T]
}

// ArrayStep configures an array field. WithElements is mandatory.
type ArrayStep[T any] interface {
	BuildStep[T]
	WithMinLength(n int) ArrayStep[T]
	WithMaxLength(n int) ArrayStep[T]
	WithElements(elem constraint.Provider) ArrayStep[T]
}

// BooleanStep has no bounds.
type BooleanStep[T any] interface {
	BuildStep[T]
}

// DateTimeStep has no bounds; the RFC 3339 format check is implied.
type DateTimeStep[T any] interface {
	BuildStep[T]
}
