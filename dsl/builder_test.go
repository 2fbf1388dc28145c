package dsl_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fs "github.com/reoring/fieldschema"
	"github.com/reoring/fieldschema/constraint"
	"github.com/reoring/fieldschema/dsl"
)

func TestBuild_EmptySchemaAcceptsAnything(t *testing.T) {
	v, err := dsl.New[any]().Build()
	require.NoError(t, err)
	assert.Empty(t, v.Fields())
	assert.True(t, v.Validate(nil).Valid())
	assert.True(t, v.Validate("whatever").Valid())
	assert.Equal(t, "whatever", v.Validate("whatever").Value())
}

func TestBuild_AllKinds(t *testing.T) {
	v, err := dsl.New[map[string]any]().
		Requires("name").ToBeString().WithMinLength(1).WithMaxLength(20).WithRegex(`^[A-Za-z ]+$`).
		Requires("id").ToBeString().WithUUID().
		Requires("age").ToBeInteger().WithMinValue(0).WithMaxValue(150).
		Optional("tags").ToBeArray().WithMinLength(0).WithMaxLength(5).WithElements(constraint.String()).
		Requires("active").ToBeBoolean().
		Optional("joinedAt").ToBeDateTime().
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "id", "age", "tags", "active", "joinedAt"}, v.Fields())

	res := v.Validate(map[string]any{
		"name":     "Ada Lovelace",
		"id":       "3f1c6a8e-2b7d-4c1e-9a55-0d2f6b7e8c91",
		"age":      36,
		"tags":     []any{"math"},
		"active":   true,
		"joinedAt": "1843-07-01T00:00:00Z",
	})
	assert.True(t, res.Valid(), "%v", res.Err())
}

func TestBuild_BoundConflictIsBuildTimeError(t *testing.T) {
	_, err := dsl.New[map[string]any]().
		Requires("name").ToBeString().WithMinLength(5).WithMaxLength(4).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrBoundConflict))
	var ce *fs.ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "name", ce.Path)

	assert.Panics(t, func() {
		dsl.New[map[string]any]().
			Requires("n").ToBeInteger().WithMaxValue(1).WithMinValue(2).
			MustBuild()
	})
}

func TestBuild_ConflictOnEarlierFieldStillReported(t *testing.T) {
	_, err := dsl.New[map[string]any]().
		Requires("a").ToBeString().WithMinLength(5).WithMaxLength(4).
		Requires("b").ToBeBoolean().
		Build()
	assert.ErrorIs(t, err, fs.ErrBoundConflict)
}

func TestBuild_InvalidPath(t *testing.T) {
	for _, p := range []string{"", "a.", ".a", "a..b"} {
		_, err := dsl.New[map[string]any]().Requires(p).ToBeString().Build()
		assert.ErrorIs(t, err, fs.ErrInvalidPath, "path %q", p)
	}
}

func TestBuild_ArrayWithoutElements(t *testing.T) {
	_, err := dsl.New[map[string]any]().Requires("xs").ToBeArray().WithMinLength(1).Build()
	assert.ErrorIs(t, err, fs.ErrMissingElement)
}

func TestBuild_InvalidRegex(t *testing.T) {
	_, err := dsl.New[map[string]any]().Requires("s").ToBeString().WithRegex(`[`).Build()
	assert.ErrorIs(t, err, fs.ErrInvalidRegex)
}

func TestBuild_UntypedField(t *testing.T) {
	b := dsl.New[map[string]any]()
	b.Requires("forgotten")
	_, err := b.Build()
	assert.ErrorIs(t, err, fs.ErrUntypedField)
}

func TestBuild_ConfiguringSealedFieldFails(t *testing.T) {
	b := dsl.New[map[string]any]()
	name := b.Requires("name").ToBeString()
	name.Requires("age").ToBeInteger()
	// name was sealed when age opened
	name.WithMinLength(3)
	_, err := b.Build()
	assert.ErrorIs(t, err, fs.ErrFieldSealed)
}

func TestBuild_SealedBoundsAreFrozen(t *testing.T) {
	b := dsl.New[map[string]any]()
	step := b.Requires("name").ToBeString().WithMinLength(1)
	v, err := step.Build()
	require.NoError(t, err)
	step.WithMinLength(10)
	assert.True(t, v.Validate(map[string]any{"name": "ab"}).Valid())
}

func TestBuild_DuplicatePathsRunInOrder(t *testing.T) {
	v := dsl.New[map[string]any]().
		Requires("code").ToBeString().WithMinLength(2).
		Requires("code").ToBeString().WithRegex(`^[A-Z]+$`).
		MustBuild()
	assert.Equal(t, fs.CodeTooShort, mustIssue(t, v.Validate(map[string]any{"code": "a"})).Code)
	assert.Equal(t, fs.CodePattern, mustIssue(t, v.Validate(map[string]any{"code": "ab"})).Code)
	assert.True(t, v.Validate(map[string]any{"code": "AB"}).Valid())
}

func TestBuild_NestedValidatorAsElement(t *testing.T) {
	line := dsl.New[map[string]any]().
		Requires("sku").ToBeString().
		Requires("prices").ToBeArray().WithElements(constraint.Integer().WithMinValue(0)).
		MustBuild()
	order := dsl.New[map[string]any]().
		Requires("lines").ToBeArray().WithMinLength(1).WithElements(constraint.Object(line)).
		MustBuild()

	it := mustIssue(t, order.Validate(map[string]any{
		"lines": []any{map[string]any{"sku": "a", "prices": []any{1, -2}}},
	}))
	assert.Equal(t, "lines.0.prices.1", it.Path)
}

func mustIssue[T any](t *testing.T, r fs.Result[T]) fs.Issue {
	t.Helper()
	it, ok := r.Issue()
	require.True(t, ok, "expected invalid result")
	return it
}
