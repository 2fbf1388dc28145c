package fieldschema_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fs "github.com/reoring/fieldschema"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := fs.Issues{
		{Path: "a", Code: fs.CodeInvalidType, Message: "m1"},
		{Path: "", Code: fs.CodeParseError, Message: "m2"},
		{Path: "c", Code: fs.CodeTooShort, Message: "m3"},
		{Path: "d", Code: fs.CodeTooLong, Message: "m4"},
	}
	s := iss.Error()
	assert.Contains(t, s, "invalid_type at a: m1")
	assert.Contains(t, s, "parse_error at <root>")
	assert.Contains(t, s, "(total 4)")
	assert.Equal(t, "", fs.Issues(nil).Error())
}

func TestAsIssues(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", fs.Issues{{Path: "x", Code: fs.CodeRequired}})
	iss, ok := fs.AsIssues(wrapped)
	require.True(t, ok)
	assert.Equal(t, "x", iss[0].Path)

	_, ok = fs.AsIssues(errors.New("plain"))
	assert.False(t, ok)
	_, ok = fs.AsIssues(nil)
	assert.False(t, ok)
}

func TestNewIssue_Params(t *testing.T) {
	it := fs.NewIssue("n", fs.CodeTooBig, "msg", "max", 5, "got", 7)
	assert.Equal(t, map[string]any{"max": 5, "got": 7}, it.Params)
	assert.Equal(t, "msg", it.Error())
	assert.Nil(t, fs.NewIssue("n", fs.CodeRequired, "msg").Params)
}

func TestConfigError(t *testing.T) {
	err := fs.WithConfigPath("age", fs.Configf(fs.ErrBoundConflict, "min 5 > max 4"))
	assert.True(t, errors.Is(err, fs.ErrBoundConflict))
	assert.Contains(t, err.Error(), `(field "age")`)

	// an error that already carries a path keeps it
	again := fs.WithConfigPath("other", err)
	var ce *fs.ConfigError
	require.True(t, errors.As(again, &ce))
	assert.Equal(t, "age", ce.Path)

	assert.NoError(t, fs.WithConfigPath("x", nil))
}
