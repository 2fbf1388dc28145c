package fieldschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodePattern       = "pattern"
	CodeInvalidFormat = "invalid_format"
	CodeNotInteger    = "not_integer"
	CodeParseError    = "parse_error"
	CodeDuplicateKey  = "duplicate_key"
	CodeProjection    = "projection" // validated value does not fit T; a schema mistake, not bad input
)

// Issue represents a single validation failure.
type Issue struct {
	Path    string // Dot-joined field path (for example: prices.2). Empty for the root.
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"min":1, "max":10, "got":42}).
	Params map[string]any
	Cause  error // Optional: underlying error.
}

func (it Issue) Error() string { return it.Message }

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. too_short at username: "username" must be at least 5 characters long
		fmt.Fprintf(b, "%s at %s: %s", it.Code, displayPath(it.Path), it.Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// NewIssue builds an Issue for the field named name. kv is an alternating
// list of param keys and values.
func NewIssue(name, code, msg string, kv ...any) Issue {
	it := Issue{Path: name, Code: code, Message: msg}
	if len(kv) > 1 {
		it.Params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			it.Params[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return it
}

func displayPath(p string) string {
	if p == "" {
		return "<root>"
	}
	return p
}

// Configuration error sentinels. They are returned (wrapped in *ConfigError)
// while a schema is being built and never from Validate.
var (
	ErrInvalidPath    = errors.New("fieldschema: invalid path")
	ErrBoundConflict  = errors.New("fieldschema: conflicting bounds")
	ErrInvalidBound   = errors.New("fieldschema: invalid bound")
	ErrInvalidRegex   = errors.New("fieldschema: invalid regex")
	ErrUntypedField   = errors.New("fieldschema: field has no type")
	ErrMissingElement = errors.New("fieldschema: array has no element provider")
	ErrFieldSealed    = errors.New("fieldschema: field already sealed")
	ErrElementCycle   = errors.New("fieldschema: array contains itself")
)

// ErrProjection is wrapped by the Cause of a projection issue.
var ErrProjection = errors.New("fieldschema: value does not fit the target type")

// ConfigError reports a schema construction mistake for the field at Path.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v (field %q)", e.Err, e.Path)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Configf wraps sentinel with a formatted detail message.
func Configf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

// WithConfigPath attaches a field path to a configuration error. Errors that
// already carry a path are returned unchanged.
func WithConfigPath(path string, err error) error {
	if err == nil {
		return nil
	}
	var ce *ConfigError
	if errors.As(err, &ce) {
		return err
	}
	return &ConfigError{Path: path, Err: err}
}
