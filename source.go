package fieldschema

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrInputTooLarge is the cause of the parse_error issue reported when an
// input exceeds DecodeOpt.MaxBytes.
var ErrInputTooLarge = errors.New("fieldschema: input exceeds size limit")

// DecodeJSON decodes a single JSON document into an untyped value.
func DecodeJSON(data []byte, opts ...DecodeOpt) (any, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, ErrInputTooLarge
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if opt.NumberMode == NumberJSONNumber {
		dec.UseNumber()
	}
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	if opt.RejectDuplicateKeys {
		if err := findDuplicateKey(data); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// DecodeYAML decodes a single YAML document into an untyped value. yaml.v3
// always rejects duplicate mapping keys.
func DecodeYAML(data []byte, opts ...DecodeOpt) (any, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, ErrInputTooLarge
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func readAllLimited(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		return io.ReadAll(r)
	}
	b, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > max {
		return nil, ErrInputTooLarge
	}
	return b, nil
}

// ValidateJSON decodes data as JSON and validates the result.
func (v *Validator[T]) ValidateJSON(data []byte, opts ...DecodeOpt) Result[T] {
	raw, err := DecodeJSON(data, opts...)
	if err != nil {
		return Failure[T](parseIssue(err))
	}
	return v.Validate(raw)
}

// ValidateYAML decodes data as YAML and validates the result.
func (v *Validator[T]) ValidateYAML(data []byte, opts ...DecodeOpt) Result[T] {
	raw, err := DecodeYAML(data, opts...)
	if err != nil {
		return Failure[T](parseIssue(err))
	}
	return v.Validate(raw)
}

// ValidateReader reads a JSON document from r and validates it. An empty
// body is treated as null.
func (v *Validator[T]) ValidateReader(r io.Reader, opts ...DecodeOpt) Result[T] {
	opt := lastOpt(opts)
	b, err := readAllLimited(r, opt.MaxBytes)
	if err != nil {
		return Failure[T](parseIssue(err))
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return v.Validate(nil)
	}
	return v.ValidateJSON(b, opt)
}

func parseIssue(err error) Issue {
	var dup *DuplicateKeyError
	if errors.As(err, &dup) {
		return Issue{Path: dup.Path, Code: CodeDuplicateKey, Message: "\"" + dup.Path + "\" appears more than once", Cause: err}
	}
	return Issue{Code: CodeParseError, Message: "input could not be decoded: " + err.Error(), Cause: err}
}
