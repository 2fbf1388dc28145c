package constraint

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// typeName renders the JSON-ish kind of v for issue params.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case map[string]any, map[any]any:
		return "object"
	case []any:
		return "array"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map:
		return "object"
	case reflect.String:
		return "string"
	}
	return fmt.Sprintf("%T", v)
}

// elements exposes an array-like value by length and index accessor.
func elements(v any) (int, func(int) any, bool) {
	if arr, ok := v.([]any); ok {
		return len(arr), func(i int) any { return arr[i] }, true
	}
	if v == nil {
		return 0, nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			// []byte is a blob, not a list.
			return 0, nil, false
		}
		return rv.Len(), func(i int) any { return rv.Index(i).Interface() }, true
	}
	return 0, nil, false
}

// stringValue accepts string and named string types.
func stringValue(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	if _, isNum := v.(json.Number); isNum {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
