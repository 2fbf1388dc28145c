package fieldschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// DuplicateKeyError reports an object key that appears twice in the same
// JSON object. Path is the dot-joined path of the repeated key.
type DuplicateKeyError struct {
	Path string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q", e.Path)
}

type dupFrame struct {
	object       bool
	keys         map[string]struct{}
	expectingKey bool
	key          string // current key in an object
	index        int    // current element in an array
}

func (f *dupFrame) segment() string {
	if f.object {
		return f.key
	}
	return strconv.Itoa(f.index)
}

// findDuplicateKey walks data token by token and returns the first repeated
// key, or nil. data must already be known to be well-formed.
func findDuplicateKey(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var stack []*dupFrame

	valueDone := func() {
		if len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		if top.object {
			top.expectingKey = true
		} else {
			top.index++
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{':
				stack = append(stack, &dupFrame{object: true, keys: map[string]struct{}{}, expectingKey: true})
			case '[':
				stack = append(stack, &dupFrame{})
			default:
				stack = stack[:len(stack)-1]
				valueDone()
			}
			continue
		}
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.object && top.expectingKey {
				k, _ := tok.(string)
				if _, seen := top.keys[k]; seen {
					name := ""
					for _, f := range stack[:len(stack)-1] {
						name = JoinName(name, f.segment())
					}
					return &DuplicateKeyError{Path: JoinName(name, k)}
				}
				top.keys[k] = struct{}{}
				top.key = k
				top.expectingKey = false
				continue
			}
		}
		valueDone()
	}
}
