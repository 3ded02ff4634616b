package tool

import (
	"encoding/json"
	"fmt"
	"math"
)

type Tool struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     HandlerFunc
}

type HandlerFunc func(args Args) (any, error)

// Descriptor is the client-facing view of a registered tool.
type Descriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// Args holds decoded tool-call arguments. Values follow encoding/json
// conventions: numbers are float64, lists are []any.
type Args map[string]any

func (a Args) Float(key string, def float64) (float64, error) {
	v, ok := a[key]
	if !ok {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("argument %q must be a number", key)
	}
	return f, nil
}

func (a Args) Int(key string, def int) (int, error) {
	v, ok := a[key]
	if !ok {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("argument %q must be an integer", key)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("argument %q must be an integer", key)
	}
	return int(f), nil
}

func (a Args) Bool(key string, def bool) (bool, error) {
	v, ok := a[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("argument %q must be a boolean", key)
	}
	return b, nil
}

func (a Args) FloatSlice(key string) ([]float64, error) {
	v, ok := a[key]
	if !ok {
		return nil, fmt.Errorf("argument %q is required", key)
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("argument %q must be a list of numbers", key)
	}
	out := make([]float64, 0, len(raw))
	for _, item := range raw {
		f, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("argument %q must be a list of numbers", key)
		}
		out = append(out, f)
	}
	return out, nil
}

// ArgumentError marks argument decoding or schema-validation failures so the
// protocol layer can map them to an invalid-params response instead of a
// tool execution failure.
type ArgumentError struct {
	Tool   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q: %s", e.Tool, e.Reason)
}
