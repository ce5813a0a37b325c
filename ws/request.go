package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
)

// validator is implemented by every request specification.
type validator interface {
	Validate() error
}

// request validates the spec, runs the call, and decodes the result
// into out. A nil out discards the result.
func (c *Client) request(ctx context.Context, method string, spec any, out any, signed bool) error {
	if v, ok := spec.(validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	raw, err := c.Call(ctx, method, spec, signed)
	if err != nil {
		return err
	}
	return decodeResult(raw, out)
}

// decodeResult parses the opaque result into the caller's type. The
// server answers some narrowed queries with a bare object where the
// general form is an array, so single objects are wrapped for slice
// targets.
func decodeResult(raw json.RawMessage, out any) error {
	if out == nil {
		return nil
	}
	if len(raw) > 0 && raw[0] == '{' {
		if t := reflect.TypeOf(out); t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Slice {
			wrapped := make(json.RawMessage, 0, len(raw)+2)
			wrapped = append(wrapped, '[')
			wrapped = append(wrapped, raw...)
			wrapped = append(wrapped, ']')
			raw = wrapped
		}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
