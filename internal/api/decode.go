package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeOne parses a single JSON object and validates it against the wire
// schema. Any mismatch is a malformed response; no partial value is returned.
func decodeOne[T any](op string, resp *rawResponse) (T, error) {
	var out T
	if err := unmarshalStrict(resp.body, &out); err != nil {
		return out, malformed(op, resp.status, err)
	}
	if err := validate.Struct(out); err != nil {
		var zero T
		return zero, malformed(op, resp.status, err)
	}
	return out, nil
}

// decodeList parses a JSON array. A null body is malformed.
func decodeList[T any](op string, resp *rawResponse) ([]T, error) {
	var out []T
	if err := unmarshalStrict(resp.body, &out); err != nil {
		return nil, malformed(op, resp.status, err)
	}
	if out == nil {
		return nil, malformed(op, resp.status, fmt.Errorf("expected array, got null"))
	}
	for i := range out {
		if err := validate.Struct(out[i]); err != nil {
			return nil, malformed(op, resp.status, fmt.Errorf("item %d: %w", i, err))
		}
	}
	return out, nil
}

func unmarshalStrict(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return fmt.Errorf("empty body")
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("trailing data after JSON value")
	}
	return nil
}

func malformed(op string, status int, cause error) *Error {
	return &Error{
		Kind:    KindRemote,
		Op:      op,
		Status:  status,
		Message: fmt.Sprintf("malformed response: %v", cause),
		Err:     ErrMalformed,
	}
}
