package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// MaxJSONSize caps JSON request bodies.
const MaxJSONSize = 1 << 20

// DecodeJSON decodes a single JSON value from the request body into v.
// Unknown object fields and trailing data are rejected. Numbers decode as
// json.Number when v holds interface values, so "007" style text survives.
func DecodeJSON(r *http.Request, v any) error {
	if err := requireMediaType(r, mediaJSON); err != nil {
		return err
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxJSONSize+1))
	if err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}
	if len(body) > MaxJSONSize {
		return errors.Join(ErrBodyTooLarge, fmt.Errorf("max %d bytes", MaxJSONSize))
	}
	if len(body) == 0 {
		return errors.Join(ErrInvalidJSON, errors.New("empty body"))
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}
	if dec.More() {
		return errors.Join(ErrInvalidJSON, errors.New("unexpected data after JSON value"))
	}
	return nil
}

// Scalars converts a JSON object decoded with UseNumber into input data.
// Nested objects and arrays are rejected: every field holds one scalar.
func Scalars(obj map[string]any) (validator.InputData, error) {
	out := make(validator.InputData, len(obj))
	for k, v := range obj {
		switch val := v.(type) {
		case nil, string, bool:
			out[k] = val
		case json.Number:
			out[k] = val.String()
		default:
			return nil, errors.Join(ErrInvalidJSON, fmt.Errorf("field %q must be a scalar", k))
		}
	}
	return out, nil
}
