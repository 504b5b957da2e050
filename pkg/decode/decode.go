// Package decode provides strict JSON decoding helpers for request payloads.
package decode

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON decodes a JSON body into T, rejecting unknown fields and trailing content.
func JSON[T any](r io.Reader) (T, error) {
	var result T

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("decode request: %w", err)
	}
	if dec.More() {
		return result, fmt.Errorf("decode request: unexpected trailing content")
	}
	return result, nil
}

// FromMap round-trips a generic map through JSON into a concrete type.
func FromMap[T any](data map[string]any) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}
