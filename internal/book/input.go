package book

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedBody is returned when a payload is not a JSON object.
var ErrMalformedBody = errors.New("request body must be a JSON object")

// DecodeInput parses a create/update body. Keys match exactly and unknown
// keys are ignored. An empty body is an empty payload. A field of the wrong
// type is reported as ErrValidation, like a missing one.
func DecodeInput(data []byte) (Input, error) {
	var in Input
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return in, nil
	}
	if data[0] != '{' {
		return Input{}, ErrMalformedBody
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Input{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	fields := []struct {
		name string
		dst  any
	}{
		{"title", &in.Title},
		{"author", &in.Author},
		{"isbn", &in.ISBN},
		{"year", &in.Year},
	}
	for _, f := range fields {
		v, ok := raw[f.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			return Input{}, fmt.Errorf("%w: %s has the wrong type", ErrValidation, f.name)
		}
	}
	return in, nil
}
