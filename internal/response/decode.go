// Package response decodes API response bodies into typed values.
package response

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// Decode unmarshals a JSON response body into out.
func Decode(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}

	return nil
}

// DecodeWithPath is like Decode, but on a type mismatch it reports the JSON
// field path and byte offset of the offending value. Slower than Decode since
// it tracks decoder position, so it is only used when diagnostics are enabled.
func DecodeWithPath(data []byte, out any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	if err := decoder.Decode(out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return errors.Wrapf(err, "failed to decode response body at %s (offset %d)",
				fieldPath(typeErr), typeErr.Offset)
		}

		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return errors.Wrapf(err, "failed to decode response body: invalid JSON at offset %d",
				syntaxErr.Offset)
		}

		return errors.Wrap(err, "failed to decode response body")
	}

	return nil
}

// fieldPath renders the location of a type mismatch as Type.field. The
// struct and field names come from the decoder itself; an unnamed location
// falls back to the document root.
func fieldPath(typeErr *json.UnmarshalTypeError) string {
	switch {
	case typeErr.Struct != "" && typeErr.Field != "":
		return typeErr.Struct + "." + typeErr.Field
	case typeErr.Field != "":
		return typeErr.Field
	default:
		return "$"
	}
}
