package sift

import (
	"bytes"
	"context"
	"io"

	gojson "github.com/goccy/go-json"
)

// DecodeDocument parses raw JSON into a Document value tree (map[string]any,
// []any, string, json.Number, bool, nil). Numbers are kept as json.Number so
// integer checks do not suffer float precision loss. Malformed input fails
// with a ValidationError carrying CodeParseError.
func DecodeDocument(data []byte) (any, error) {
	return DecodeDocumentReader(bytes.NewReader(data))
}

// DecodeDocumentReader is the io.Reader variant of DecodeDocument.
func DecodeDocumentReader(r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, NewValidationError([]Violation{{Code: CodeParseError, Message: err.Error()}})
	}
	return v, nil
}

// ValidateJSON decodes raw JSON and validates it with the given Validator in
// one step.
func (v *Validator) ValidateJSON(ctx context.Context, data []byte) (any, error) {
	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, err
	}
	return v.Validate(ctx, doc)
}
