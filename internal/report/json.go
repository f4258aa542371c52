package report

import (
	"bytes"
	"encoding/json"
	"io"
)

// Encode writes v as UTF-8 JSON with HTML escaping disabled, so non-ASCII
// category and description text comes out literally rather than as \uXXXX
// sequences.
func Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Marshal returns the Encode form of v without the trailing newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
