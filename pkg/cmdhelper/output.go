// Package cmdhelper provides common helpers for building cli commands.
package cmdhelper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Fprintf writes a line to w, suppressing the error check. A newline is
// appended when format does not already end with one.
func Fprintf(w io.Writer, format string, args ...any) {
	if len(format) == 0 || format[len(format)-1] != '\n' {
		format += "\n"
	}
	_, _ = fmt.Fprintf(w, format, args...)
}

// PrettifyJSON renders data as indented json bytes. Byte and string inputs
// are re-indented instead of re-encoded.
func PrettifyJSON(data any) ([]byte, error) {
	switch v := data.(type) {
	case []byte:
		return prettifyJSONBytes(v)
	case string:
		return prettifyJSONBytes([]byte(v))
	default:
		return json.MarshalIndent(data, "", "  ")
	}
}

func prettifyJSONBytes(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, data, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to prettify: %w", err)
	}
	return buf.Bytes(), nil
}
