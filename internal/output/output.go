package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// jsonIndent is the indentation used for all JSON output.
const jsonIndent = "    "

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatJSON

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use json or yaml)", s)
	}
}

// Write serializes v to w in the given format.
func Write(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, v)
	case FormatYAML:
		return WriteYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// Marshal is Write into a byte slice.
func Marshal(format Format, v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, format, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON returns v as JSON indented with four spaces, without HTML
// escaping and without a trailing newline.
func MarshalJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteJSON serializes v to w as JSON indented with four spaces.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", jsonIndent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// WriteYAML serializes v to w as YAML.
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
