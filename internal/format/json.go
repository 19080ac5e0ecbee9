package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONFormatter handles JSON output formatting
type JSONFormatter struct {
	w      io.Writer
	pretty bool
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(w io.Writer, pretty bool) *JSONFormatter {
	return &JSONFormatter{
		w:      w,
		pretty: pretty,
	}
}

// Format formats data as JSON. Grids are written as their underlying rows.
func (f *JSONFormatter) Format(data interface{}) error {
	data = unwrapView(data)

	var output []byte
	var err error

	if f.pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(f.w, string(output))
	return nil
}
