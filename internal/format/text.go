package format

import (
	"fmt"
	"io"
)

// TextFormatter handles simple text output formatting
type TextFormatter struct {
	w io.Writer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{w: w}
}

// Format formats data as simple text
func (f *TextFormatter) Format(data interface{}) error {
	if data == nil {
		fmt.Fprintln(f.w, "No data")
		return nil
	}

	switch v := data.(type) {
	case *Table:
		return f.formatGrid(v)
	case *Detail:
		return f.formatDetail(v)
	case string:
		fmt.Fprintln(f.w, v)
		return nil
	case map[string]interface{}:
		return f.formatSingleMap(v)
	case []interface{}:
		return f.formatInterfaceSlice(v)
	default:
		generic, err := toGeneric(data)
		if err != nil {
			fmt.Fprintf(f.w, "%v\n", data)
			return nil
		}
		switch g := generic.(type) {
		case map[string]interface{}:
			return f.formatSingleMap(g)
		case []interface{}:
			return f.formatInterfaceSlice(g)
		default:
			fmt.Fprintf(f.w, "%v\n", f.formatValue(g))
			return nil
		}
	}
}

// formatGrid prints every row as a block of "Header: value" lines
func (f *TextFormatter) formatGrid(t *Table) error {
	if t.Title != "" {
		fmt.Fprintf(f.w, "%s:\n", t.Title)
	}
	if len(t.Rows) == 0 {
		fmt.Fprintln(f.w, "No data")
	}
	for i, row := range t.Rows {
		if i > 0 {
			fmt.Fprintln(f.w)
		}
		fmt.Fprintf(f.w, "Item %d:\n", i+1)
		for j, h := range t.Headers {
			if j < len(row) {
				fmt.Fprintf(f.w, "  %s: %s\n", h, row[j])
			}
		}
	}
	if t.Footer != "" {
		fmt.Fprintln(f.w, t.Footer)
	}
	return nil
}

func (f *TextFormatter) formatDetail(d *Detail) error {
	for _, field := range d.Fields {
		fmt.Fprintf(f.w, "%s: %s\n", field.Label, field.Value)
	}
	for _, s := range d.Sections {
		fmt.Fprintln(f.w)
		if err := f.formatGrid(s); err != nil {
			return err
		}
	}
	return nil
}

// formatSingleMap formats a single map as text
func (f *TextFormatter) formatSingleMap(data map[string]interface{}) error {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sortKeys(keys)

	for _, key := range keys {
		fmt.Fprintf(f.w, "%s: %v\n", FormatHeader(key), f.formatValue(data[key]))
	}
	return nil
}

// formatInterfaceSlice formats a slice of interfaces as text
func (f *TextFormatter) formatInterfaceSlice(data []interface{}) error {
	if len(data) == 0 {
		fmt.Fprintln(f.w, "No data")
		return nil
	}

	for i, item := range data {
		if m, ok := item.(map[string]interface{}); ok {
			if i > 0 {
				fmt.Fprintln(f.w)
			}
			fmt.Fprintf(f.w, "Item %d:\n", i+1)
			keys := make([]string, 0, len(m))
			for key := range m {
				keys = append(keys, key)
			}
			sortKeys(keys)
			for _, key := range keys {
				fmt.Fprintf(f.w, "  %s: %v\n", FormatHeader(key), f.formatValue(m[key]))
			}
		} else {
			fmt.Fprintf(f.w, "%v\n", f.formatValue(item))
		}
	}

	return nil
}

// formatValue formats a value for display
func (f *TextFormatter) formatValue(value interface{}) interface{} {
	if value == nil {
		return "N/A"
	}
	return value
}
