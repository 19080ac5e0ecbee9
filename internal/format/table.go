package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// TableFormatter handles table output formatting
type TableFormatter struct {
	w         io.Writer
	useColors bool
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer, useColors bool) *TableFormatter {
	return &TableFormatter{
		w:         w,
		useColors: useColors,
	}
}

// Format formats data as a table
func (f *TableFormatter) Format(data interface{}) error {
	if data == nil {
		fmt.Fprintln(f.w, "No data to display")
		return nil
	}

	// Handle different data types
	switch v := data.(type) {
	case *Table:
		return f.formatGrid(v)
	case *Detail:
		return f.formatDetail(v)
	case string:
		fmt.Fprintln(f.w, v)
		return nil
	case []map[string]interface{}:
		return f.formatMapSlice(v)
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
			fmt.Fprintln(f.w, f.formatValue(g))
			return nil
		}
	}
}

// formatGrid renders a column-spec grid with its title and footer
func (f *TableFormatter) formatGrid(t *Table) error {
	if t.Title != "" {
		f.printTitle(t.Title)
	}
	if len(t.Rows) == 0 {
		fmt.Fprintln(f.w, "No data to display")
	} else {
		table := tablewriter.NewWriter(f.w)
		table.SetHeader(t.Headers)
		f.configureTable(table, len(t.Headers))
		table.AppendBulk(t.Rows)
		table.Render()
	}
	if t.Footer != "" {
		if f.useColors {
			color.New(color.Faint).Fprintln(f.w, t.Footer)
		} else {
			fmt.Fprintln(f.w, t.Footer)
		}
	}
	return nil
}

// formatDetail renders a detail view as a vertical table plus its sections
func (f *TableFormatter) formatDetail(d *Detail) error {
	table := tablewriter.NewWriter(f.w)
	table.SetHeader([]string{"Property", "Value"})
	f.configureTable(table, 2)
	for _, field := range d.Fields {
		table.Append([]string{field.Label, field.Value})
	}
	table.Render()

	for _, s := range d.Sections {
		fmt.Fprintln(f.w)
		if err := f.formatGrid(s); err != nil {
			return err
		}
	}
	return nil
}

func (f *TableFormatter) printTitle(title string) {
	if f.useColors {
		color.New(color.Bold).Fprintln(f.w, title)
		return
	}
	fmt.Fprintln(f.w, title)
}

// formatMapSlice formats a slice of maps as a table
func (f *TableFormatter) formatMapSlice(data []map[string]interface{}) error {
	if len(data) == 0 {
		fmt.Fprintln(f.w, "No data to display")
		return nil
	}

	// Headers are the union of keys, in a stable order
	seen := map[string]bool{}
	keys := make([]string, 0)
	for _, row := range data {
		for key := range row {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	sortKeys(keys)

	headers := make([]string, len(keys))
	for i, key := range keys {
		headers[i] = FormatHeader(key)
	}

	table := tablewriter.NewWriter(f.w)
	table.SetHeader(headers)
	f.configureTable(table, len(headers))

	for _, row := range data {
		values := make([]string, len(keys))
		for i, key := range keys {
			if val, exists := row[key]; exists {
				values[i] = f.formatValue(val)
			}
		}
		table.Append(values)
	}

	table.Render()
	return nil
}

// formatSingleMap formats a single map as a vertical table
func (f *TableFormatter) formatSingleMap(data map[string]interface{}) error {
	table := tablewriter.NewWriter(f.w)
	table.SetHeader([]string{"Property", "Value"})

	f.configureTable(table, 2)

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sortKeys(keys)

	for _, key := range keys {
		table.Append([]string{
			FormatHeader(key),
			f.formatValue(data[key]),
		})
	}

	table.Render()
	return nil
}

// formatInterfaceSlice formats a slice of interfaces
func (f *TableFormatter) formatInterfaceSlice(data []interface{}) error {
	if len(data) == 0 {
		fmt.Fprintln(f.w, "No data to display")
		return nil
	}

	// Try to convert to maps if possible
	mapData := make([]map[string]interface{}, 0, len(data))
	for _, item := range data {
		if m, ok := item.(map[string]interface{}); ok {
			mapData = append(mapData, m)
		} else {
			// Fall back to simple list
			return f.formatSimpleList(data)
		}
	}

	return f.formatMapSlice(mapData)
}

// formatSimpleList formats a simple list of values
func (f *TableFormatter) formatSimpleList(data []interface{}) error {
	table := tablewriter.NewWriter(f.w)
	table.SetHeader([]string{"Value"})

	f.configureTable(table, 1)

	for _, item := range data {
		table.Append([]string{f.formatValue(item)})
	}

	table.Render()
	return nil
}

// configureTable sets up table appearance
func (f *TableFormatter) configureTable(table *tablewriter.Table, columns int) {
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	if f.useColors && columns > 0 {
		colors := make([]tablewriter.Colors, columns)
		for i := range colors {
			colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiBlueColor}
		}
		table.SetHeaderColor(colors...)
	}
}

// FormatHeader turns a JSON or config key into a column title:
// "companyName" and "company_name" both become "Company Name".
func FormatHeader(key string) string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	runes := []rune(key)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && i > 0 && !unicode.IsUpper(runes[i-1]):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()

	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// sortKeys orders keys with id first and timestamps last
func sortKeys(keys []string) {
	rank := func(k string) int {
		switch k {
		case "id":
			return 0
		case "createdAt", "updatedAt", "created_at", "updated_at":
			return 2
		}
		return 1
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
}

// formatValue formats a value for display
func (f *TableFormatter) formatValue(value interface{}) string {
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", v)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if f.useColors {
			if v {
				return color.GreenString("true")
			}
			return color.RedString("false")
		}
		return strconv.FormatBool(v)
	case map[string]interface{}, []interface{}:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(raw)
	default:
		return fmt.Sprintf("%v", v)
	}
}
