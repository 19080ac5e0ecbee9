package format

import (
	"fmt"

	"github.com/billboardhub/bbadmin/internal/api"
)

// Column renders one grid column of T
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Table is a grid already rendered to strings. Structured formats print the
// rows it was built from instead of the cells.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footer  string
	source  interface{}
}

// NewTable renders rows through cols
func NewTable[T any](rows []T, cols []Column[T]) *Table {
	t := &Table{
		Headers: make([]string, len(cols)),
		Rows:    make([][]string, 0, len(rows)),
		source:  rows,
	}
	for i, c := range cols {
		t.Headers[i] = c.Header
	}
	for _, row := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = c.Value(row)
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// Page is the structured form of one listed page. Page is 1-based.
type Page[T any] struct {
	Data     []T `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Pages    int `json:"pages"`
}

// PageTable renders a list result with a "page X/Y, total N" footer. page is
// the 0-based index the result was fetched for.
func PageTable[T any](res api.ListResult[T], page, pageSize int, cols []Column[T]) *Table {
	pages := res.Pages(pageSize)
	t := NewTable(res.Data, cols)
	t.Footer = PageFooter(page, pages, res.Total)
	t.source = Page[T]{
		Data:     res.Data,
		Total:    res.Total,
		Page:     page + 1,
		PageSize: pageSize,
		Pages:    pages,
	}
	return t
}

// PageFooter renders the pagination summary under a grid
func PageFooter(page, pages, total int) string {
	return fmt.Sprintf("page %d/%d, total %d", page+1, pages, total)
}

// PrintPage prints a list result in the configured output format
func PrintPage[T any](res api.ListResult[T], page, pageSize int, cols []Column[T]) error {
	return Print(PageTable(res, page, pageSize, cols))
}

// PrintRows prints rows through cols in the configured output format
func PrintRows[T any](rows []T, cols []Column[T]) error {
	return Print(NewTable(rows, cols))
}

// Field is one labelled line of a detail view
type Field struct {
	Label string
	Value string
}

// Detail is a single entity rendered as labelled fields, optionally followed
// by grids of related rows.
type Detail struct {
	Fields   []Field
	Sections []*Table
	source   interface{}
}

// NewDetail creates a detail view of source
func NewDetail(source interface{}, fields ...Field) *Detail {
	return &Detail{Fields: fields, source: source}
}

// Section appends a titled grid of related rows
func (d *Detail) Section(title string, t *Table) *Detail {
	t.Title = title
	d.Sections = append(d.Sections, t)
	return d
}

// unwrapView returns what structured formats should print for data
func unwrapView(data interface{}) interface{} {
	switch v := data.(type) {
	case *Table:
		if v.source != nil {
			return v.source
		}
		return v.records()
	case *Detail:
		if v.source != nil {
			return v.source
		}
		m := make(map[string]string, len(v.Fields))
		for _, f := range v.Fields {
			m[f.Label] = f.Value
		}
		return m
	}
	return data
}

func (t *Table) records() []map[string]string {
	out := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		m := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			if i < len(row) {
				m[h] = row[i]
			}
		}
		out = append(out, m)
	}
	return out
}
