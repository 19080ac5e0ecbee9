package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billboardhub/bbadmin/internal/api"
)

type city struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var cityColumns = []Column[city]{
	{Header: "ID", Value: func(c city) string { return c.ID }},
	{Header: "Name", Value: func(c city) string { return c.Name }},
}

func cityPage() api.ListResult[city] {
	return api.ListResult[city]{
		Data:  []city{{ID: "3273", Name: "Bandung"}, {ID: "3171", Name: "Jakarta Pusat"}},
		Total: 42,
	}
}

func TestFormatHeader(t *testing.T) {
	tests := map[string]string{
		"companyName":    "Company Name",
		"company_name":   "Company Name",
		"id":             "Id",
		"list.page_size": "List Page Size",
		"averageRating":  "Average Rating",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatHeader(in), in)
	}
}

func TestPageTable(t *testing.T) {
	tbl := PageTable(cityPage(), 1, 10, cityColumns)

	assert.Equal(t, []string{"ID", "Name"}, tbl.Headers)
	assert.Equal(t, [][]string{{"3273", "Bandung"}, {"3171", "Jakarta Pusat"}}, tbl.Rows)
	assert.Equal(t, "page 2/5, total 42", tbl.Footer)
	assert.Equal(t, "page 1/1, total 0", PageFooter(0, 1, 0))
}

func TestFormatters(t *testing.T) {
	t.Run("json prints the page, not the cells", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewJSONFormatter(&buf, false).Format(PageTable(cityPage(), 0, 10, cityColumns)))

		var out Page[city]
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, 1, out.Page)
		assert.Equal(t, 5, out.Pages)
		assert.Equal(t, 42, out.Total)
		assert.Len(t, out.Data, 2)
	})

	t.Run("yaml keeps integers integral", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewYAMLFormatter(&buf).Format(PageTable(cityPage(), 0, 10, cityColumns)))
		assert.Contains(t, buf.String(), "total: 42\n")
		assert.Contains(t, buf.String(), "name: Bandung")
	})

	t.Run("text lists items and the footer", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewTextFormatter(&buf).Format(PageTable(cityPage(), 0, 10, cityColumns)))
		out := buf.String()
		assert.Contains(t, out, "Item 1:\n  ID: 3273\n  Name: Bandung\n")
		assert.True(t, strings.HasSuffix(out, "page 1/5, total 42\n"))
	})

	t.Run("table renders the grid", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewTableFormatter(&buf, false).Format(PageTable(cityPage(), 0, 10, cityColumns)))
		out := buf.String()
		assert.Contains(t, out, "Jakarta Pusat")
		assert.Contains(t, out, "page 1/5, total 42")
	})

	t.Run("detail view", func(t *testing.T) {
		d := NewDetail(city{ID: "3273", Name: "Bandung"},
			Field{Label: "ID", Value: "3273"},
			Field{Label: "Name", Value: "Bandung"},
		)

		var buf bytes.Buffer
		require.NoError(t, NewJSONFormatter(&buf, false).Format(d))
		assert.JSONEq(t, `{"id":"3273","name":"Bandung"}`, buf.String())

		buf.Reset()
		require.NoError(t, NewTableFormatter(&buf, false).Format(d))
		assert.Contains(t, buf.String(), "Bandung")
	})
}

func TestGetFormatter(t *testing.T) {
	for _, name := range Formats {
		f, err := GetFormatter(name)
		require.NoError(t, err, name)
		assert.NotNil(t, f)
	}
	_, err := GetFormatter("xml")
	assert.Error(t, err)
	assert.True(t, IsStructured("json"))
	assert.False(t, IsStructured("table"))
}
