package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/config"
	"github.com/billboardhub/bbadmin/internal/format"
)

type category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var categoryCols = []format.Column[category]{
	{Header: "ID", Value: func(c category) string { return c.ID }},
	{Header: "Name", Value: func(c category) string { return c.Name }},
}

func listCommand(f *ListFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "list"}
	AddListFlags(cmd, f, api.SortSpec{Allowed: []string{"createdAt", "name"}, Default: "createdAt", DefaultDir: api.SortDesc})
	cmd.SetContext(context.Background())
	return cmd
}

func TestListFlagsValidate(t *testing.T) {
	tests := []struct {
		name  string
		flags ListFlags
		err   string
	}{
		{"defaults", ListFlags{Page: 1, PageSize: 10, SortDir: "desc"}, ""},
		{"page zero", ListFlags{Page: 0, PageSize: 10}, "--page must be 1 or greater"},
		{"odd page size", ListFlags{Page: 1, PageSize: 15}, "--page-size must be one of [5 10 20 50]"},
		{"bad direction", ListFlags{Page: 1, PageSize: 5, SortDir: "up"}, "--sort-dir must be asc or desc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.flags.Validate()
			if tt.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.err)
		})
	}
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	prev := format.Output
	format.Output = &out
	config.SetOutputFormat("json-compact")
	t.Cleanup(func() {
		format.Output = prev
		config.SetOutputFormat("")
	})

	t.Run("requested page is fetched and printed", func(t *testing.T) {
		out.Reset()
		f := &ListFlags{}
		cmd := listCommand(f)
		require.NoError(t, cmd.ParseFlags([]string{"--page", "3", "--page-size", "5", "-s", "led", "--sort-by", "name", "--sort-dir", "asc"}))

		var got api.ListQuery
		fetch := func(_ context.Context, q api.ListQuery) (api.ListResult[category], error) {
			got = q
			return api.ListResult[category]{Data: []category{{ID: "c-1", Name: "LED"}}, Total: 11}, nil
		}
		require.NoError(t, RunList(cmd, f, fetch, categoryCols, map[string]string{"status": "PAID"}))

		assert.Equal(t, api.ListQuery{
			Page:     3,
			PageSize: 5,
			Search:   "led",
			SortBy:   "name",
			SortDir:  api.SortAsc,
			Filters:  map[string]string{"status": "PAID"},
		}, got)

		var page format.Page[category]
		require.NoError(t, json.Unmarshal(out.Bytes(), &page))
		assert.Equal(t, 3, page.Page)
		assert.Equal(t, 3, page.Pages)
		assert.Equal(t, 11, page.Total)
	})

	t.Run("fetch failure is returned", func(t *testing.T) {
		out.Reset()
		f := &ListFlags{}
		cmd := listCommand(f)
		require.NoError(t, cmd.ParseFlags(nil))

		fetch := func(context.Context, api.ListQuery) (api.ListResult[category], error) {
			return api.ListResult[category]{}, errors.New("Request failed with status code 500")
		}
		err := RunList(cmd, f, fetch, categoryCols, nil)
		assert.EqualError(t, err, "Request failed with status code 500")
		assert.Empty(t, out.String())
	})
}

func TestConfirm(t *testing.T) {
	ask := func(input string, args ...string) bool {
		cmd := &cobra.Command{Use: "delete"}
		AddYesFlag(cmd)
		require.NoError(t, cmd.ParseFlags(args))
		cmd.SetIn(strings.NewReader(input))
		cmd.SetOut(&bytes.Buffer{})
		return Confirm(cmd, "Delete category c-1?")
	}

	assert.True(t, ask("y\n"))
	assert.True(t, ask("YES"))
	assert.False(t, ask("\n"))
	assert.False(t, ask("nope\n"))
	assert.True(t, ask("", "--yes"))
}
