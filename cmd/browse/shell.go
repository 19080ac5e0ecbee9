package browse

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/controller"
	"github.com/billboardhub/bbadmin/internal/format"
)

const help = `Commands:
  n, next                 next page
  p, prev                 previous page
  page <n>                go to page n (1-based)
  size <n>                rows per page (5, 10, 20, 50)
  sort <field> [asc|desc] sort and reload
  search [text]           stage a search term (empty clears it)
  filter <key> [value]    stage a filter (no value clears it)
  apply                   apply staged search and filters from page 1
  r, refresh              reload the current page
  show <id>               show one row in detail
  delete <id>             delete one row and reload
  help                    this text
  q, quit                 leave`

// shell interprets the commands of one browse session
type shell[T any] struct {
	t       target[T]
	ctl     *controller.Controller[T]
	out     io.Writer
	toaster *controller.Toaster
}

// exec runs one command line and reports whether the session should end
func (s *shell[T]) exec(ctx context.Context, line string) bool {
	if line == "" {
		return false
	}
	fields := strings.Fields(line)
	verb, rest := strings.ToLower(fields[0]), fields[1:]
	snap := s.ctl.Snapshot()

	switch verb {
	case "q", "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprintln(s.out, help)
	case "n", "next":
		if snap.Page+1 >= snap.Pages() {
			fmt.Fprintln(s.out, "already on the last page")
			return false
		}
		s.ctl.SetPage(snap.Page + 1)
		s.settle()
	case "p", "prev":
		if snap.Page == 0 {
			fmt.Fprintln(s.out, "already on the first page")
			return false
		}
		s.ctl.SetPage(snap.Page - 1)
		s.settle()
	case "page":
		n, err := intArg(rest)
		if err != nil || n < 1 {
			fmt.Fprintln(s.out, "usage: page <n>")
			return false
		}
		s.ctl.SetPage(n - 1)
		s.settle()
	case "size":
		n, err := intArg(rest)
		if err != nil {
			fmt.Fprintln(s.out, "usage: size <n>")
			return false
		}
		if err := s.ctl.SetPageSize(n); err != nil {
			fmt.Fprintln(s.out, err.Error())
			return false
		}
		s.settle()
	case "sort":
		if len(rest) == 0 {
			fmt.Fprintf(s.out, "usage: sort <field> [asc|desc]; fields: %s\n", strings.Join(s.t.sort.Allowed, ", "))
			return false
		}
		dir := api.SortAsc
		if len(rest) > 1 {
			dir = api.SortDir(strings.ToLower(rest[1]))
		}
		if !s.t.sort.Allows(rest[0]) {
			fmt.Fprintf(s.out, "%s is not sortable, using %s %s\n", rest[0], s.t.sort.Default, s.t.sort.DefaultDir)
		}
		s.ctl.SetSort(rest[0], dir)
		s.settle()
	case "search":
		s.ctl.SetSearch(strings.Join(rest, " "))
		fmt.Fprintln(s.out, "search staged; type 'apply' to load")
	case "filter":
		if len(rest) == 0 {
			fmt.Fprintln(s.out, "usage: filter <key> [value]")
			return false
		}
		s.ctl.SetFilter(rest[0], strings.Join(rest[1:], " "))
		fmt.Fprintln(s.out, "filter staged; type 'apply' to load")
	case "apply":
		s.ctl.Submit()
		s.settle()
	case "r", "refresh":
		s.ctl.Refresh()
		s.settle()
	case "show":
		if len(rest) != 1 {
			fmt.Fprintln(s.out, "usage: show <id>")
			return false
		}
		d, err := s.t.show(ctx, rest[0])
		if err != nil {
			s.toaster.Notify(controller.Notification{Level: controller.LevelError, Message: err.Error()})
			return false
		}
		if err := format.Print(d); err != nil {
			fmt.Fprintln(s.out, err.Error())
		}
	case "delete", "rm":
		if s.t.del == nil {
			fmt.Fprintf(s.out, "%s cannot be deleted\n", s.t.name)
			return false
		}
		if len(rest) != 1 {
			fmt.Fprintln(s.out, "usage: delete <id>")
			return false
		}
		_, err := s.t.del(ctx, rest[0])
		s.ctl.AfterMutation("Deleted", err)
		if err == nil {
			s.settle()
		}
	default:
		fmt.Fprintf(s.out, "unknown command %q, type 'help'\n", verb)
	}
	return false
}

// settle waits for the current fetch and prints the grid. On failure the
// previous rows stay on screen and the notification carries the message.
func (s *shell[T]) settle() {
	s.ctl.Wait()
	snap := s.ctl.Snapshot()

	res := api.ListResult[T]{Data: snap.Rows, Total: snap.Total}
	t := format.PageTable(res, snap.Page, snap.PageSize, s.t.cols)
	if snap.Search != "" || len(snap.Filters) > 0 {
		t.Title = describe(snap.Search, snap.Filters)
	}
	if err := format.Print(t); err != nil {
		fmt.Fprintln(s.out, err.Error())
	}
}

func describe(search string, filters map[string]string) string {
	parts := []string{}
	if search != "" {
		parts = append(parts, fmt.Sprintf("search %q", search))
	}
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+"="+filters[k])
	}
	return strings.Join(parts, ", ")
}

func intArg(rest []string) (int, error) {
	if len(rest) != 1 {
		return 0, fmt.Errorf("want one number")
	}
	return strconv.Atoi(rest[0])
}
