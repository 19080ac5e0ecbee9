// Package cli holds what every command group shares: the session built from
// the stored configuration and the paginated list flags.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/config"
	"github.com/billboardhub/bbadmin/internal/controller"
	"github.com/billboardhub/bbadmin/internal/format"
	"github.com/billboardhub/bbadmin/internal/services"
	"github.com/billboardhub/bbadmin/internal/session"
)

// Session builds the session from the stored configuration
func Session() *session.Session {
	cfg := config.Get()
	return session.New(api.FromConfig(cfg), config.AuthStore{})
}

// Services returns the resource clients of a signed-in session
func Services() (*services.Services, *session.Session, error) {
	sess := Session()
	if sess.State() == session.Unauthenticated {
		return nil, nil, fmt.Errorf("%w: run 'bbadmin auth login' first", session.ErrNotAuthenticated)
	}
	return services.New(sess.Client()), sess, nil
}

// ListFlags are the pagination, search and sort flags of list commands.
// Page is 1-based on the command line.
type ListFlags struct {
	Page     int
	PageSize int
	Search   string
	SortBy   string
	SortDir  string
}

// AddListFlags registers the list flags on cmd. sort describes the
// resource's default ordering for the help text.
func AddListFlags(cmd *cobra.Command, f *ListFlags, sort api.SortSpec) {
	cmd.Flags().IntVar(&f.Page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&f.PageSize, "page-size", api.DefaultPageSize,
		fmt.Sprintf("rows per page %v (default from list.page_size)", api.PageSizes))
	cmd.Flags().StringVarP(&f.Search, "search", "s", "", "free-text search")
	cmd.Flags().StringVar(&f.SortBy, "sort-by", sort.Default,
		fmt.Sprintf("sort field (%s)", strings.Join(sort.Allowed, ", ")))
	cmd.Flags().StringVar(&f.SortDir, "sort-dir", string(sort.DefaultDir), "sort direction (asc, desc)")
}

// Resolve fills values left on the command line from the configuration
func (f *ListFlags) Resolve(cmd *cobra.Command) {
	if !cmd.Flags().Changed("page-size") {
		if ps := config.Get().List.PageSize; api.ValidPageSize(ps) {
			f.PageSize = ps
		}
	}
}

// Validate checks the flags before anything is sent
func (f *ListFlags) Validate() error {
	if f.Page < 1 {
		return fmt.Errorf("--page must be 1 or greater")
	}
	if !api.ValidPageSize(f.PageSize) {
		return fmt.Errorf("--page-size must be one of %v", api.PageSizes)
	}
	if f.SortDir != "" && !api.SortDir(f.SortDir).Valid() {
		return fmt.Errorf("--sort-dir must be asc or desc")
	}
	return nil
}

// ControllerOptions seeds a page controller with the flag values
func ControllerOptions[T any](cmd *cobra.Command, f *ListFlags, filters map[string]string) []controller.Option[T] {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return []controller.Option[T]{
		controller.WithContext[T](ctx),
		controller.WithPageSize[T](f.PageSize),
		controller.WithSort[T](f.SortBy, api.SortDir(f.SortDir)),
		controller.WithSearch[T](f.Search),
		controller.WithFilters[T](filters),
	}
}

// RunList fetches the requested page through a page controller and prints
// it with cols.
func RunList[T any](cmd *cobra.Command, f *ListFlags, fetch func(ctx context.Context, q api.ListQuery) (api.ListResult[T], error), cols []format.Column[T], filters map[string]string) error {
	f.Resolve(cmd)
	if err := f.Validate(); err != nil {
		return err
	}

	ctl := controller.New(fetch, ControllerOptions[T](cmd, f, filters)...)
	defer ctl.Close()

	ctl.SetPage(f.Page - 1)
	ctl.Wait()

	snap := ctl.Snapshot()
	if snap.State == controller.Error {
		return snap.Err
	}
	res := api.ListResult[T]{Data: snap.Rows, Total: snap.Total}
	return format.PrintPage(res, snap.Page, snap.PageSize, cols)
}

// ImageBase is the origin relative image paths are resolved against
func ImageBase() string {
	return config.Get().Server.URL
}

// AddYesFlag registers --yes on a destructive command
func AddYesFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}

// Confirm asks prompt on the command's input unless --yes was given
func Confirm(cmd *cobra.Command, prompt string) bool {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// OutputFormat returns the selected --output format
func OutputFormat() string {
	return config.GetOutputFormat()
}
