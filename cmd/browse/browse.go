package browse

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/cli"
	"github.com/billboardhub/bbadmin/internal/config"
	"github.com/billboardhub/bbadmin/internal/controller"
	"github.com/billboardhub/bbadmin/internal/format"
	"github.com/billboardhub/bbadmin/internal/models"
	"github.com/billboardhub/bbadmin/internal/services"
)

// BrowseCmd represents the browse command
var BrowseCmd = &cobra.Command{
	Use:   "browse <resource>",
	Short: "Page through a resource interactively",
	Long: `Page through a resource interactively.

Paging, page size and sort changes load immediately; search and filters
are staged and applied together with 'apply'. Failures are shown as
notifications that disappear after list.toast_delay, and the last good
page stays on screen. Type 'help' inside the session for the commands.

Resources: users, sellers, merchants, categories, designs, billboards,
recommendations, transactions.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"users", "sellers", "merchants", "categories", "designs", "billboards", "recommendations", "transactions"},
	RunE:      runBrowse,
}

// target is everything a session needs to know about one resource
type target[T any] struct {
	name  string
	fetch func(context.Context, api.ListQuery) (api.ListResult[T], error)
	cols  []format.Column[T]
	sort  api.SortSpec
	del   func(context.Context, string) (*api.Status, error)
	show  func(context.Context, string) (*format.Detail, error)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}
	scope, _ := cmd.Flags().GetString("scope")
	base := cli.ImageBase()

	sessions := map[string]func() error{
		"users": func() error {
			return run(cmd, target[models.User]{
				name: "users", fetch: svc.Users.Fetcher(true), cols: format.UserColumns, sort: services.UserSort,
				del: svc.Users.Delete,
				show: func(ctx context.Context, id string) (*format.Detail, error) {
					d, err := svc.Users.Get(ctx, id)
					return format.UserDetail(d.Data), err
				},
			})
		},
		"sellers": func() error {
			return run(cmd, target[models.Seller]{
				name: "sellers", fetch: svc.Sellers.Fetcher(), cols: format.SellerColumns, sort: services.SellerSort,
				del: svc.Sellers.Delete,
				show: func(ctx context.Context, id string) (*format.Detail, error) {
					d, err := svc.Sellers.Get(ctx, id)
					return format.SellerDetailView(d.Data), err
				},
			})
		},
		"merchants": func() error {
			return run(cmd, target[models.Merchant]{
				name: "merchants", fetch: svc.Merchants.Fetcher(services.MerchantJoins{User: true, Billboards: true}),
				cols: format.MerchantColumns, sort: services.MerchantSort,
				show: func(ctx context.Context, id string) (*format.Detail, error) {
					d, err := svc.Merchants.Get(ctx, id)
					return format.MerchantDetailView(d.Data), err
				},
			})
		},
		"categories": func() error {
			return run(cmd, target[models.Category]{
				name: "categories", fetch: svc.Categories.Fetcher(), cols: format.CategoryColumns, sort: services.CategorySort,
				del: svc.Categories.Delete,
				show: func(ctx context.Context, id string) (*format.Detail, error) {
					d, err := svc.Categories.Get(ctx, id)
					return format.CategoryDetail(d.Data), err
				},
			})
		},
		"designs": func() error {
			return run(cmd, target[models.Design]{
				name: "designs", fetch: svc.Designs.Fetcher(), cols: format.DesignColumns, sort: services.DesignSort,
				del: svc.Designs.Delete,
				show: func(ctx context.Context, id string) (*format.Detail, error) {
					d, err := svc.Designs.Get(ctx, id)
					return format.DesignDetail(d.Data, base), err
				},
			})
		},
		"billboards": func() error {
			return run(cmd, target[models.Billboard]{
				name: "billboards", fetch: svc.Billboards.Fetcher(scope), cols: format.BillboardColumns, sort: services.BillboardSort,
				del: svc.Billboards.Delete,
				show: func(ctx context.Context, id string) (*format.Detail, error) {
					b, err := svc.Billboards.GetDetail(ctx, id)
					return format.BillboardDetailView(b, base), err
				},
			})
		},
		"recommendations": func() error {
			return run(cmd, target[models.Billboard]{
				name: "recommendations", fetch: svc.Recommendations.Fetcher(), cols: format.RecommendationColumns,
				sort: services.RecommendationSort,
				show: func(ctx context.Context, id string) (*format.Detail, error) {
					b, err := svc.Billboards.GetDetail(ctx, id)
					return format.BillboardDetailView(b, base), err
				},
			})
		},
		"transactions": func() error {
			return run(cmd, target[models.Transaction]{
				name: "transactions", fetch: svc.Transactions.Fetcher(scope), cols: format.TransactionColumns,
				sort: services.TransactionSort,
				del:  svc.Transactions.Delete,
				show: func(ctx context.Context, id string) (*format.Detail, error) {
					d, err := svc.Transactions.Get(ctx, id)
					return format.TransactionDetail(d.Data), err
				},
			})
		},
	}

	start, ok := sessions[args[0]]
	if !ok {
		names := make([]string, 0, len(sessions))
		for name := range sessions {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown resource %q (want one of %s)", args[0], strings.Join(names, ", "))
	}
	return start()
}

func run[T any](cmd *cobra.Command, t target[T]) error {
	cfg := config.Get()
	pageSize, _ := cmd.Flags().GetInt("page-size")
	if !cmd.Flags().Changed("page-size") {
		pageSize = cfg.List.PageSize
	}

	toaster := controller.NewToaster(cfg.ToastDelay(), 16)
	defer toaster.Close()
	go showToasts(toaster.Events(), os.Stderr)

	ctl := controller.New(t.fetch,
		controller.WithContext[T](cmd.Context()),
		controller.WithNotifier[T](toaster),
		controller.WithPageSize[T](pageSize),
		controller.WithSort[T](t.sort.Default, t.sort.DefaultDir),
	)
	defer ctl.Close()

	out := cmd.OutOrStdout()
	s := &shell[T]{t: t, ctl: ctl, out: out, toaster: toaster}

	ctl.Load()
	s.settle()

	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprintf(out, "%s> ", t.name)
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}
		if quit := s.exec(cmd.Context(), strings.TrimSpace(in.Text())); quit {
			return nil
		}
		if cmd.Context().Err() != nil {
			return nil
		}
	}
}

func showToasts(events <-chan controller.ToastEvent, w io.Writer) {
	for ev := range events {
		if ev.Dismissed {
			continue
		}
		c := color.New(color.FgGreen)
		if ev.Notification.Level == controller.LevelError {
			c = color.New(color.FgRed)
		}
		c.Fprintf(w, "\n[%s] %s\n", ev.Notification.Level, ev.Notification.Message)
	}
}

func init() {
	BrowseCmd.Flags().Int("page-size", api.DefaultPageSize, fmt.Sprintf("rows per page %v (default from list.page_size)", api.PageSizes))
	BrowseCmd.Flags().String("scope", services.ScopeAll, "billboards: all, recycle-bin, mine; transactions: all, mine, sales")
}
