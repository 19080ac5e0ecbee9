package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/billboardhub/bbadmin/cmd/auth"
	"github.com/billboardhub/bbadmin/cmd/billboards"
	"github.com/billboardhub/bbadmin/cmd/browse"
	"github.com/billboardhub/bbadmin/cmd/categories"
	"github.com/billboardhub/bbadmin/cmd/config"
	"github.com/billboardhub/bbadmin/cmd/designs"
	"github.com/billboardhub/bbadmin/cmd/raw"
	"github.com/billboardhub/bbadmin/cmd/sellers"
	"github.com/billboardhub/bbadmin/cmd/transactions"
	"github.com/billboardhub/bbadmin/cmd/users"
	appConfig "github.com/billboardhub/bbadmin/internal/config"
	"github.com/billboardhub/bbadmin/internal/format"
	"github.com/billboardhub/bbadmin/internal/logging"
)

var (
	cfgFile string
	debug   bool
	output  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bbadmin",
	Short: "bbadmin - administration console for the billboard marketplace",
	Long: `bbadmin gives operators command-line access to the billboard
marketplace backend: users, sellers and merchants, categories, designs,
billboards and their recommendation scores, and transactions.

Every listing is paginated, searchable and sortable the same way, and
every failure is reported as the single message the backend returned.`,
	Version:       "1.0.0",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize configuration
		if err := appConfig.Initialize(cfgFile); err != nil {
			return fmt.Errorf("failed to initialize configuration: %w", err)
		}

		// Set debug mode
		if debug {
			appConfig.SetDebug(true)
		}
		logging.Setup(appConfig.IsDebug(), appConfig.Get().Format.Colors)

		// Set output format
		if output != "" {
			if !isFormat(output) {
				return fmt.Errorf("unsupported format: %s (want one of %s)", output, strings.Join(format.Formats, ", "))
			}
			appConfig.SetOutputFormat(output)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and runs it until it
// returns or the process is interrupted. Errors are printed in red.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		format.PrintError("%s", err.Error())
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bbadmin.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format (table, json, json-compact, yaml, text)")

	// Add subcommands
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(users.UsersCmd)
	rootCmd.AddCommand(sellers.SellersCmd)
	rootCmd.AddCommand(sellers.MerchantsCmd)
	rootCmd.AddCommand(categories.CategoriesCmd)
	rootCmd.AddCommand(designs.DesignsCmd)
	rootCmd.AddCommand(billboards.BillboardsCmd)
	rootCmd.AddCommand(transactions.TransactionsCmd)
	rootCmd.AddCommand(browse.BrowseCmd)
	rootCmd.AddCommand(config.ConfigCmd)
	rootCmd.AddCommand(raw.RawCmd)
}

func isFormat(name string) bool {
	for _, f := range format.Formats {
		if f == name {
			return true
		}
	}
	return false
}
