package sellers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billboardhub/bbadmin/internal/cli"
	"github.com/billboardhub/bbadmin/internal/format"
	"github.com/billboardhub/bbadmin/internal/services"
)

// MerchantsCmd represents the merchants command
var MerchantsCmd = &cobra.Command{
	Use:   "merchants",
	Short: "Merchant listing",
	Long:  "Read-only merchant view of sellers, optionally joined with their account and billboards",
}

var merchantListFlags cli.ListFlags

// merchantListCmd lists merchants
var merchantListCmd = &cobra.Command{
	Use:   "list",
	Short: "List merchants",
	RunE:  runMerchantList,
}

// merchantGetCmd shows one merchant
var merchantGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show merchant details",
	Args:  cobra.ExactArgs(1),
	RunE:  runMerchantGet,
}

func runMerchantList(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	var joins services.MerchantJoins
	joins.User, _ = cmd.Flags().GetBool("include-user")
	joins.Billboards, _ = cmd.Flags().GetBool("include-billboards")

	if err := cli.RunList(cmd, &merchantListFlags, svc.Merchants.Fetcher(joins), format.MerchantColumns, nil); err != nil {
		return fmt.Errorf("failed to list merchants: %w", err)
	}
	return nil
}

func runMerchantGet(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	d, err := svc.Merchants.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get merchant: %w", err)
	}
	return format.Print(format.MerchantDetailView(d.Data))
}

func init() {
	cli.AddListFlags(merchantListCmd, &merchantListFlags, services.MerchantSort)
	merchantListCmd.Flags().Bool("include-user", false, "Join the account of each merchant")
	merchantListCmd.Flags().Bool("include-billboards", false, "Join the billboards of each merchant")

	// Add subcommands
	MerchantsCmd.AddCommand(merchantListCmd)
	MerchantsCmd.AddCommand(merchantGetCmd)
}
