package sellers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billboardhub/bbadmin/internal/cli"
	"github.com/billboardhub/bbadmin/internal/format"
	"github.com/billboardhub/bbadmin/internal/services"
)

// SellersCmd represents the sellers command
var SellersCmd = &cobra.Command{
	Use:   "sellers",
	Short: "Seller profile management",
	Long: `Seller profile management commands for bbadmin.

Identity numbers (KTP, NPWP) are masked in every table and detail view.`,
}

var sellerListFlags cli.ListFlags

// sellerListCmd lists sellers
var sellerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sellers",
	RunE:  runSellerList,
}

// sellerGetCmd shows one seller with its account and billboards
var sellerGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show seller details",
	Args:  cobra.ExactArgs(1),
	RunE:  runSellerGet,
}

// sellerDeleteCmd deletes a seller profile
var sellerDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a seller",
	Args:  cobra.ExactArgs(1),
	RunE:  runSellerDelete,
}

func runSellerList(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}
	if err := cli.RunList(cmd, &sellerListFlags, svc.Sellers.Fetcher(), format.SellerColumns, nil); err != nil {
		return fmt.Errorf("failed to list sellers: %w", err)
	}
	return nil
}

func runSellerGet(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	d, err := svc.Sellers.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get seller: %w", err)
	}
	return format.Print(format.SellerDetailView(d.Data))
}

func runSellerDelete(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}
	if !cli.Confirm(cmd, fmt.Sprintf("Delete seller %s?", args[0])) {
		format.PrintInfo("Cancelled")
		return nil
	}

	st, err := svc.Sellers.Delete(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to delete seller: %w", err)
	}

	msg := "Seller deleted"
	if st != nil && st.Message != "" {
		msg = st.Message
	}
	format.PrintSuccess("✓ %s", msg)
	return nil
}

func init() {
	cli.AddListFlags(sellerListCmd, &sellerListFlags, services.SellerSort)
	cli.AddYesFlag(sellerDeleteCmd)

	// Add subcommands
	SellersCmd.AddCommand(sellerListCmd)
	SellersCmd.AddCommand(sellerGetCmd)
	SellersCmd.AddCommand(sellerDeleteCmd)
}
