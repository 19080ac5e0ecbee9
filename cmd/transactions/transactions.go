package transactions

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/billboardhub/bbadmin/internal/cli"
	"github.com/billboardhub/bbadmin/internal/format"
	"github.com/billboardhub/bbadmin/internal/services"
)

// TransactionsCmd represents the transactions command
var TransactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Billboard order management",
	Long: `Billboard order management commands for bbadmin.

Orders can be listed for the whole marketplace, for the signed-in buyer
or for the signed-in merchant, and filtered by status.`,
}

var listFlags cli.ListFlags

// listCmd lists transactions
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	RunE:  runList,
}

// getCmd shows one transaction
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show transaction details",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

// statusCmd changes the status of a transaction
var statusCmd = &cobra.Command{
	Use:   "set-status <id> <status>",
	Short: "Change a transaction status",
	Long:  "Change a transaction status to one of PENDING, PAID, EXPIRED, REJECTED, CANCELLED or COMPLETED",
	Args:  cobra.ExactArgs(2),
	RunE:  runStatus,
}

// deleteCmd deletes a transaction
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runList(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	scope, _ := cmd.Flags().GetString("scope")
	status, _ := cmd.Flags().GetString("status")
	filters := map[string]string{}
	if strings.TrimSpace(status) != "" {
		st, err := services.ParseStatus(status)
		if err != nil {
			return err
		}
		filters["status"] = string(st)
	}

	if err := cli.RunList(cmd, &listFlags, svc.Transactions.Fetcher(scope), format.TransactionColumns, filters); err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	d, err := svc.Transactions.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get transaction: %w", err)
	}
	return format.Print(format.TransactionDetail(d.Data))
}

func runStatus(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	st, err := services.ParseStatus(args[1])
	if err != nil {
		return err
	}
	t, err := svc.Transactions.UpdateStatus(cmd.Context(), args[0], st)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	format.PrintSuccess("✓ Transaction %s is now %s", t.ID, t.Status)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}
	if !cli.Confirm(cmd, fmt.Sprintf("Delete transaction %s?", args[0])) {
		format.PrintInfo("Cancelled")
		return nil
	}

	if _, err := svc.Transactions.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	format.PrintSuccess("✓ Transaction deleted")
	return nil
}

func init() {
	cli.AddListFlags(listCmd, &listFlags, services.TransactionSort)
	listCmd.Flags().String("scope", services.ScopeAll, "all, mine (as buyer) or sales (as merchant)")
	listCmd.Flags().String("status", "", "Only transactions with this status")

	cli.AddYesFlag(deleteCmd)

	// Add subcommands
	TransactionsCmd.AddCommand(listCmd)
	TransactionsCmd.AddCommand(getCmd)
	TransactionsCmd.AddCommand(statusCmd)
	TransactionsCmd.AddCommand(deleteCmd)
}
