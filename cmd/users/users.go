package users

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billboardhub/bbadmin/internal/cli"
	"github.com/billboardhub/bbadmin/internal/format"
	"github.com/billboardhub/bbadmin/internal/models"
	"github.com/billboardhub/bbadmin/internal/services"
)

// UsersCmd represents the users command
var UsersCmd = &cobra.Command{
	Use:   "users",
	Short: "User account management",
	Long: `User account management commands for bbadmin.

This command group lists, inspects, creates, edits and deletes the
accounts of admins, merchants and buyers.`,
}

var listFlags cli.ListFlags

// listCmd lists users
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Long:  "List user accounts one page at a time",
	RunE:  runList,
}

// getCmd shows one user
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show user details",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

// createCmd creates a user
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	Long:  "Create an account; username, email, phone, level and a confirmed password are required",
	RunE:  runCreate,
}

// updateCmd edits a user
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit a user",
	Long:  "Edit an account; the password is only changed when given",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

// deleteCmd deletes a user
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runList(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}
	includeMerchant, _ := cmd.Flags().GetBool("include-merchant")

	if err := cli.RunList(cmd, &listFlags, svc.Users.Fetcher(includeMerchant), format.UserColumns, nil); err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	d, err := svc.Users.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	return format.Print(format.UserDetail(d.Data))
}

func readInput(cmd *cobra.Command) models.UserInput {
	var in models.UserInput
	in.Username, _ = cmd.Flags().GetString("username")
	in.Email, _ = cmd.Flags().GetString("email")
	in.Phone, _ = cmd.Flags().GetString("phone")
	level, _ := cmd.Flags().GetString("level")
	in.Level = models.Level(level)
	in.Password, _ = cmd.Flags().GetString("password")
	in.ConfirmPassword, _ = cmd.Flags().GetString("confirm-password")
	return in
}

func runCreate(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	u, err := svc.Users.CreateUser(cmd.Context(), readInput(cmd))
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	format.PrintSuccess("✓ User %s created", u.Username)
	return format.Print(format.UserDetail(u))
}

func runUpdate(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	// Unchanged fields are taken from the current account
	current, err := svc.Users.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	in := readInput(cmd)
	if !cmd.Flags().Changed("username") {
		in.Username = current.Data.Username
	}
	if !cmd.Flags().Changed("email") {
		in.Email = current.Data.Email
	}
	if !cmd.Flags().Changed("phone") && current.Data.Phone != nil {
		in.Phone = *current.Data.Phone
	}
	if !cmd.Flags().Changed("level") {
		in.Level = current.Data.Level
	}

	u, err := svc.Users.UpdateUser(cmd.Context(), args[0], in, current.Data.Level)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	format.PrintSuccess("✓ User %s updated", u.Username)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}
	if !cli.Confirm(cmd, fmt.Sprintf("Delete user %s?", args[0])) {
		format.PrintInfo("Cancelled")
		return nil
	}

	st, err := svc.Users.Delete(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	msg := "User deleted"
	if st != nil && st.Message != "" {
		msg = st.Message
	}
	format.PrintSuccess("✓ %s", msg)
	return nil
}

func addFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("username", "", "Username")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("level", "", "Account level (ADMIN, BUYER; MERCHANT is only kept on existing merchants)")
	cmd.Flags().String("password", "", "Password, at least 6 characters")
	cmd.Flags().String("confirm-password", "", "Password confirmation")
}

func init() {
	cli.AddListFlags(listCmd, &listFlags, services.UserSort)
	listCmd.Flags().Bool("include-merchant", false, "Join the merchant of each user")

	addFormFlags(createCmd)
	addFormFlags(updateCmd)
	cli.AddYesFlag(deleteCmd)

	// Add subcommands
	UsersCmd.AddCommand(listCmd)
	UsersCmd.AddCommand(getCmd)
	UsersCmd.AddCommand(createCmd)
	UsersCmd.AddCommand(updateCmd)
	UsersCmd.AddCommand(deleteCmd)
}
