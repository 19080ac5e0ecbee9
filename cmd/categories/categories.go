package categories

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billboardhub/bbadmin/internal/cli"
	"github.com/billboardhub/bbadmin/internal/format"
	"github.com/billboardhub/bbadmin/internal/models"
	"github.com/billboardhub/bbadmin/internal/services"
)

// CategoriesCmd represents the categories command
var CategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Billboard category management",
	Long:  "List, create, rename and delete the categories billboards are grouped by",
}

var listFlags cli.ListFlags

// listCmd lists categories
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE:  runList,
}

// getCmd shows one category
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show category details",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

// createCmd creates a category
var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

// renameCmd renames a category
var renameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

// deleteCmd deletes a category
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runList(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}
	if err := cli.RunList(cmd, &listFlags, svc.Categories.Fetcher(), format.CategoryColumns, nil); err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	d, err := svc.Categories.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get category: %w", err)
	}
	return format.Print(format.CategoryDetail(d.Data))
}

func runCreate(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	c, err := svc.Categories.Save(cmd.Context(), "", models.CategoryInput{Name: args[0]})
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	format.PrintSuccess("✓ Category '%s' created", c.Name)
	return format.Print(format.CategoryDetail(c))
}

func runRename(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	c, err := svc.Categories.Save(cmd.Context(), args[0], models.CategoryInput{Name: args[1]})
	if err != nil {
		return fmt.Errorf("failed to rename category: %w", err)
	}

	format.PrintSuccess("✓ Category renamed to '%s'", c.Name)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}
	if !cli.Confirm(cmd, fmt.Sprintf("Delete category %s?", args[0])) {
		format.PrintInfo("Cancelled")
		return nil
	}

	if _, err := svc.Categories.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	format.PrintSuccess("✓ Category deleted")
	return nil
}

func init() {
	cli.AddListFlags(listCmd, &listFlags, services.CategorySort)
	cli.AddYesFlag(deleteCmd)

	// Add subcommands
	CategoriesCmd.AddCommand(listCmd)
	CategoriesCmd.AddCommand(getCmd)
	CategoriesCmd.AddCommand(createCmd)
	CategoriesCmd.AddCommand(renameCmd)
	CategoriesCmd.AddCommand(deleteCmd)
}
