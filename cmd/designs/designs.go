package designs

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billboardhub/bbadmin/internal/cli"
	"github.com/billboardhub/bbadmin/internal/format"
	"github.com/billboardhub/bbadmin/internal/models"
	"github.com/billboardhub/bbadmin/internal/services"
)

// DesignsCmd represents the designs command
var DesignsCmd = &cobra.Command{
	Use:   "designs",
	Short: "Print design management",
	Long: `Print design management commands for bbadmin.

Designs are uploaded as multipart forms; prices may be typed the way they
are displayed, e.g. "Rp1.500.000".`,
}

var listFlags cli.ListFlags

// listCmd lists designs
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List designs",
	RunE:  runList,
}

// getCmd shows one design
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show design details",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

// createCmd uploads a design
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a design",
	RunE:  runCreate,
}

// updateCmd edits a design
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit a design",
	Long:  "Edit a design; only the given fields are sent and new images are added",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

// deleteCmd deletes a design
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a design",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runList(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}
	if err := cli.RunList(cmd, &listFlags, svc.Designs.Fetcher(), format.DesignColumns, nil); err != nil {
		return fmt.Errorf("failed to list designs: %w", err)
	}
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	d, err := svc.Designs.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get design: %w", err)
	}
	return format.Print(format.DesignDetail(d.Data, cli.ImageBase()))
}

func readInput(cmd *cobra.Command) models.DesignInput {
	var in models.DesignInput
	in.Name, _ = cmd.Flags().GetString("name")
	in.Description, _ = cmd.Flags().GetString("description")
	in.Price, _ = cmd.Flags().GetString("price")
	in.Images, _ = cmd.Flags().GetStringSlice("image")
	return in
}

func runCreate(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	d, err := svc.Designs.CreateDesign(cmd.Context(), readInput(cmd))
	if err != nil {
		return fmt.Errorf("failed to create design: %w", err)
	}

	format.PrintSuccess("✓ Design '%s' created", d.Name)
	return format.Print(format.DesignDetail(d, cli.ImageBase()))
}

func runUpdate(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	d, err := svc.Designs.UpdateDesign(cmd.Context(), args[0], readInput(cmd))
	if err != nil {
		return fmt.Errorf("failed to update design: %w", err)
	}

	format.PrintSuccess("✓ Design '%s' updated", d.Name)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}
	if !cli.Confirm(cmd, fmt.Sprintf("Delete design %s?", args[0])) {
		format.PrintInfo("Cancelled")
		return nil
	}

	if _, err := svc.Designs.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete design: %w", err)
	}

	format.PrintSuccess("✓ Design deleted")
	return nil
}

func addFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Design name")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().String("price", "", "Price, digits are kept (Rp1.500.000 → 1500000)")
	cmd.Flags().StringSlice("image", nil, "Image file to upload (repeatable)")
}

func init() {
	cli.AddListFlags(listCmd, &listFlags, services.DesignSort)
	addFormFlags(createCmd)
	addFormFlags(updateCmd)
	cli.AddYesFlag(deleteCmd)

	// Add subcommands
	DesignsCmd.AddCommand(listCmd)
	DesignsCmd.AddCommand(getCmd)
	DesignsCmd.AddCommand(createCmd)
	DesignsCmd.AddCommand(updateCmd)
	DesignsCmd.AddCommand(deleteCmd)
}
