package billboards

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billboardhub/bbadmin/internal/cli"
	"github.com/billboardhub/bbadmin/internal/format"
	"github.com/billboardhub/bbadmin/internal/models"
	"github.com/billboardhub/bbadmin/internal/services"
)

// BillboardsCmd represents the billboards command
var BillboardsCmd = &cobra.Command{
	Use:   "billboards",
	Short: "Billboard listing management",
	Long: `Billboard listing management commands for bbadmin.

Deleted billboards go to the recycle bin, from where they can be restored
or purged for good. The recommendations subgroup exposes scoring
diagnostics.`,
}

var (
	listFlags    cli.ListFlags
	recycleFlags cli.ListFlags
	mineFlags    cli.ListFlags
)

// listCmd lists billboards
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List billboards",
	RunE:  scopeRunner(services.ScopeAll, &listFlags),
}

// recycleBinCmd lists deleted billboards
var recycleBinCmd = &cobra.Command{
	Use:   "recycle-bin",
	Short: "List deleted billboards",
	RunE:  scopeRunner(services.ScopeRecycleBin, &recycleFlags),
}

// mineCmd lists the billboards of the signed-in merchant
var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List my billboards",
	RunE:  scopeRunner(services.ScopeMine, &mineFlags),
}

// getCmd shows one billboard
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show billboard details",
	Long:  "Show a billboard with its average rating, images and transactions",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

// createCmd uploads a billboard
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a billboard",
	RunE:  runCreate,
}

// updateCmd edits a billboard
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit a billboard",
	Long:  "Edit a billboard; only the given fields are sent. Adding or removing images switches to a multipart upload",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

// deleteCmd moves a billboard to the recycle bin
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Move a billboard to the recycle bin",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

// restoreCmd restores a billboard from the recycle bin
var restoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore a deleted billboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

// purgeCmd deletes a billboard permanently
var purgeCmd = &cobra.Command{
	Use:   "purge <id>",
	Short: "Delete a billboard permanently",
	Args:  cobra.ExactArgs(1),
	RunE:  runPurge,
}

func scopeRunner(scope string, flags *cli.ListFlags) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, _, err := cli.Services()
		if err != nil {
			return err
		}
		if err := cli.RunList(cmd, flags, svc.Billboards.Fetcher(scope), format.BillboardColumns, nil); err != nil {
			return fmt.Errorf("failed to list billboards: %w", err)
		}
		return nil
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	b, err := svc.Billboards.GetDetail(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get billboard: %w", err)
	}
	return format.Print(format.BillboardDetailView(b, cli.ImageBase()))
}

var formFlags = []struct {
	name  string
	usage string
	set   func(*models.BillboardInput, string)
}{
	{"category", "Category id", func(in *models.BillboardInput, v string) { in.CategoryID = v }},
	{"description", "Description", func(in *models.BillboardInput, v string) { in.Description = v }},
	{"location", "Street address", func(in *models.BillboardInput, v string) { in.Location = v }},
	{"city", "City id", func(in *models.BillboardInput, v string) { in.CityID = v }},
	{"province", "Province id", func(in *models.BillboardInput, v string) { in.ProvinceID = v }},
	{"status", "Available or NotAvailable", func(in *models.BillboardInput, v string) { in.Status = v }},
	{"mode", "Buy or Rent", func(in *models.BillboardInput, v string) { in.Mode = v }},
	{"size", "Size, e.g. 4x8", func(in *models.BillboardInput, v string) { in.Size = v }},
	{"orientation", "Orientation", func(in *models.BillboardInput, v string) { in.Orientation = v }},
	{"display", "Display type", func(in *models.BillboardInput, v string) { in.Display = v }},
	{"lighting", "Lighting", func(in *models.BillboardInput, v string) { in.Lighting = v }},
	{"tax", "Tax arrangement", func(in *models.BillboardInput, v string) { in.Tax = v }},
	{"land-ownership", "Land ownership", func(in *models.BillboardInput, v string) { in.LandOwnership = v }},
	{"rent-price", "Rent price, digits are kept", func(in *models.BillboardInput, v string) { in.RentPrice = v }},
	{"sell-price", "Sell price, digits are kept", func(in *models.BillboardInput, v string) { in.SellPrice = v }},
	{"service-price", "Service price, digits are kept", func(in *models.BillboardInput, v string) { in.ServicePrice = v }},
}

func readInput(cmd *cobra.Command) models.BillboardInput {
	var in models.BillboardInput
	for _, f := range formFlags {
		v, _ := cmd.Flags().GetString(f.name)
		f.set(&in, v)
	}
	in.Images, _ = cmd.Flags().GetStringSlice("image")
	if cmd.Flags().Lookup("delete-image") != nil {
		in.ImagesDeleteIDs, _ = cmd.Flags().GetStringSlice("delete-image")
	}
	return in
}

func runCreate(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	b, err := svc.Billboards.CreateBillboard(cmd.Context(), readInput(cmd))
	if err != nil {
		return fmt.Errorf("failed to create billboard: %w", err)
	}

	format.PrintSuccess("✓ Billboard at %s created", b.Location)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	b, err := svc.Billboards.UpdateBillboard(cmd.Context(), args[0], readInput(cmd))
	if err != nil {
		return fmt.Errorf("failed to update billboard: %w", err)
	}

	format.PrintSuccess("✓ Billboard at %s updated", b.Location)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}
	if !cli.Confirm(cmd, fmt.Sprintf("Move billboard %s to the recycle bin?", args[0])) {
		format.PrintInfo("Cancelled")
		return nil
	}

	if _, err := svc.Billboards.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete billboard: %w", err)
	}

	format.PrintSuccess("✓ Billboard moved to the recycle bin")
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	if _, err := svc.Billboards.Restore(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to restore billboard: %w", err)
	}

	format.PrintSuccess("✓ Billboard restored")
	return nil
}

func runPurge(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}
	if !cli.Confirm(cmd, fmt.Sprintf("Permanently delete billboard %s? This cannot be undone.", args[0])) {
		format.PrintInfo("Cancelled")
		return nil
	}

	if _, err := svc.Billboards.Purge(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to purge billboard: %w", err)
	}

	format.PrintSuccess("✓ Billboard permanently deleted")
	return nil
}

func addFormFlags(cmd *cobra.Command) {
	for _, f := range formFlags {
		cmd.Flags().String(f.name, "", f.usage)
	}
	cmd.Flags().StringSlice("image", nil, "Image file to upload (repeatable)")
}

func init() {
	cli.AddListFlags(listCmd, &listFlags, services.BillboardSort)
	cli.AddListFlags(recycleBinCmd, &recycleFlags, services.BillboardSort)
	cli.AddListFlags(mineCmd, &mineFlags, services.BillboardSort)

	addFormFlags(createCmd)
	addFormFlags(updateCmd)
	updateCmd.Flags().StringSlice("delete-image", nil, "Id of an image to remove (repeatable)")

	cli.AddYesFlag(deleteCmd)
	cli.AddYesFlag(purgeCmd)

	// Add subcommands
	BillboardsCmd.AddCommand(listCmd)
	BillboardsCmd.AddCommand(recycleBinCmd)
	BillboardsCmd.AddCommand(mineCmd)
	BillboardsCmd.AddCommand(getCmd)
	BillboardsCmd.AddCommand(createCmd)
	BillboardsCmd.AddCommand(updateCmd)
	BillboardsCmd.AddCommand(deleteCmd)
	BillboardsCmd.AddCommand(restoreCmd)
	BillboardsCmd.AddCommand(purgeCmd)
	BillboardsCmd.AddCommand(recommendationsCmd)
}
