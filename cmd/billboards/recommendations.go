package billboards

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billboardhub/bbadmin/internal/cli"
	"github.com/billboardhub/bbadmin/internal/format"
	"github.com/billboardhub/bbadmin/internal/models"
	"github.com/billboardhub/bbadmin/internal/services"
)

// recommendationsCmd groups the scoring diagnostics
var recommendationsCmd = &cobra.Command{
	Use:     "recommendations",
	Aliases: []string{"reco"},
	Short:   "Recommendation score diagnostics",
	Long: `Recommendation score diagnostics.

Category, province and city filter on the backend; --search filters the
returned page on location and description, and sorting happens locally.`,
}

var recoFlags cli.ListFlags

// recoListCmd lists scored billboards
var recoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scored billboards",
	RunE:  runRecoList,
}

// recoRecomputeCmd rescores every billboard
var recoRecomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Recompute recommendation scores",
	RunE:  runRecoRecompute,
}

func recoFilters(cmd *cobra.Command) map[string]string {
	category, _ := cmd.Flags().GetString("category")
	province, _ := cmd.Flags().GetString("province")
	city, _ := cmd.Flags().GetString("city")
	return map[string]string{
		"categoryId": category,
		"province":   province,
		"city":       city,
	}
}

func runRecoList(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	reco := svc.Recommendations
	if err := cli.RunList(cmd, &recoFlags, reco.Fetcher(), format.RecommendationColumns, recoFilters(cmd)); err != nil {
		return fmt.Errorf("failed to load recommendations: %w", err)
	}

	if show, _ := cmd.Flags().GetBool("options"); show && !format.IsStructured(cli.OutputFormat()) {
		options := reco.CategoryOptions()
		fmt.Println()
		if err := format.PrintRows(options, []format.Column[models.Ref]{
			{Header: "Category ID", Value: func(r models.Ref) string { return r.ID }},
			{Header: "Category", Value: func(r models.Ref) string { return r.Name }},
		}); err != nil {
			return err
		}

		provinces, cities := reco.Locations()
		for _, opt := range []struct {
			header string
			values []string
		}{{"Province", provinces}, {"City", cities}} {
			fmt.Println()
			if err := format.PrintRows(opt.values, []format.Column[string]{
				{Header: opt.header, Value: func(v string) string { return v }},
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func runRecoRecompute(cmd *cobra.Command, args []string) error {
	svc, _, err := cli.Services()
	if err != nil {
		return err
	}

	fmt.Println("Recomputing recommendation scores...")
	res, err := svc.Recommendations.Recompute(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to recompute recommendations: %w", err)
	}

	format.PrintSuccess("✓ Recomputed %d billboards", res.Updated)
	return nil
}

func init() {
	cli.AddListFlags(recoListCmd, &recoFlags, services.RecommendationSort)
	recoListCmd.Flags().String("category", "", "Category id")
	recoListCmd.Flags().String("province", "", "Province name")
	recoListCmd.Flags().String("city", "", "City name")
	recoListCmd.Flags().Bool("options", false, "Also list the categories, provinces and cities seen in the results")

	recommendationsCmd.AddCommand(recoListCmd)
	recommendationsCmd.AddCommand(recoRecomputeCmd)
}
