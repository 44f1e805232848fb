package cli

import (
	"github.com/spf13/cobra"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
)

var venuesCmd = &cobra.Command{
	Use:   "venues",
	Short: "List supported ML venue shortcuts",
	Long: `List the venue shortcuts accepted by search filters, grouped by
research area. Shortcuts resolve to the canonical venue name used by
the Semantic Scholar API.`,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, cat := range domain.VenueCategories() {
			cmd.Printf("%s:\n", cat.Name)
			for _, short := range cat.Shorthand {
				cmd.Printf("  %-8s %s\n", short, domain.ResolveVenue(short))
			}
			cmd.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(venuesCmd)
}
