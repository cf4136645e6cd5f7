package cmd

import (
	"fmt"

	"tripdeck/internal/cli"
	"tripdeck/internal/planner"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <trip>",
	Short: "Consolidated trip overview",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	r, closeStore, err := openRepo(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	trip, err := findTrip(r, args[0])
	if err != nil {
		return err
	}
	cur := cfg.General.Currency
	s := planner.Summarize(trip)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TRIP SUMMARY  %s", trip.Destination)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Days", "Activities", "Budget Used", "Packed"},
		Rows: [][]string{{
			fmt.Sprintf("%d", s.Days),
			fmt.Sprintf("%d", s.Activities),
			cli.FormatPercent(s.BudgetPercent),
			cli.FormatPercent(s.PackingPercent),
		}},
	}))
	fmt.Println()

	info := s.Info
	fmt.Print(cli.RenderTable(cli.Table{
		Title: "Trip Info",
		Rows: [][]string{
			{"Destination", info.Destination},
			{"Trip Type", info.TypeLabel},
			{"Duration", fmt.Sprintf("%d days", info.DurationDays)},
			{"Activities Planned", fmt.Sprintf("%d", info.Activities)},
			{"Total Budget", cli.FormatMoney(cur, info.TotalBudget)},
			{"Total Spent", cli.FormatMoney(cur, info.TotalSpent)},
			{"Remaining", cli.FormatMoney(cur, info.Remaining)},
			{"Packing Progress", fmt.Sprintf("%d/%d items", info.PackedItems, info.TotalItems)},
		},
	}))
	fmt.Println()
	return nil
}
