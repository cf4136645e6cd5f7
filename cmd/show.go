package cmd

import (
	"fmt"

	"tripdeck/internal/cli"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <trip>",
	Short: "Show a trip's itinerary",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
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

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %s", trip.Destination, cli.FormatDateRange(trip.StartDate, trip.EndDate))))
	fmt.Println()

	for _, day := range trip.Days {
		fmt.Println("  " + cli.FormatDayHeading(day))
		if len(day.Activities) == 0 {
			fmt.Println(cli.Muted("no activities planned"))
			fmt.Println()
			continue
		}
		rows := make([][]string, 0, len(day.Activities))
		for _, a := range day.Activities {
			done := " "
			if a.Completed {
				done = "✓"
			}
			rows = append(rows, []string{shortID(a.ID), cli.FormatClock12(a.Time), done, a.Title, a.Notes})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"ID", "Time", "Done", "Activity", "Notes"},
			Rows:    rows,
		}))
		fmt.Println()
	}
	return nil
}
