// Package cmd wires the tripdeck command tree.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"tripdeck/internal/cli"
	"tripdeck/internal/config"
	"tripdeck/internal/model"
	"tripdeck/internal/planner"
	"tripdeck/internal/repo"
	"tripdeck/internal/store"

	"github.com/spf13/cobra"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "tripdeck",
	Short: "Local-first trip planner",
	Long:  "Plan trips from the terminal: itineraries, budgets, and packing lists, stored locally.",
	RunE:  runList,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the trip store directory")
}

func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  warning: %v (using defaults)\n", err)
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return cfg
}

// openRepo opens the SQLite store and loads the repository. The returned
// close function must be called before the command exits.
func openRepo(cfg config.Config) (*repo.Repository, func(), error) {
	kv, err := store.Open(config.DataPath(cfg))
	if err != nil {
		return nil, nil, err
	}
	r, err := repo.Open(kv)
	if err != nil {
		_ = kv.Close()
		return nil, nil, err
	}
	return r, func() { _ = kv.Close() }, nil
}

// findTrip resolves a trip reference: an exact id, a unique id prefix, or a
// case-insensitive destination match.
func findTrip(r *repo.Repository, ref string) (*model.Trip, error) {
	if t, err := r.Find(ref); err == nil {
		return t, nil
	}

	var matches []*model.Trip
	for _, t := range r.List() {
		if strings.HasPrefix(t.ID, ref) || strings.EqualFold(t.Destination, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("no trip matches %q", ref)
	default:
		return nil, fmt.Errorf("%q matches %d trips, use the id", ref, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func runList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	r, closeStore, err := openRepo(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	trips := r.List()
	if len(trips) == 0 {
		fmt.Println()
		fmt.Println(cli.Muted("No trips yet. Create one with `tripdeck new`."))
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(trips))
	for _, t := range trips {
		s := planner.Summarize(t)
		rows = append(rows, []string{
			shortID(t.ID),
			t.Destination,
			t.Type.Label(),
			cli.FormatDateRange(t.StartDate, t.EndDate),
			fmt.Sprintf("%d", s.Days),
			fmt.Sprintf("%d", s.Activities),
			cli.FormatMoney(cfg.General.Currency, s.Info.TotalSpent),
			cli.FormatPercent(s.PackingPercent),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("YOUR TRIPS"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Destination", "Type", "Dates", "Days", "Activities", "Spent", "Packed"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
