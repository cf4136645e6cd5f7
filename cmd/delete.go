package cmd

import (
	"fmt"

	"tripdeck/internal/cli"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <trip>",
	Short: "Delete a trip permanently",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
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

	removed, err := r.Delete(trip.ID)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.Success(fmt.Sprintf("Trip to %s deleted", removed.Destination)))
	fmt.Println()
	return nil
}
