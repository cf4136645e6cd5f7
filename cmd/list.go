package cmd

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all trips",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
