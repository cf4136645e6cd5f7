package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"tripdeck/internal/config"
	"tripdeck/internal/model"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to tripdeck!")
	fmt.Println()

	// 1. Currency symbol
	fmt.Println("  1. Currency symbol (display only)")
	fmt.Printf("     Current: %s\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.TrimSpace(currency)
	if currency != "" {
		cfg.General.Currency = currency
	}
	fmt.Println()

	// 2. Default trip type
	fmt.Println("  2. Default trip type for new trips")
	for i, t := range model.TripTypes {
		marker := ""
		if string(t) == cfg.General.DefaultTripType {
			marker = " [current]"
		}
		fmt.Printf("     (%d) %s%s\n", i+1, t.Label(), marker)
	}
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	for i, t := range model.TripTypes {
		if choice == fmt.Sprintf("%d", i+1) {
			cfg.General.DefaultTripType = string(t)
		}
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Dark [default]")
	fmt.Println("     (2) Light")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "light"
	default:
		cfg.Appearance.Theme = "dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `tripdeck setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
