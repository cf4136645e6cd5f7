package cmd

import (
	"fmt"
	"strings"

	"tripdeck/internal/cli"
	"tripdeck/internal/model"
	"tripdeck/internal/planner"

	"github.com/spf13/cobra"
)

var flagItemCategory string

var packingCmd = &cobra.Command{
	Use:   "packing",
	Short: "Manage a trip's packing checklist",
}

var packingShowCmd = &cobra.Command{
	Use:   "show <trip>",
	Short: "Show the packing list grouped by category",
	Args:  cobra.ExactArgs(1),
	RunE:  runPackingShow,
}

var packingCheckCmd = &cobra.Command{
	Use:   "check <trip> <item>",
	Short: "Toggle an item between packed and unpacked",
	Args:  cobra.ExactArgs(2),
	RunE:  runPackingCheck,
}

var packingAddCmd = &cobra.Command{
	Use:   "add <trip> <name>",
	Short: "Add a custom item to the packing list",
	Args:  cobra.ExactArgs(2),
	RunE:  runPackingAdd,
}

var packingRmCmd = &cobra.Command{
	Use:   "rm <trip> <item>",
	Short: "Delete an item from the packing list",
	Args:  cobra.ExactArgs(2),
	RunE:  runPackingRm,
}

func init() {
	packingAddCmd.Flags().StringVarP(&flagItemCategory, "category", "c", "other", "Category (clothes, accessories, toiletries, electronics, documents, essentials, other)")

	packingCmd.AddCommand(packingShowCmd, packingCheckCmd, packingAddCmd, packingRmCmd)
	rootCmd.AddCommand(packingCmd)
}

// resolveItemID expands an id prefix to the matching packing item's full id.
func resolveItemID(trip *model.Trip, ref string) (string, error) {
	var matches []string
	for _, it := range trip.PackingList {
		if it.ID == ref {
			return it.ID, nil
		}
		if strings.HasPrefix(it.ID, ref) {
			matches = append(matches, it.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no packing item matches %q", ref)
	default:
		return "", fmt.Errorf("%q matches %d items, use a longer prefix", ref, len(matches))
	}
}

func runPackingShow(_ *cobra.Command, args []string) error {
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
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PACKING  %s", trip.Destination)))
	fmt.Println()
	fmt.Println("  " + cli.RenderProgressBar(planner.PackingPercent(trip.PackingList), 30))
	fmt.Println()

	for _, cat := range planner.PackingByCategory(trip.PackingList) {
		fmt.Printf("  %s (%d/%d)\n", cat.Category.Label(), cat.Packed, cat.Total)
		for _, it := range trip.PackingList {
			if it.Category != cat.Category {
				continue
			}
			mark := "[ ]"
			if it.Packed {
				mark = "[x]"
			}
			custom := ""
			if it.IsCustom {
				custom = " (custom)"
			}
			fmt.Printf("    %s %s  %s%s\n", mark, shortID(it.ID), it.Name, custom)
		}
		fmt.Println()
	}
	return nil
}

func runPackingCheck(_ *cobra.Command, args []string) error {
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
	id, err := resolveItemID(trip, args[1])
	if err != nil {
		return err
	}

	err = r.Mutate(trip.ID, func(t *model.Trip) error {
		planner.TogglePacked(t, id)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.Success(fmt.Sprintf("Packing %d%% complete", planner.PackingPercent(trip.PackingList))))
	fmt.Println()
	return nil
}

func runPackingAdd(_ *cobra.Command, args []string) error {
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

	var added model.PackingItem
	err = r.Mutate(trip.ID, func(t *model.Trip) error {
		var err error
		added, err = planner.AddCustomItem(t, args[1], model.ItemCategory(flagItemCategory))
		return err
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.Success(fmt.Sprintf("Custom item %q added under %s (id %s)",
		added.Name, added.Category.Label(), shortID(added.ID))))
	fmt.Println()
	return nil
}

func runPackingRm(_ *cobra.Command, args []string) error {
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
	id, err := resolveItemID(trip, args[1])
	if err != nil {
		return err
	}

	err = r.Mutate(trip.ID, func(t *model.Trip) error {
		planner.DeleteItem(t, id)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.Success("Packing item deleted"))
	fmt.Println()
	return nil
}
