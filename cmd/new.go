package cmd

import (
	"fmt"

	"tripdeck/internal/cli"
	"tripdeck/internal/model"
	"tripdeck/internal/planner"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagNewFrom string
	flagNewTo   string
	flagNewType string
)

var newCmd = &cobra.Command{
	Use:   "new [destination]",
	Short: "Create a trip",
	Long:  "Create a trip with generated days and a packing list seeded from the trip type. Runs an interactive form when the destination or dates are omitted.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&flagNewFrom, "from", "", "Start date (YYYY-MM-DD)")
	newCmd.Flags().StringVar(&flagNewTo, "to", "", "End date (YYYY-MM-DD)")
	newCmd.Flags().StringVarP(&flagNewType, "type", "t", "", "Trip type (beach, winter, city, business, mountain, forest)")
	rootCmd.AddCommand(newCmd)
}

func runNew(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	destination := ""
	if len(args) > 0 {
		destination = args[0]
	}
	tripType := flagNewType
	if tripType == "" {
		tripType = cfg.General.DefaultTripType
	}

	if destination == "" || flagNewFrom == "" || flagNewTo == "" {
		if err := newTripForm(&destination, &flagNewFrom, &flagNewTo, &tripType); err != nil {
			return err
		}
	}

	start, err := model.ParseDate(flagNewFrom)
	if err != nil {
		return err
	}
	end, err := model.ParseDate(flagNewTo)
	if err != nil {
		return err
	}

	trip, err := planner.NewTrip(destination, start, end, model.TripType(tripType))
	if err != nil {
		return err
	}

	r, closeStore, err := openRepo(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := r.Create(trip); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.Success(fmt.Sprintf("Trip to %s created: %d days, %d packing items (id %s)",
		trip.Destination, len(trip.Days), len(trip.PackingList), shortID(trip.ID))))
	fmt.Println()
	return nil
}

func newTripForm(destination, from, to, tripType *string) error {
	typeOptions := make([]huh.Option[string], 0, len(model.TripTypes))
	for _, t := range model.TripTypes {
		typeOptions = append(typeOptions, huh.NewOption(t.Label(), string(t)))
	}

	validDate := func(s string) error {
		_, err := model.ParseDate(s)
		return err
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Destination").
				Value(destination).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("destination is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Value(from).
				Validate(validDate),
			huh.NewInput().
				Title("End date (YYYY-MM-DD)").
				Value(to).
				Validate(validDate),
			huh.NewSelect[string]().
				Title("Trip type").
				Options(typeOptions...).
				Value(tripType),
		),
	)
	return form.Run()
}
