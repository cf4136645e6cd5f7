package cmd

import (
	"fmt"
	"strings"

	"tripdeck/internal/cli"
	"tripdeck/internal/model"
	"tripdeck/internal/planner"

	"github.com/spf13/cobra"
)

var (
	flagActivityDay   int
	flagActivityTime  string
	flagActivityNotes string
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Manage itinerary activities",
}

var activityAddCmd = &cobra.Command{
	Use:   "add <trip> <title>",
	Short: "Add an activity to a day (the day re-sorts by time)",
	Args:  cobra.ExactArgs(2),
	RunE:  runActivityAdd,
}

var activityDoneCmd = &cobra.Command{
	Use:   "done <trip> <activity>",
	Short: "Mark an activity completed",
	Args:  cobra.ExactArgs(2),
	RunE:  func(c *cobra.Command, args []string) error { return runActivityToggle(args, true) },
}

var activityUndoneCmd = &cobra.Command{
	Use:   "undone <trip> <activity>",
	Short: "Mark an activity not completed",
	Args:  cobra.ExactArgs(2),
	RunE:  func(c *cobra.Command, args []string) error { return runActivityToggle(args, false) },
}

var activityUpCmd = &cobra.Command{
	Use:   "up <trip> <activity>",
	Short: "Move an activity one slot earlier in its day",
	Args:  cobra.ExactArgs(2),
	RunE:  func(c *cobra.Command, args []string) error { return runActivityMove(args, planner.MoveUp) },
}

var activityDownCmd = &cobra.Command{
	Use:   "down <trip> <activity>",
	Short: "Move an activity one slot later in its day",
	Args:  cobra.ExactArgs(2),
	RunE:  func(c *cobra.Command, args []string) error { return runActivityMove(args, planner.MoveDown) },
}

var activityRmCmd = &cobra.Command{
	Use:   "rm <trip> <activity>",
	Short: "Delete an activity",
	Args:  cobra.ExactArgs(2),
	RunE:  runActivityRm,
}

func init() {
	activityAddCmd.Flags().IntVar(&flagActivityDay, "day", 1, "Day number (1-based)")
	activityAddCmd.Flags().StringVar(&flagActivityTime, "time", "", "Time of day (HH:MM, 24h)")
	activityAddCmd.Flags().StringVar(&flagActivityNotes, "notes", "", "Optional notes")
	_ = activityAddCmd.MarkFlagRequired("time")

	activityCmd.AddCommand(activityAddCmd, activityDoneCmd, activityUndoneCmd,
		activityUpCmd, activityDownCmd, activityRmCmd)
	rootCmd.AddCommand(activityCmd)
}

// resolveActivityID expands an id prefix to the matching activity's full id.
func resolveActivityID(trip *model.Trip, ref string) (string, error) {
	var matches []string
	for _, day := range trip.Days {
		for _, a := range day.Activities {
			if a.ID == ref {
				return a.ID, nil
			}
			if strings.HasPrefix(a.ID, ref) {
				matches = append(matches, a.ID)
			}
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no activity matches %q", ref)
	default:
		return "", fmt.Errorf("%q matches %d activities, use a longer prefix", ref, len(matches))
	}
}

func runActivityAdd(_ *cobra.Command, args []string) error {
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

	var added model.Activity
	err = r.Mutate(trip.ID, func(t *model.Trip) error {
		var err error
		added, err = planner.AddActivity(t, flagActivityDay, args[1], flagActivityTime, flagActivityNotes)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.Success(fmt.Sprintf("Activity %q added to day %d at %s (id %s)",
		added.Title, added.DayNumber, cli.FormatClock12(added.Time), shortID(added.ID))))
	fmt.Println()
	return nil
}

func runActivityToggle(args []string, completed bool) error {
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
	id, err := resolveActivityID(trip, args[1])
	if err != nil {
		return err
	}

	err = r.Mutate(trip.ID, func(t *model.Trip) error {
		planner.ToggleCompletion(t, id, completed)
		return nil
	})
	if err != nil {
		return err
	}

	state := "completed"
	if !completed {
		state = "not completed"
	}
	fmt.Println()
	fmt.Println(cli.Success("Activity marked " + state))
	fmt.Println()
	return nil
}

func runActivityMove(args []string, dir planner.MoveDirection) error {
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
	id, err := resolveActivityID(trip, args[1])
	if err != nil {
		return err
	}

	moved := false
	err = r.Mutate(trip.ID, func(t *model.Trip) error {
		moved = planner.MoveActivity(t, id, dir)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println()
	if moved {
		fmt.Println(cli.Success(fmt.Sprintf("Activity moved %s", dir)))
	} else {
		fmt.Println(cli.Muted(fmt.Sprintf("Already at the %s of its day", boundaryName(dir))))
	}
	fmt.Println()
	return nil
}

func boundaryName(dir planner.MoveDirection) string {
	if dir == planner.MoveUp {
		return "top"
	}
	return "bottom"
}

func runActivityRm(_ *cobra.Command, args []string) error {
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
	id, err := resolveActivityID(trip, args[1])
	if err != nil {
		return err
	}

	err = r.Mutate(trip.ID, func(t *model.Trip) error {
		planner.DeleteActivity(t, id)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.Success("Activity deleted"))
	fmt.Println()
	return nil
}
