package planner

import (
	"sort"
	"strings"
	"time"

	"tripdeck/internal/model"

	"github.com/google/uuid"
)

// MoveDirection selects which neighbor MoveActivity swaps with.
type MoveDirection string

// Move directions.
const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// AddActivity validates and inserts a new activity into the given day, then
// re-sorts the whole day ascending by time. The sort is stable, so activities
// sharing a time keep their insertion order — but any manual reordering the
// user did on that day is overwritten by the fresh time sort.
func AddActivity(trip *model.Trip, dayNumber int, title, clock, notes string) (model.Activity, error) {
	if strings.TrimSpace(title) == "" {
		return model.Activity{}, model.NewValidationError("activity title is required")
	}
	if _, err := time.Parse("15:04", clock); err != nil {
		return model.Activity{}, model.NewValidationError("invalid time " + clock + ": want HH:MM")
	}
	day := trip.FindDay(dayNumber)
	if day == nil {
		return model.Activity{}, model.NewValidationError("trip has no such day")
	}

	activity := model.Activity{
		ID:        uuid.NewString(),
		DayNumber: dayNumber,
		Title:     strings.TrimSpace(title),
		Time:      clock,
		Notes:     notes,
		Completed: false,
	}

	day.Activities = append(day.Activities, activity)
	// Lexicographic compare is correct for zero-padded "HH:MM".
	sort.SliceStable(day.Activities, func(i, j int) bool {
		return day.Activities[i].Time < day.Activities[j].Time
	})

	return activity, nil
}

// ToggleCompletion sets the completed flag on the activity with the given id.
// Completion does not affect ordering. Returns false when no activity matches.
func ToggleCompletion(trip *model.Trip, activityID string, completed bool) bool {
	for di := range trip.Days {
		for ai := range trip.Days[di].Activities {
			if trip.Days[di].Activities[ai].ID == activityID {
				trip.Days[di].Activities[ai].Completed = completed
				return true
			}
		}
	}
	return false
}

// MoveActivity swaps the activity with its immediate neighbor within the same
// day. Moving past the start or end of the day is a no-op, not an error. This
// is the one operation allowed to leave a day out of time order; the override
// holds until the next insertion re-sorts the day.
func MoveActivity(trip *model.Trip, activityID string, direction MoveDirection) bool {
	for di := range trip.Days {
		acts := trip.Days[di].Activities
		for ai := range acts {
			if acts[ai].ID != activityID {
				continue
			}
			switch direction {
			case MoveUp:
				if ai == 0 {
					return false
				}
				acts[ai-1], acts[ai] = acts[ai], acts[ai-1]
			case MoveDown:
				if ai == len(acts)-1 {
					return false
				}
				acts[ai], acts[ai+1] = acts[ai+1], acts[ai]
			default:
				return false
			}
			return true
		}
	}
	return false
}

// DeleteActivity removes the activity with the given id from whichever day
// contains it. A missing id is a silent no-op; the UI layer is expected to
// have already reconciled its view.
func DeleteActivity(trip *model.Trip, activityID string) bool {
	for di := range trip.Days {
		acts := trip.Days[di].Activities
		for ai := range acts {
			if acts[ai].ID == activityID {
				trip.Days[di].Activities = append(acts[:ai], acts[ai+1:]...)
				return true
			}
		}
	}
	return false
}

// FindActivity returns the activity with the given id, or nil.
func FindActivity(trip *model.Trip, activityID string) *model.Activity {
	for di := range trip.Days {
		for ai := range trip.Days[di].Activities {
			if trip.Days[di].Activities[ai].ID == activityID {
				return &trip.Days[di].Activities[ai]
			}
		}
	}
	return nil
}
