package planner

import (
	"tripdeck/internal/model"
)

// GenerateDays produces one Day per calendar day from start to end inclusive,
// numbered 1..N, each with an empty activity list. A same-day trip yields
// exactly one day. The range is validated here: an end before the start is a
// validation error, never a swapped or wrapped-around sequence.
func GenerateDays(start, end model.Date) ([]model.Day, error) {
	if end.Before(start.Time) {
		return nil, model.NewValidationError("end date must not be before start date")
	}

	count := start.DaysUntil(end) + 1
	days := make([]model.Day, count)
	for i := 0; i < count; i++ {
		days[i] = model.Day{
			DayNumber:  i + 1,
			Date:       start.AddDays(i),
			Activities: []model.Activity{},
		}
	}
	return days, nil
}
