package planner

import (
	"tripdeck/internal/model"
)

// TripInfo is the full trip projection shown on the summary view.
type TripInfo struct {
	Destination  string
	TypeLabel    string
	DurationDays int
	Activities   int
	TotalBudget  float64
	TotalSpent   float64
	Remaining    float64
	PackedItems  int
	TotalItems   int
}

// TripSummary composes the derived views of all three engines for one trip.
type TripSummary struct {
	Days           int
	Activities     int
	BudgetPercent  int
	PackingPercent int
	Info           TripInfo
}

// Summarize recomputes the consolidated view model for a trip. It is a pure
// read and must be called again after every mutation; nothing is cached.
func Summarize(trip *model.Trip) TripSummary {
	budget := SummarizeBudget(trip.Budget)
	packed := 0
	for _, it := range trip.PackingList {
		if it.Packed {
			packed++
		}
	}

	return TripSummary{
		Days:           len(trip.Days),
		Activities:     trip.ActivityCount(),
		BudgetPercent:  budget.Percentage,
		PackingPercent: PackingPercent(trip.PackingList),
		Info: TripInfo{
			Destination:  trip.Destination,
			TypeLabel:    trip.Type.Label(),
			DurationDays: len(trip.Days),
			Activities:   trip.ActivityCount(),
			TotalBudget:  budget.Total,
			TotalSpent:   budget.Spent,
			Remaining:    budget.Remaining,
			PackedItems:  packed,
			TotalItems:   len(trip.PackingList),
		},
	}
}
