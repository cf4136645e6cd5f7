// Package planner implements the trip domain operations: day generation,
// packing templates, and the itinerary, budget, and packing engines. All
// functions here are synchronous and mutate the trip they are given; callers
// persist through the repository after any successful mutation.
package planner

import (
	"strings"

	"tripdeck/internal/model"

	"github.com/google/uuid"
)

// NewTrip builds a complete trip: generated days for the date range, an empty
// budget, and a packing list seeded from the trip type's template.
func NewTrip(destination string, start, end model.Date, tripType model.TripType) (*model.Trip, error) {
	if strings.TrimSpace(destination) == "" {
		return nil, model.NewValidationError("destination is required")
	}
	if !tripType.Valid() {
		return nil, model.NewValidationError("unknown trip type " + string(tripType))
	}

	days, err := GenerateDays(start, end)
	if err != nil {
		return nil, err
	}

	return &model.Trip{
		ID:          uuid.NewString(),
		Destination: strings.TrimSpace(destination),
		StartDate:   start,
		EndDate:     end,
		Type:        tripType,
		Days:        days,
		Budget:      model.Budget{Total: 0, Expenses: []model.Expense{}},
		PackingList: GeneratePackingList(tripType, start, end),
	}, nil
}
