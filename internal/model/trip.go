// Package model defines the trip planning domain types. The JSON tags are the
// wire contract for the persisted trip records; field names must not change.
package model

// Trip is the top-level planning unit: a destination, a date range, the
// generated days with their activities, a budget ledger, and a packing list.
// A trip exclusively owns everything below it; nothing is shared across trips.
type Trip struct {
	ID          string        `json:"id"`
	Destination string        `json:"destination"`
	StartDate   Date          `json:"startDate"`
	EndDate     Date          `json:"endDate"`
	Type        TripType      `json:"type"`
	Days        []Day         `json:"days"`
	Budget      Budget        `json:"budget"`
	PackingList []PackingItem `json:"packingList"`
}

// Day is one calendar day of a trip. DayNumber is 1-based and contiguous,
// matching the day's position in the trip's Days slice. The day count is fixed
// for the life of the trip.
type Day struct {
	DayNumber  int        `json:"dayNumber"`
	Date       Date       `json:"date"`
	Activities []Activity `json:"activities"`
}

// Activity is a scheduled itinerary entry. Within a day, activities are kept
// sorted ascending by Time on insertion; a manual move may break that order
// and the override persists until the next insertion re-sorts the day.
type Activity struct {
	ID        string `json:"id"`
	DayNumber int    `json:"dayNumber"`
	Title     string `json:"title"`
	Time      string `json:"time"` // "HH:MM", zero-padded; also the sort key
	Notes     string `json:"notes"`
	Completed bool   `json:"completed"`
}

// Budget holds the trip's total budget and its expense ledger. Expenses are
// append-only: newest last, corrections are delete + re-add.
type Budget struct {
	Total    float64   `json:"total"`
	Expenses []Expense `json:"expenses"`
}

// Expense is one recorded spend. Day 0 means the expense is not scoped to a
// particular day ("all days"). Date is set when the expense is added and is
// not editable.
type Expense struct {
	ID          string          `json:"id"`
	Category    ExpenseCategory `json:"category"`
	Amount      float64         `json:"amount"`
	Day         int             `json:"day"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
}

// PackingItem is one checklist entry, either seeded from the trip type's
// template (IsCustom=false) or added by the user (IsCustom=true).
type PackingItem struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category ItemCategory `json:"category"`
	Packed   bool         `json:"packed"`
	IsCustom bool         `json:"isCustom"`
}

// FindDay returns the day with the given 1-based number, or nil.
func (t *Trip) FindDay(dayNumber int) *Day {
	for i := range t.Days {
		if t.Days[i].DayNumber == dayNumber {
			return &t.Days[i]
		}
	}
	return nil
}

// ActivityCount returns the total number of activities across all days.
func (t *Trip) ActivityCount() int {
	n := 0
	for _, d := range t.Days {
		n += len(d.Activities)
	}
	return n
}
