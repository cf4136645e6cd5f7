package planner

import (
	"testing"

	"tripdeck/internal/model"
)

func TestSummarizeRecomputes(t *testing.T) {
	trip := testTrip(t)

	s := Summarize(trip)
	if s.Days != 4 || s.Activities != 0 || s.BudgetPercent != 0 || s.PackingPercent != 0 {
		t.Fatalf("fresh trip summary = %+v", s)
	}
	if s.Info.TypeLabel != "City" {
		t.Errorf("type label = %q", s.Info.TypeLabel)
	}

	_ = SetBudget(trip, 200)
	if _, err := AddExpense(trip, model.ExpenseFood, 50, 0, ""); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if _, err := AddActivity(trip, 1, "museum", "10:00", ""); err != nil {
		t.Fatalf("AddActivity: %v", err)
	}
	TogglePacked(trip, trip.PackingList[0].ID)

	s = Summarize(trip)
	if s.Activities != 1 {
		t.Errorf("activities = %d, want 1", s.Activities)
	}
	if s.BudgetPercent != 25 {
		t.Errorf("budget percent = %d, want 25", s.BudgetPercent)
	}
	if s.Info.Remaining != 150 {
		t.Errorf("remaining = %v, want 150", s.Info.Remaining)
	}
	if s.Info.PackedItems != 1 || s.Info.TotalItems != len(trip.PackingList) {
		t.Errorf("packing = %d/%d", s.Info.PackedItems, s.Info.TotalItems)
	}
}
