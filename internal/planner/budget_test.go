package planner

import (
	"math"
	"testing"

	"tripdeck/internal/model"
)

func TestSetBudget(t *testing.T) {
	trip := testTrip(t)

	if err := SetBudget(trip, 5000); err != nil {
		t.Fatalf("SetBudget: %v", err)
	}
	// Setting again replaces, never accumulates.
	if err := SetBudget(trip, 3000); err != nil {
		t.Fatalf("SetBudget: %v", err)
	}
	if trip.Budget.Total != 3000 {
		t.Errorf("total = %v, want 3000", trip.Budget.Total)
	}

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		if err := SetBudget(trip, bad); err == nil || !model.IsValidation(err) {
			t.Errorf("SetBudget(%v): want validation error, got %v", bad, err)
		}
	}
}

func TestAddExpenseValidation(t *testing.T) {
	trip := testTrip(t) // 4 days

	tests := []struct {
		name     string
		category model.ExpenseCategory
		amount   float64
		day      int
	}{
		{"zero amount", model.ExpenseFood, 0, 0},
		{"negative amount", model.ExpenseFood, -5, 0},
		{"nan amount", model.ExpenseFood, math.NaN(), 0},
		{"unknown category", model.ExpenseCategory("bribes"), 10, 0},
		{"negative day", model.ExpenseFood, 10, -1},
		{"day past range", model.ExpenseFood, 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AddExpense(trip, tt.category, tt.amount, tt.day, "")
			if err == nil {
				t.Fatal("want error")
			}
			if !model.IsValidation(err) {
				t.Fatalf("want validation error, got %v", err)
			}
		})
	}
	if len(trip.Budget.Expenses) != 0 {
		t.Errorf("failed adds left %d expenses", len(trip.Budget.Expenses))
	}
}

func TestAddExpenseAppendsWithToday(t *testing.T) {
	trip := testTrip(t)

	e, err := AddExpense(trip, model.ExpenseStay, 120.50, 2, "hostel")
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if e.ID == "" {
		t.Error("expense has no id")
	}
	if e.Date.String() != model.Today().String() {
		t.Errorf("expense dated %s, want today", e.Date)
	}
	// Day 0 scopes to the whole trip and the last valid day is accepted.
	if _, err := AddExpense(trip, model.ExpenseFood, 10, 0, ""); err != nil {
		t.Errorf("day 0: %v", err)
	}
	if _, err := AddExpense(trip, model.ExpenseFood, 10, 4, ""); err != nil {
		t.Errorf("last day: %v", err)
	}
}

func TestSummarizeBudget(t *testing.T) {
	tests := []struct {
		name    string
		total   float64
		amounts []float64
		want    BudgetSummary
	}{
		{
			"no budget set",
			0, []float64{25},
			BudgetSummary{Total: 0, Spent: 25, Remaining: 0, Percentage: 0, OverBudget: false},
		},
		{
			"under budget",
			100, []float64{20, 30},
			BudgetSummary{Total: 100, Spent: 50, Remaining: 50, Percentage: 50, OverBudget: false},
		},
		{
			"over budget clamps remaining",
			100, []float64{80, 45},
			BudgetSummary{Total: 100, Spent: 125, Remaining: 0, Percentage: 125, OverBudget: true},
		},
		{
			"percentage rounds",
			300, []float64{100},
			BudgetSummary{Total: 300, Spent: 100, Remaining: 200, Percentage: 33, OverBudget: false},
		},
		{
			"exactly at budget",
			100, []float64{100},
			BudgetSummary{Total: 100, Spent: 100, Remaining: 0, Percentage: 100, OverBudget: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := model.Budget{Total: tt.total}
			for _, amt := range tt.amounts {
				b.Expenses = append(b.Expenses, model.Expense{Amount: amt, Category: model.ExpenseFood})
			}
			if got := SummarizeBudget(b); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCategoryBreakdown(t *testing.T) {
	b := model.Budget{Expenses: []model.Expense{
		{Category: model.ExpenseOther, Amount: 10},
		{Category: model.ExpenseFood, Amount: 60},
		{Category: model.ExpenseFood, Amount: 20},
		{Category: model.ExpenseTransport, Amount: 10},
	}}

	rows := CategoryBreakdown(b)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	// Canonical category order, not insertion or amount order.
	if rows[0].Category != model.ExpenseFood || rows[0].Amount != 80 || rows[0].Percent != 80 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Category != model.ExpenseTransport || rows[1].Percent != 10 {
		t.Errorf("row 1 = %+v", rows[1])
	}
	if rows[2].Category != model.ExpenseOther {
		t.Errorf("row 2 = %+v", rows[2])
	}
}

func TestDeleteExpense(t *testing.T) {
	trip := testTrip(t)
	e, _ := AddExpense(trip, model.ExpenseFood, 10, 0, "")

	if !DeleteExpense(trip, e.ID) {
		t.Fatal("delete reported no match")
	}
	if len(trip.Budget.Expenses) != 0 {
		t.Error("expense still present")
	}
	if DeleteExpense(trip, e.ID) {
		t.Error("second delete reported a match")
	}
}
