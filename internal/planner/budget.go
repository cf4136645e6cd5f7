package planner

import (
	"math"

	"tripdeck/internal/model"

	"github.com/google/uuid"
)

// BudgetSummary holds the derived budget figures for one trip. It is computed
// on demand from the expense ledger and never cached.
type BudgetSummary struct {
	Total      float64
	Spent      float64
	Remaining  float64 // never negative, even when over budget
	Percentage int     // round(spent/total*100), 0 when no budget is set
	OverBudget bool    // spent > total > 0; advisory, never blocks additions
}

// CategorySpend is one row of the per-category expense breakdown.
type CategorySpend struct {
	Category model.ExpenseCategory
	Amount   float64
	Percent  int // share of total spent
}

// SetBudget replaces the trip's total budget. Amounts must be finite and
// non-negative; the previous total is not accumulated into.
func SetBudget(trip *model.Trip, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return model.NewValidationError("budget must be a non-negative amount")
	}
	trip.Budget.Total = amount
	return nil
}

// AddExpense appends a new expense to the ledger with today's date. The ledger
// is append-only: there is no edit operation, corrections are delete + re-add.
// Day 0 scopes the expense to the whole trip; any other value must name an
// existing day.
func AddExpense(trip *model.Trip, category model.ExpenseCategory, amount float64, day int, description string) (model.Expense, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return model.Expense{}, model.NewValidationError("expense amount must be a positive number")
	}
	if !category.Valid() {
		return model.Expense{}, model.NewValidationError("unknown expense category " + string(category))
	}
	if day < 0 || day > len(trip.Days) {
		return model.Expense{}, model.NewValidationError("expense day is out of range")
	}

	expense := model.Expense{
		ID:          uuid.NewString(),
		Category:    category,
		Amount:      amount,
		Day:         day,
		Description: description,
		Date:        model.Today(),
	}
	trip.Budget.Expenses = append(trip.Budget.Expenses, expense)
	return expense, nil
}

// DeleteExpense removes the expense with the given id. A missing id is a
// silent no-op.
func DeleteExpense(trip *model.Trip, expenseID string) bool {
	for i := range trip.Budget.Expenses {
		if trip.Budget.Expenses[i].ID == expenseID {
			trip.Budget.Expenses = append(trip.Budget.Expenses[:i], trip.Budget.Expenses[i+1:]...)
			return true
		}
	}
	return false
}

// SummarizeBudget computes the derived budget figures from the current ledger.
func SummarizeBudget(b model.Budget) BudgetSummary {
	var spent float64
	for _, e := range b.Expenses {
		spent += e.Amount
	}

	s := BudgetSummary{
		Total:     b.Total,
		Spent:     spent,
		Remaining: math.Max(0, b.Total-spent),
	}
	if b.Total > 0 {
		s.Percentage = int(math.Round(spent / b.Total * 100))
		s.OverBudget = spent > b.Total
	}
	return s
}

// CategoryBreakdown groups expense amounts by category, each with its share of
// the total spent. Categories with no expenses are omitted; rows follow the
// canonical category order.
func CategoryBreakdown(b model.Budget) []CategorySpend {
	amounts := make(map[model.ExpenseCategory]float64)
	var spent float64
	for _, e := range b.Expenses {
		amounts[e.Category] += e.Amount
		spent += e.Amount
	}

	var rows []CategorySpend
	for _, cat := range model.ExpenseCategories {
		amount, ok := amounts[cat]
		if !ok {
			continue
		}
		row := CategorySpend{Category: cat, Amount: amount}
		if spent > 0 {
			row.Percent = int(math.Round(amount / spent * 100))
		}
		rows = append(rows, row)
	}
	return rows
}
