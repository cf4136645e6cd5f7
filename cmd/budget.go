package cmd

import (
	"fmt"
	"strconv"

	"tripdeck/internal/cli"
	"tripdeck/internal/model"
	"tripdeck/internal/planner"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage a trip's budget",
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <trip> <amount>",
	Short: "Set the total budget (replaces the previous total)",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetSet,
}

var budgetShowCmd = &cobra.Command{
	Use:   "show <trip>",
	Short: "Show budget overview, expenses, and category breakdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetShow,
}

func init() {
	budgetCmd.AddCommand(budgetSetCmd, budgetShowCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetSet(_ *cobra.Command, args []string) error {
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

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return model.NewValidationError("budget must be a non-negative amount")
	}

	err = r.Mutate(trip.ID, func(t *model.Trip) error {
		return planner.SetBudget(t, amount)
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.Success(fmt.Sprintf("Budget set to %s", cli.FormatMoney(cfg.General.Currency, amount))))
	fmt.Println()
	return nil
}

func runBudgetShow(_ *cobra.Command, args []string) error {
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
	cur := cfg.General.Currency
	s := planner.SummarizeBudget(trip.Budget)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET  %s", trip.Destination)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Overview",
		Headers: []string{"Total", "Spent", "Remaining", "Used"},
		Rows: [][]string{{
			cli.FormatMoney(cur, s.Total),
			cli.FormatMoney(cur, s.Spent),
			cli.FormatMoney(cur, s.Remaining),
			cli.FormatPercent(s.Percentage),
		}},
	}))
	if s.OverBudget {
		fmt.Println(cli.Warn("You have exceeded your budget!"))
	}
	fmt.Println()

	if len(trip.Budget.Expenses) == 0 {
		fmt.Println(cli.Muted("No expenses added yet"))
		fmt.Println()
		return nil
	}

	// Newest first, matching the ledger's append order reversed.
	rows := make([][]string, 0, len(trip.Budget.Expenses))
	for i := len(trip.Budget.Expenses) - 1; i >= 0; i-- {
		e := trip.Budget.Expenses[i]
		dayText := "General"
		if e.Day > 0 {
			dayText = fmt.Sprintf("Day %d", e.Day)
		}
		rows = append(rows, []string{
			shortID(e.ID),
			e.Category.Label(),
			dayText,
			e.Date.String(),
			e.Description,
			cli.FormatMoney(cur, e.Amount),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Expenses",
		Headers: []string{"ID", "Category", "Day", "Date", "Description", "Amount"},
		Rows:    rows,
	}))
	fmt.Println()

	breakdown := planner.CategoryBreakdown(trip.Budget)
	maxAmount := 0.0
	for _, row := range breakdown {
		if row.Amount > maxAmount {
			maxAmount = row.Amount
		}
	}
	fmt.Println("  Spending by category")
	for _, row := range breakdown {
		fmt.Printf("  %-14s %-24s %s (%d%%)\n",
			row.Category.Label(),
			cli.RenderHorizontalBar(row.Amount, maxAmount, 24),
			cli.FormatMoney(cur, row.Amount),
			row.Percent,
		)
	}
	fmt.Println()
	return nil
}
