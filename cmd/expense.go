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
	flagExpenseCategory string
	flagExpenseDay      int
	flagExpenseDesc     string
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Record and remove expenses",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add <trip> <amount>",
	Short: "Record an expense against the trip's budget",
	Args:  cobra.ExactArgs(2),
	RunE:  runExpenseAdd,
}

var expenseRmCmd = &cobra.Command{
	Use:   "rm <trip> <expense>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(2),
	RunE:  runExpenseRm,
}

func init() {
	expenseAddCmd.Flags().StringVarP(&flagExpenseCategory, "category", "c", "other", "Category (food, stay, transport, shopping, activities, other)")
	expenseAddCmd.Flags().IntVar(&flagExpenseDay, "day", 0, "Day number, 0 for the whole trip")
	expenseAddCmd.Flags().StringVar(&flagExpenseDesc, "desc", "", "Optional description")

	expenseCmd.AddCommand(expenseAddCmd, expenseRmCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseAdd(_ *cobra.Command, args []string) error {
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

	var amount float64
	if _, err := fmt.Sscanf(args[1], "%f", &amount); err != nil {
		return model.NewValidationError("expense amount must be a positive number")
	}

	var added model.Expense
	err = r.Mutate(trip.ID, func(t *model.Trip) error {
		var err error
		added, err = planner.AddExpense(t, model.ExpenseCategory(flagExpenseCategory), amount, flagExpenseDay, flagExpenseDesc)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.Success(fmt.Sprintf("Expense of %s recorded under %s (id %s)",
		cli.FormatMoney(cfg.General.Currency, added.Amount), added.Category.Label(), shortID(added.ID))))

	// Over-budget is advisory only; the expense is already recorded.
	if s := planner.SummarizeBudget(trip.Budget); s.OverBudget {
		fmt.Println(cli.Warn("You have exceeded your budget!"))
	}
	fmt.Println()
	return nil
}

func runExpenseRm(_ *cobra.Command, args []string) error {
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

	id := args[1]
	for _, e := range trip.Budget.Expenses {
		if strings.HasPrefix(e.ID, id) {
			id = e.ID
			break
		}
	}

	err = r.Mutate(trip.ID, func(t *model.Trip) error {
		planner.DeleteExpense(t, id)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.Success("Expense deleted"))
	fmt.Println()
	return nil
}
