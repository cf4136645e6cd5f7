package tui

import (
	"fmt"
	"strings"

	"tripdeck/internal/cli"
	"tripdeck/internal/model"
	"tripdeck/internal/planner"
	"tripdeck/internal/tui/components"
	"tripdeck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBudgetTab(trip *model.Trip, cw int) string {
	t := theme.Active
	s := planner.SummarizeBudget(trip.Budget)
	cur := a.currency

	warnStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	cards := []struct{ Label, Value string }{
		{"Total Budget", cli.FormatMoney(cur, s.Total)},
		{"Spent", cli.FormatMoney(cur, s.Spent)},
		{"Remaining", cli.FormatMoney(cur, s.Remaining)},
	}

	var b strings.Builder
	b.WriteString(components.StatCardRow(cards, cw))
	b.WriteString("\n")

	if s.Total > 0 {
		b.WriteString(" " + components.ProgressBar("Used", float64(s.Percentage)/100, 10, cw-24))
		b.WriteString("\n")
	}
	if s.OverBudget {
		b.WriteString(warnStyle.Render(" You have exceeded your budget!"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(trip.Budget.Expenses) == 0 {
		b.WriteString(mutedStyle.Render("  No expenses added yet"))
		return b.String()
	}

	// Recent expenses, newest first.
	b.WriteString(mutedStyle.Render("  Recent expenses"))
	b.WriteString("\n")
	shown := 0
	for i := len(trip.Budget.Expenses) - 1; i >= 0 && shown < 8; i-- {
		e := trip.Budget.Expenses[i]
		dayText := "General"
		if e.Day > 0 {
			dayText = fmt.Sprintf("Day %d", e.Day)
		}
		b.WriteString(rowStyle.Render(fmt.Sprintf("  %-14s %-8s %10s  %s",
			e.Category.Label(), dayText, cli.FormatMoney(cur, e.Amount), truncStr(e.Description, 30))))
		b.WriteString("\n")
		shown++
	}
	b.WriteString("\n")

	breakdown := planner.CategoryBreakdown(trip.Budget)
	if len(breakdown) > 0 {
		b.WriteString(mutedStyle.Render("  By category"))
		b.WriteString("\n")
		for _, row := range breakdown {
			b.WriteString(" " + components.ProgressBar(row.Category.Label(), float64(row.Percent)/100, 14, cw-28))
			b.WriteString("\n")
		}
	}

	return b.String()
}
