package tui

import (
	"fmt"
	"strings"

	"tripdeck/internal/cli"
	"tripdeck/internal/model"
	"tripdeck/internal/planner"
	"tripdeck/internal/tui/components"
)

func (a App) renderSummaryTab(trip *model.Trip, cw int) string {
	s := planner.Summarize(trip)
	info := s.Info
	cur := a.currency

	cards := []struct{ Label, Value string }{
		{"Days", fmt.Sprintf("%d", s.Days)},
		{"Activities", fmt.Sprintf("%d", s.Activities)},
		{"Budget Used", cli.FormatPercent(s.BudgetPercent)},
		{"Packed", cli.FormatPercent(s.PackingPercent)},
	}

	rows := [][2]string{
		{"Destination", info.Destination},
		{"Trip Type", info.TypeLabel},
		{"Duration", fmt.Sprintf("%d days", info.DurationDays)},
		{"Activities Planned", fmt.Sprintf("%d", info.Activities)},
		{"Total Budget", cli.FormatMoney(cur, info.TotalBudget)},
		{"Total Spent", cli.FormatMoney(cur, info.TotalSpent)},
		{"Remaining", cli.FormatMoney(cur, info.Remaining)},
		{"Packing Progress", fmt.Sprintf("%d/%d items", info.PackedItems, info.TotalItems)},
	}

	var body strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&body, "%-20s %s\n", row[0], row[1])
	}

	var b strings.Builder
	b.WriteString(components.StatCardRow(cards, cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Trip Info", strings.TrimRight(body.String(), "\n"), cw))
	return b.String()
}
