package tui

import (
	"fmt"
	"strings"

	"tripdeck/internal/model"
	"tripdeck/internal/planner"
	"tripdeck/internal/tui/components"
	"tripdeck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderPackingTab(trip *model.Trip, cw int) string {
	t := theme.Active

	catStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	selStyle := lipgloss.NewStyle().Background(t.SurfaceHover).Foreground(t.TextPrimary)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	packedStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(" " + components.ProgressBar("Packed", float64(planner.PackingPercent(trip.PackingList))/100, 8, cw-22))
	b.WriteString("\n\n")

	if len(trip.PackingList) == 0 {
		b.WriteString(mutedStyle.Render("  The packing list is empty."))
		return b.String()
	}

	byCat := planner.PackingByCategory(trip.PackingList)
	items := orderedItems(trip)

	idx := 0
	for _, cat := range byCat {
		b.WriteString(" " + catStyle.Render(fmt.Sprintf("%s (%d/%d)", cat.Category.Label(), cat.Packed, cat.Total)))
		b.WriteString("\n")
		for _, it := range items[idx : idx+cat.Total] {
			mark := "[ ]"
			style := rowStyle
			if it.Packed {
				mark = "[x]"
				style = packedStyle
			}
			custom := ""
			if it.IsCustom {
				custom = " (custom)"
			}
			line := fmt.Sprintf(" %s %s%s", mark, it.Name, custom)
			if idx == a.packIdx {
				b.WriteString("  " + selStyle.Render("▸"+line) + "\n")
			} else {
				b.WriteString("  " + style.Render(" "+line) + "\n")
			}
			idx++
		}
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render("  space pack · x delete"))
	return b.String()
}
