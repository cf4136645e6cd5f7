package tui

import (
	"fmt"
	"strings"

	"tripdeck/internal/cli"
	"tripdeck/internal/model"
	"tripdeck/internal/tui/components"
	"tripdeck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderItineraryTab(trip *model.Trip, cw int) string {
	t := theme.Active

	dayStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	activeDayStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	selStyle := lipgloss.NewStyle().Background(t.SurfaceHover).Foreground(t.TextPrimary)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	doneStyle := lipgloss.NewStyle().Foreground(t.TextDim).Strikethrough(true)
	timeStyle := lipgloss.NewStyle().Foreground(t.Accent)
	notesStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	// Day strip: h/l moves the selection.
	var strip []string
	for i, day := range trip.Days {
		label := fmt.Sprintf("Day %d", day.DayNumber)
		if i == a.dayIdx {
			strip = append(strip, activeDayStyle.Render("["+label+"]"))
		} else {
			strip = append(strip, dayStyle.Render(" "+label+" "))
		}
	}

	var b strings.Builder
	b.WriteString(" " + strings.Join(strip, " "))
	b.WriteString("\n\n")

	day := trip.FindDay(a.dayIdx + 1)
	if day == nil {
		b.WriteString(mutedStyle.Render("  No days in this trip."))
		return b.String()
	}

	b.WriteString(" " + activeDayStyle.Render(cli.FormatDayHeading(*day)))
	b.WriteString("\n\n")

	if len(day.Activities) == 0 {
		b.WriteString(mutedStyle.Render("  Nothing planned for this day. Add activities with `tripdeck activity add`."))
		b.WriteString("\n")
		return b.String()
	}

	inner := components.CardInnerWidth(cw)
	for i, act := range day.Activities {
		mark := "○"
		style := rowStyle
		if act.Completed {
			mark = "●"
			style = doneStyle
		}
		cursor := "  "
		if i == a.actCursor {
			cursor = " " + selStyle.Render("▸")
		}
		line := fmt.Sprintf("%s%s %s  %s", cursor, mark,
			timeStyle.Render(fmt.Sprintf("%-8s", cli.FormatClock12(act.Time))),
			style.Render(truncStr(act.Title, inner-20)))
		b.WriteString(line + "\n")
		if act.Notes != "" {
			b.WriteString(notesStyle.Render("        "+truncStr(act.Notes, inner-10)) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  space done · u/d reorder · x delete · h/l switch day"))
	return b.String()
}
