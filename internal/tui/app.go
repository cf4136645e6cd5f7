// Package tui provides the interactive Bubble Tea dashboard for tripdeck.
package tui

import (
	"fmt"
	"strings"
	"time"

	"tripdeck/internal/model"
	"tripdeck/internal/planner"
	"tripdeck/internal/repo"
	"tripdeck/internal/tui/components"
	"tripdeck/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View states.
const (
	viewList = iota
	viewDetail
)

// App is the root Bubble Tea model.
type App struct {
	repo     *repo.Repository
	currency string

	// UI state
	width     int
	height    int
	view      int
	activeTab int
	showHelp  bool
	statusMsg string

	// Trip list state
	listCursor int

	// Detail state
	tripID    string
	dayIdx    int // selected day in the itinerary tab
	actCursor int // selected activity within the day
	packIdx   int // selected packing item (category-ordered)

	// Theme preference, persisted through the repository
	dark bool

	quoteIdx int
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 110
	minContentHeight = 5
)

// NewApp creates a new TUI app model. The repository is opened by the caller
// and stays open for the lifetime of the program.
func NewApp(r *repo.Repository, currency string) App {
	dark := r.DarkMode()
	if dark {
		theme.SetActive("dark")
	} else {
		theme.SetActive("light")
	}
	return App{
		repo:     r,
		currency: currency,
		dark:     dark,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return quoteTickCmd()
}

type quoteTickMsg struct{}

func quoteTickCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return quoteTickMsg{}
	})
}

func (a App) currentTrip() *model.Trip {
	t, err := a.repo.Find(a.tripID)
	if err != nil {
		return nil
	}
	return t
}

// orderedItems returns the packing list flattened in category display order,
// so the cursor walks the same rows the packing tab renders.
func orderedItems(trip *model.Trip) []model.PackingItem {
	var out []model.PackingItem
	for _, cat := range model.ItemCategories {
		for _, it := range trip.PackingList {
			if it.Category == cat {
				out = append(out, it)
			}
		}
	}
	return out
}

func (a *App) clampCursors() {
	trips := a.repo.List()
	if a.listCursor >= len(trips) {
		a.listCursor = len(trips) - 1
	}
	if a.listCursor < 0 {
		a.listCursor = 0
	}

	trip := a.currentTrip()
	if trip == nil {
		return
	}
	if a.dayIdx >= len(trip.Days) {
		a.dayIdx = len(trip.Days) - 1
	}
	if a.dayIdx < 0 {
		a.dayIdx = 0
	}
	if a.dayIdx < len(trip.Days) {
		n := len(trip.Days[a.dayIdx].Activities)
		if a.actCursor >= n {
			a.actCursor = n - 1
		}
	}
	if a.actCursor < 0 {
		a.actCursor = 0
	}
	if a.packIdx >= len(trip.PackingList) {
		a.packIdx = len(trip.PackingList) - 1
	}
	if a.packIdx < 0 {
		a.packIdx = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case quoteTickMsg:
		a.quoteIdx = (a.quoteIdx + 1) % len(quotes)
		return a, quoteTickCmd()

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Theme toggle, persisted alongside the trips.
		if key == "D" {
			a.dark = !a.dark
			if a.dark {
				theme.SetActive("dark")
			} else {
				theme.SetActive("light")
			}
			_ = a.repo.SetDarkMode(a.dark)
			return a, nil
		}

		if a.view == viewList {
			return a.updateList(key)
		}
		return a.updateDetail(key)
	}

	return a, nil
}

func (a App) updateList(key string) (tea.Model, tea.Cmd) {
	trips := a.repo.List()

	switch key {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.listCursor < len(trips)-1 {
			a.listCursor++
		}
	case "k", "up":
		if a.listCursor > 0 {
			a.listCursor--
		}
	case "enter":
		if len(trips) > 0 {
			a.tripID = trips[a.listCursor].ID
			a.view = viewDetail
			a.activeTab = 0
			a.dayIdx = 0
			a.actCursor = 0
			a.packIdx = 0
			a.statusMsg = ""
		}
	}
	return a, nil
}

func (a App) updateDetail(key string) (tea.Model, tea.Cmd) {
	trip := a.currentTrip()
	if trip == nil {
		a.view = viewList
		return a, nil
	}
	a.statusMsg = ""

	switch key {
	case "q", "esc":
		a.view = viewList
		return a, nil
	case "tab", "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "shift+tab", "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	switch a.activeTab {
	case 0:
		return a.updateItinerary(key, trip)
	case 2:
		return a.updatePacking(key, trip)
	}
	return a, nil
}

func (a App) updateItinerary(key string, trip *model.Trip) (tea.Model, tea.Cmd) {
	day := trip.FindDay(a.dayIdx + 1)

	switch key {
	case "h":
		if a.dayIdx > 0 {
			a.dayIdx--
			a.actCursor = 0
		}
	case "l":
		if a.dayIdx < len(trip.Days)-1 {
			a.dayIdx++
			a.actCursor = 0
		}
	case "j", "down":
		if day != nil && a.actCursor < len(day.Activities)-1 {
			a.actCursor++
		}
	case "k", "up":
		if a.actCursor > 0 {
			a.actCursor--
		}
	case " ":
		if day != nil && a.actCursor < len(day.Activities) {
			act := day.Activities[a.actCursor]
			_ = a.repo.Mutate(trip.ID, func(t *model.Trip) error {
				planner.ToggleCompletion(t, act.ID, !act.Completed)
				return nil
			})
		}
	case "u", "d":
		if day != nil && a.actCursor < len(day.Activities) {
			act := day.Activities[a.actCursor]
			dir := planner.MoveUp
			if key == "d" {
				dir = planner.MoveDown
			}
			moved := false
			_ = a.repo.Mutate(trip.ID, func(t *model.Trip) error {
				moved = planner.MoveActivity(t, act.ID, dir)
				return nil
			})
			if moved {
				if key == "u" {
					a.actCursor--
				} else {
					a.actCursor++
				}
			}
		}
	case "x":
		if day != nil && a.actCursor < len(day.Activities) {
			act := day.Activities[a.actCursor]
			_ = a.repo.Mutate(trip.ID, func(t *model.Trip) error {
				planner.DeleteActivity(t, act.ID)
				return nil
			})
			a.clampCursors()
		}
	}
	return a, nil
}

func (a App) updatePacking(key string, trip *model.Trip) (tea.Model, tea.Cmd) {
	items := orderedItems(trip)

	switch key {
	case "j", "down":
		if a.packIdx < len(items)-1 {
			a.packIdx++
		}
	case "k", "up":
		if a.packIdx > 0 {
			a.packIdx--
		}
	case " ":
		if a.packIdx < len(items) {
			id := items[a.packIdx].ID
			_ = a.repo.Mutate(trip.ID, func(t *model.Trip) error {
				planner.TogglePacked(t, id)
				return nil
			})
		}
	case "x":
		if a.packIdx < len(items) {
			id := items[a.packIdx].ID
			_ = a.repo.Mutate(trip.ID, func(t *model.Trip) error {
				planner.DeleteItem(t, id)
				return nil
			})
			a.clampCursors()
		}
	}
	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  tripdeck needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if a.showHelp {
		return a.viewHelp()
	}
	if a.view == viewList {
		return a.viewTripList()
	}
	return a.viewTripDetail()
}

func (a App) viewHelp() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	bindings := []struct{ key, desc string }{
		{"j k", "Move cursor"},
		{"h l", "Previous / next day"},
		{"enter", "Open trip"},
		{"i b p s", "Jump to tab"},
		{"tab", "Next tab"},
		{"space", "Toggle done / packed"},
		{"u d", "Move activity up / down"},
		{"x", "Delete activity / item"},
		{"D", "Toggle dark mode"},
		{"esc", "Back"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewTripList() string {
	t := theme.Active
	cw := a.contentWidth()
	trips := a.repo.List()

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selStyle := lipgloss.NewStyle().Background(t.SurfaceHover).Foreground(t.TextPrimary).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("tripdeck") + mutedStyle.Render("  ·  Your Trips"))
	b.WriteString("\n\n")

	if len(trips) == 0 {
		b.WriteString(mutedStyle.Render("  No trips yet. Create one with `tripdeck new`."))
		b.WriteString("\n")
	}

	for i, trip := range trips {
		s := planner.Summarize(trip)
		line := fmt.Sprintf("  %-24s %-18s %2d days  %2d activities",
			truncStr(trip.Destination, 24),
			trip.StartDate.String()+" →",
			s.Days,
			s.Activities,
		)
		if i == a.listCursor {
			b.WriteString(selStyle.Render("▸"+line[1:]) + "\n")
		} else {
			b.WriteString(rowStyle.Render(line) + "\n")
		}
	}

	content := b.String()
	content = padHeight(truncateHeight(content, a.height-2), a.height-2)
	return content + a.statusLine(cw)
}

func (a App) viewTripDetail() string {
	trip := a.currentTrip()
	if trip == nil {
		return a.viewTripList()
	}

	t := theme.Active
	cw := a.contentWidth()

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	header := " " + titleStyle.Render(trip.Destination) +
		mutedStyle.Render(fmt.Sprintf("  %s → %s  ·  %s",
			trip.StartDate.String(), trip.EndDate.String(), trip.Type.Label())) +
		"\n" + components.RenderTabBar(a.activeTab, cw) + "\n"

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderItineraryTab(trip, cw)
	case 1:
		content = a.renderBudgetTab(trip, cw)
	case 2:
		content = a.renderPackingTab(trip, cw)
	case 3:
		content = a.renderSummaryTab(trip, cw)
	}

	status := a.statusLine(cw)
	contentH := a.height - lipgloss.Height(header) - 1
	if contentH < minContentHeight {
		contentH = minContentHeight
	}
	content = padHeight(truncateHeight(content, contentH), contentH)

	return header + content + status
}

func (a App) statusLine(w int) string {
	t := theme.Active
	style := lipgloss.NewStyle().Foreground(t.TextDim).Width(w)
	msg := a.statusMsg
	if msg == "" {
		msg = quotes[a.quoteIdx%len(quotes)]
	}
	return style.Render(" " + truncStr(msg, w-10) + "  ·  ? help")
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
