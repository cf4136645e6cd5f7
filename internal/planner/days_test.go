package planner

import (
	"testing"

	"tripdeck/internal/model"
)

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestGenerateDaysInclusive(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"multi day", "2026-03-02", "2026-03-05", 4},
		{"same day", "2026-03-02", "2026-03-02", 1},
		{"month boundary", "2026-02-27", "2026-03-02", 4},
		{"leap february", "2024-02-28", "2024-03-01", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := GenerateDays(mustDate(t, tt.start), mustDate(t, tt.end))
			if err != nil {
				t.Fatalf("GenerateDays: %v", err)
			}
			if len(days) != tt.want {
				t.Fatalf("got %d days, want %d", len(days), tt.want)
			}
			for i, d := range days {
				if d.DayNumber != i+1 {
					t.Errorf("day %d numbered %d", i, d.DayNumber)
				}
				if d.Activities == nil || len(d.Activities) != 0 {
					t.Errorf("day %d: want empty activity list, got %v", i, d.Activities)
				}
			}
			if got := days[0].Date.String(); got != tt.start {
				t.Errorf("first day dated %s, want %s", got, tt.start)
			}
			if got := days[len(days)-1].Date.String(); got != tt.end {
				t.Errorf("last day dated %s, want %s", got, tt.end)
			}
		})
	}
}

func TestGenerateDaysReversedRange(t *testing.T) {
	_, err := GenerateDays(mustDate(t, "2026-03-05"), mustDate(t, "2026-03-02"))
	if err == nil {
		t.Fatal("want error for end before start")
	}
	if !model.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}
