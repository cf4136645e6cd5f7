package cli

import (
	"testing"

	"tripdeck/internal/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{49.5, "₹49.50"},
		{1200, "₹1,200"},
		{1234567.89, "₹1,234,567.89"},
		{-75.25, "-₹75.25"},
	}
	for _, tt := range tests {
		if got := FormatMoney("₹", tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatClock12(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:15", "12:15 AM"},
		{"09:30", "9:30 AM"},
		{"12:00", "12:00 PM"},
		{"14:45", "2:45 PM"},
		{"23:59", "11:59 PM"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		if got := FormatClock12(tt.in); got != tt.want {
			t.Errorf("FormatClock12(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDateRange(t *testing.T) {
	start, _ := model.ParseDate("2026-03-02")
	end, _ := model.ParseDate("2026-03-09")
	if got := FormatDateRange(start, end); got != "Mar 2 - Mar 9, 2026" {
		t.Errorf("same year: %q", got)
	}

	nextYear, _ := model.ParseDate("2027-01-02")
	if got := FormatDateRange(start, nextYear); got != "Mar 2, 2026 - Jan 2, 2027" {
		t.Errorf("cross year: %q", got)
	}
}

func TestFormatDayHeading(t *testing.T) {
	date, _ := model.ParseDate("2026-03-04")
	day := model.Day{DayNumber: 3, Date: date}
	if got := FormatDayHeading(day); got != "Day 3 - Wednesday, Mar 4" {
		t.Errorf("FormatDayHeading = %q", got)
	}
}
