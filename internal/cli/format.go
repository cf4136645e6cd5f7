// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"tripdeck/internal/model"
)

// FormatMoney formats an amount with the configured currency symbol.
// Whole amounts drop the decimals: 1200 -> "₹1,200", 49.5 -> "₹49.50".
func FormatMoney(symbol string, amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	whole := int64(amount)
	cents := int64(amount*100+0.5) - whole*100
	if cents >= 100 { // rounding carried into the next unit
		whole++
		cents -= 100
	}

	s := symbol + groupDigits(whole)
	if cents > 0 {
		s += fmt.Sprintf(".%02d", cents)
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupDigits(n)
}

func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats an integer percentage.
func FormatPercent(pct int) string {
	return strconv.Itoa(pct) + "%"
}

// FormatClock12 converts a 24h "HH:MM" string to "h:MM AM/PM" for display.
// Malformed input is returned unchanged.
func FormatClock12(clock string) string {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return clock
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return clock
	}

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%s %s", hour12, parts[1], suffix)
}

// FormatDateRange renders "Mar 2 - Mar 9, 2026" style trip date ranges.
func FormatDateRange(start, end model.Date) string {
	if start.Year() == end.Year() {
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
}

// FormatDayHeading renders the itinerary day heading, e.g.
// "Day 3 - Wednesday, Mar 4".
func FormatDayHeading(d model.Day) string {
	return fmt.Sprintf("Day %d - %s", d.DayNumber, d.Date.Format("Monday, Jan 2"))
}
