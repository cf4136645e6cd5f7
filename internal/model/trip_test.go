package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTripWireFormat(t *testing.T) {
	start, _ := ParseDate("2026-03-02")
	end, _ := ParseDate("2026-03-03")

	trip := Trip{
		ID:          "t1",
		Destination: "Lisbon",
		StartDate:   start,
		EndDate:     end,
		Type:        TripCity,
		Days: []Day{{
			DayNumber: 1,
			Date:      start,
			Activities: []Activity{{
				ID:        "a1",
				DayNumber: 1,
				Title:     "museum",
				Time:      "10:00",
				Notes:     "buy tickets",
				Completed: true,
			}},
		}},
		Budget: Budget{
			Total: 500,
			Expenses: []Expense{{
				ID:          "e1",
				Category:    ExpenseFood,
				Amount:      25,
				Day:         1,
				Description: "lunch",
				Date:        start,
			}},
		},
		PackingList: []PackingItem{{
			ID:       "p1",
			Name:     "Passport",
			Category: ItemDocuments,
			Packed:   true,
			IsCustom: false,
		}},
	}

	raw, err := json.Marshal(trip)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(raw)

	// Field names are a compatibility contract with previously written records.
	for _, key := range []string{
		`"id"`, `"destination"`, `"startDate"`, `"endDate"`, `"type"`,
		`"days"`, `"dayNumber"`, `"date"`, `"activities"`,
		`"title"`, `"time"`, `"notes"`, `"completed"`,
		`"budget"`, `"total"`, `"expenses"`, `"category"`, `"amount"`, `"day"`, `"description"`,
		`"packingList"`, `"name"`, `"packed"`, `"isCustom"`,
	} {
		if !strings.Contains(s, key) {
			t.Errorf("wire record missing %s", key)
		}
	}

	var back Trip
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Days[0].Activities[0].Title != "museum" {
		t.Error("activity lost in round trip")
	}
	if back.Budget.Expenses[0].Amount != 25 {
		t.Error("expense lost in round trip")
	}
	if !back.PackingList[0].Packed {
		t.Error("packing flag lost in round trip")
	}
}

func TestFindDayAndActivityCount(t *testing.T) {
	start, _ := ParseDate("2026-03-02")
	trip := Trip{Days: []Day{
		{DayNumber: 1, Date: start, Activities: []Activity{{ID: "a"}, {ID: "b"}}},
		{DayNumber: 2, Date: start.AddDays(1), Activities: []Activity{{ID: "c"}}},
	}}

	if d := trip.FindDay(2); d == nil || d.DayNumber != 2 {
		t.Errorf("FindDay(2) = %v", d)
	}
	if d := trip.FindDay(3); d != nil {
		t.Errorf("FindDay(3) = %v, want nil", d)
	}
	if got := trip.ActivityCount(); got != 3 {
		t.Errorf("ActivityCount = %d, want 3", got)
	}
}
