package planner

import (
	"testing"

	"tripdeck/internal/model"
)

func TestGeneratePackingListEssentialsLast(t *testing.T) {
	start := mustDate(t, "2026-03-02")
	end := mustDate(t, "2026-03-05")

	for _, tripType := range model.TripTypes {
		t.Run(string(tripType), func(t *testing.T) {
			list := GeneratePackingList(tripType, start, end)
			if len(list) < len(essentials) {
				t.Fatalf("list too short: %d items", len(list))
			}

			tail := list[len(list)-len(essentials):]
			for i, it := range tail {
				if it.Name != essentials[i] {
					t.Errorf("tail[%d] = %q, want %q", i, it.Name, essentials[i])
				}
				if it.Category != model.ItemEssentials {
					t.Errorf("essential %q categorized as %s", it.Name, it.Category)
				}
			}

			for _, it := range list {
				if it.ID == "" {
					t.Errorf("item %q has no id", it.Name)
				}
				if it.Packed {
					t.Errorf("item %q starts packed", it.Name)
				}
				if it.IsCustom {
					t.Errorf("template item %q flagged custom", it.Name)
				}
			}
		})
	}
}

func TestGeneratePackingListUnknownTypeFallsBackToCity(t *testing.T) {
	start := mustDate(t, "2026-03-02")
	end := mustDate(t, "2026-03-05")

	got := GeneratePackingList(model.TripType("cruise"), start, end)
	city := GeneratePackingList(model.TripCity, start, end)

	if len(got) != len(city) {
		t.Fatalf("fallback list has %d items, city has %d", len(got), len(city))
	}
	for i := range got {
		if got[i].Name != city[i].Name || got[i].Category != city[i].Category {
			t.Errorf("item %d: got %q/%s, want %q/%s",
				i, got[i].Name, got[i].Category, city[i].Name, city[i].Category)
		}
	}
}

func TestGeneratePackingListFreshIDs(t *testing.T) {
	start := mustDate(t, "2026-03-02")
	end := mustDate(t, "2026-03-05")

	a := GeneratePackingList(model.TripBeach, start, end)
	b := GeneratePackingList(model.TripBeach, start, end)

	seen := make(map[string]bool)
	for _, it := range append(a, b...) {
		if seen[it.ID] {
			t.Fatalf("duplicate id %s", it.ID)
		}
		seen[it.ID] = true
	}
}
