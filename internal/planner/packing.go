package planner

import (
	"math"
	"strings"

	"tripdeck/internal/model"

	"github.com/google/uuid"
)

// CategoryProgress reports packed/total counts for one packing category.
type CategoryProgress struct {
	Category model.ItemCategory
	Packed   int
	Total    int
	Percent  int
}

// TogglePacked flips the packed flag on the item with the given id. A missing
// id is a silent no-op.
func TogglePacked(trip *model.Trip, itemID string) bool {
	for i := range trip.PackingList {
		if trip.PackingList[i].ID == itemID {
			trip.PackingList[i].Packed = !trip.PackingList[i].Packed
			return true
		}
	}
	return false
}

// AddCustomItem appends a user-added packing item, unpacked, with a fresh id.
func AddCustomItem(trip *model.Trip, name string, category model.ItemCategory) (model.PackingItem, error) {
	if strings.TrimSpace(name) == "" {
		return model.PackingItem{}, model.NewValidationError("item name is required")
	}
	if !category.Valid() {
		return model.PackingItem{}, model.NewValidationError("unknown item category " + string(category))
	}

	item := model.PackingItem{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		Category: category,
		Packed:   false,
		IsCustom: true,
	}
	trip.PackingList = append(trip.PackingList, item)
	return item, nil
}

// DeleteItem removes the item with the given id, template-seeded or custom.
// A missing id is a silent no-op.
func DeleteItem(trip *model.Trip, itemID string) bool {
	for i := range trip.PackingList {
		if trip.PackingList[i].ID == itemID {
			trip.PackingList = append(trip.PackingList[:i], trip.PackingList[i+1:]...)
			return true
		}
	}
	return false
}

// PackingPercent returns the packed percentage for the list, 0 when empty.
func PackingPercent(items []model.PackingItem) int {
	if len(items) == 0 {
		return 0
	}
	packed := 0
	for _, it := range items {
		if it.Packed {
			packed++
		}
	}
	return int(math.Round(float64(packed) / float64(len(items)) * 100))
}

// PackingByCategory returns per-category packed/total counts in canonical
// category order, omitting categories with no items.
func PackingByCategory(items []model.PackingItem) []CategoryProgress {
	byCat := make(map[model.ItemCategory]*CategoryProgress)
	for _, it := range items {
		cp, ok := byCat[it.Category]
		if !ok {
			cp = &CategoryProgress{Category: it.Category}
			byCat[it.Category] = cp
		}
		cp.Total++
		if it.Packed {
			cp.Packed++
		}
	}

	var rows []CategoryProgress
	for _, cat := range model.ItemCategories {
		cp, ok := byCat[cat]
		if !ok {
			continue
		}
		if cp.Total > 0 {
			cp.Percent = int(math.Round(float64(cp.Packed) / float64(cp.Total) * 100))
		}
		rows = append(rows, *cp)
	}
	return rows
}
