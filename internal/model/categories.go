package model

// TripType selects the packing template seeded at trip creation.
type TripType string

// Known trip types. An unknown type falls back to the city template.
const (
	TripBeach    TripType = "beach"
	TripWinter   TripType = "winter"
	TripCity     TripType = "city"
	TripBusiness TripType = "business"
	TripMountain TripType = "mountain"
	TripForest   TripType = "forest"
)

// TripTypes lists all known trip types in display order.
var TripTypes = []TripType{TripBeach, TripWinter, TripCity, TripBusiness, TripMountain, TripForest}

// Valid reports whether t is one of the known trip types.
func (t TripType) Valid() bool {
	for _, known := range TripTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the display name for the trip type.
func (t TripType) Label() string {
	switch t {
	case TripBeach:
		return "Beach"
	case TripWinter:
		return "Winter"
	case TripCity:
		return "City"
	case TripBusiness:
		return "Business"
	case TripMountain:
		return "Mountain"
	case TripForest:
		return "Forest"
	default:
		return string(t)
	}
}

// ExpenseCategory classifies one expense for the budget breakdown.
type ExpenseCategory string

// Expense categories.
const (
	ExpenseFood       ExpenseCategory = "food"
	ExpenseStay       ExpenseCategory = "stay"
	ExpenseTransport  ExpenseCategory = "transport"
	ExpenseShopping   ExpenseCategory = "shopping"
	ExpenseActivities ExpenseCategory = "activities"
	ExpenseOther      ExpenseCategory = "other"
)

// ExpenseCategories lists all expense categories in display order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseFood, ExpenseStay, ExpenseTransport,
	ExpenseShopping, ExpenseActivities, ExpenseOther,
}

// Valid reports whether c is a known expense category.
func (c ExpenseCategory) Valid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the display name for the expense category.
func (c ExpenseCategory) Label() string {
	switch c {
	case ExpenseFood:
		return "Food & Dining"
	case ExpenseStay:
		return "Accommodation"
	case ExpenseTransport:
		return "Transport"
	case ExpenseShopping:
		return "Shopping"
	case ExpenseActivities:
		return "Activities"
	case ExpenseOther:
		return "Other"
	default:
		return string(c)
	}
}

// ItemCategory classifies one packing item. Template generation emits the
// first five in canonical order, then essentials; "other" exists only for
// custom items.
type ItemCategory string

// Packing item categories in canonical template order.
const (
	ItemClothes     ItemCategory = "clothes"
	ItemAccessories ItemCategory = "accessories"
	ItemToiletries  ItemCategory = "toiletries"
	ItemElectronics ItemCategory = "electronics"
	ItemDocuments   ItemCategory = "documents"
	ItemEssentials  ItemCategory = "essentials"
	ItemOther       ItemCategory = "other"
)

// ItemCategories lists all packing categories in canonical order.
var ItemCategories = []ItemCategory{
	ItemClothes, ItemAccessories, ItemToiletries,
	ItemElectronics, ItemDocuments, ItemEssentials, ItemOther,
}

// Valid reports whether c is a known item category.
func (c ItemCategory) Valid() bool {
	for _, known := range ItemCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the display name for the item category.
func (c ItemCategory) Label() string {
	switch c {
	case ItemClothes:
		return "Clothes"
	case ItemAccessories:
		return "Accessories"
	case ItemToiletries:
		return "Toiletries"
	case ItemElectronics:
		return "Electronics"
	case ItemDocuments:
		return "Documents"
	case ItemEssentials:
		return "Essentials"
	case ItemOther:
		return "Other"
	default:
		return string(c)
	}
}
