package planner

import (
	"tripdeck/internal/model"

	"github.com/google/uuid"
)

// packingTemplate holds the per-category item names for one trip type, in the
// canonical category order: clothes, accessories, toiletries, electronics,
// documents.
type packingTemplate struct {
	clothes     []string
	accessories []string
	toiletries  []string
	electronics []string
	documents   []string
}

var packingTemplates = map[model.TripType]packingTemplate{
	model.TripBeach: {
		clothes:     []string{"Swimwear", "Beach cover-up", "Flip flops", "Sunglasses", "Hat", "Light clothing", "Sarong"},
		accessories: []string{"Sunscreen SPF 50+", "Beach towel", "Waterproof phone case", "Beach bag", "Snorkel gear"},
		toiletries:  []string{"Aloe vera gel", "Lip balm", "After-sun lotion", "Insect repellent"},
		electronics: []string{"Waterproof camera", "Portable speaker", "Power bank", "E-reader"},
		documents:   []string{"Passport", "Hotel reservation", "Travel insurance", "Boarding passes"},
	},
	model.TripWinter: {
		clothes:     []string{"Thermal underwear", "Winter coat", "Wool sweaters", "Winter boots", "Gloves", "Scarf", "Beanie", "Thick socks"},
		accessories: []string{"Hand warmers", "Lip balm", "Moisturizer", "Ski goggles", "Snow gloves"},
		toiletries:  []string{"Cold cream", "Lip care", "Hand cream", "Face moisturizer"},
		electronics: []string{"Portable charger", "Camera", "Phone with waterproof case"},
		documents:   []string{"Passport/Visa", "Hotel reservation", "Travel insurance", "Ski pass"},
	},
	model.TripCity: {
		clothes:     []string{"Comfortable walking shoes", "Jeans", "T-shirts", "Jacket", "Dress clothes", "Light sweater"},
		accessories: []string{"City map/Guidebook", "Backpack", "Water bottle", "Umbrella"},
		toiletries:  []string{"Basic toiletries", "Hand sanitizer", "Wet wipes", "Personal medication"},
		electronics: []string{"Phone charger", "Camera", "Power bank", "Universal adapter"},
		documents:   []string{"ID/Passport", "Hotel reservation", "City passes", "Emergency contacts"},
	},
	model.TripBusiness: {
		clothes:     []string{"Business suit", "Dress shirts", "Dress shoes", "Tie", "Formal wear", "Blazer"},
		accessories: []string{"Briefcase", "Business cards", "Notebook", "Pen", "Laptop bag"},
		toiletries:  []string{"Grooming kit", "Deodorant", "Perfume/Cologne", "Hair products"},
		electronics: []string{"Laptop", "Charger", "Phone", "Headphones", "Presentation remote"},
		documents:   []string{"Business documents", "ID/Passport", "Hotel reservation", "Conference tickets"},
	},
	model.TripMountain: {
		clothes:     []string{"Hiking boots", "Quick-dry clothes", "Rain jacket", "Hat", "Hiking socks", "Fleece jacket"},
		accessories: []string{"Hiking backpack", "Water bottle", "Multi-tool", "Headlamp", "Trekking poles"},
		toiletries:  []string{"First aid kit", "Sunscreen", "Insect repellent", "Blister pads"},
		electronics: []string{"GPS device", "Camera", "Power bank", "Satellite phone"},
		documents:   []string{"ID", "Maps", "Permits", "Emergency contacts", "Mountain guide contact"},
	},
	model.TripForest: {
		clothes:     []string{"Hiking pants", "Long sleeve shirts", "Waterproof jacket", "Hiking boots", "Hat"},
		accessories: []string{"Backpack", "Water filter", "Compass", "Binoculars", "Pocket knife"},
		toiletries:  []string{"First aid kit", "Bug spray", "Sunscreen", "Hand sanitizer"},
		electronics: []string{"Camera", "Power bank", "Flashlight", "Portable charger"},
		documents:   []string{"ID", "Forest permits", "Maps", "Emergency contacts"},
	},
}

// essentials are appended to every packing list regardless of trip type.
var essentials = []string{"Phone charger", "Wallet with cash/cards", "Keys", "Medications", "Passport/ID"}

// GeneratePackingList expands the template for the given trip type into a flat
// packing list. Unknown types fall back to the city template. The dates are
// accepted for future date-aware generation but unused today. Output order is
// deterministic: template categories in canonical order, then the essentials.
// Every item gets a fresh unique id, even when names repeat across trips.
func GeneratePackingList(tripType model.TripType, start, end model.Date) []model.PackingItem {
	tpl, ok := packingTemplates[tripType]
	if !ok {
		tpl = packingTemplates[model.TripCity]
	}

	groups := []struct {
		category model.ItemCategory
		names    []string
	}{
		{model.ItemClothes, tpl.clothes},
		{model.ItemAccessories, tpl.accessories},
		{model.ItemToiletries, tpl.toiletries},
		{model.ItemElectronics, tpl.electronics},
		{model.ItemDocuments, tpl.documents},
		{model.ItemEssentials, essentials},
	}

	var list []model.PackingItem
	for _, g := range groups {
		for _, name := range g.names {
			list = append(list, model.PackingItem{
				ID:       uuid.NewString(),
				Name:     name,
				Category: g.category,
				Packed:   false,
				IsCustom: false,
			})
		}
	}
	return list
}
