package categorizer

import (
	"sync"

	"fjacquet/finvision/internal/models"
)

// Default category labels, in matching order.
const (
	CategoryFood           = "Food"
	CategoryBeverages      = "Beverages"
	CategoryHousehold      = "Household"
	CategorySnacks         = "Snacks"
	CategoryDairy          = "Dairy"
	CategoryFrozen         = "Frozen"
	CategoryBakery         = "Bakery"
	CategoryMeatSeafood    = "Meat & Seafood"
	CategoryProduce        = "Produce"
	CategoryPharmacy       = "Pharmacy"
	CategoryPersonalCare   = "Personal Care"
	CategoryPetSupplies    = "Pet Supplies"
	CategoryElectronics    = "Electronics"
	CategoryHealthFitness  = "Health & Fitness"
	CategoryOfficeSupplies = "Office Supplies"
	CategoryBabyKids       = "Baby & Kids"
	CategoryAutoSupplies   = "Auto Supplies"
)

// DefaultCategories returns the built-in grocery taxonomy.
// The order is part of the matching contract: "MILK" is listed under both
// Beverages and Dairy and resolves to Beverages. Cottage cheese is only a
// Dairy keyword.
func DefaultCategories() []models.CategoryConfig {
	return []models.CategoryConfig{
		{Name: CategoryFood, Keywords: []string{
			"BREAD", "EGGS", "YOGURT", "TOMATOES", "BANANAS", "CHICKEN",
			"TUNA", "VEGETABLES", "FRUIT", "POTATOES", "CARROTS", "LETTUCE", "PUMPKIN", "CABBAGE",
			"ONIONS", "GARLIC", "PEAS", "APPLE", "ORANGE", "PEACH", "STRAWBERRY",
		}},
		{Name: CategoryBeverages, Keywords: []string{
			"MILK", "COFFEE", "JUICE", "WATER", "TEA", "SODA", "ENERGY DRINK", "SPORTS DRINK",
			"ALCOHOL", "WINE", "BEER", "COCKTAIL", "CIDER",
		}},
		{Name: CategoryHousehold, Keywords: []string{
			"TOILET PAPER", "WIPES", "CLEANER", "PAPER TOWELS", "SPONGE", "MOP", "GLOVES",
			"DISINFECTANT", "DISH SOAP", "LAUNDRY DETERGENT", "BROOM", "TRASH BAGS",
			"FABRIC SOFTENER", "AIR FRESHENER", "TISSUES", "PLASTIC WRAP", "ALUMINUM FOIL",
		}},
		{Name: CategorySnacks, Keywords: []string{
			"CRACKERS", "COOKIES", "CHOCOLATE", "CANDY", "CANDY BAR", "CHIPS", "NUTS", "SEEDS",
			"CORN SNACKS", "TRAIL MIX", "PRETZELS", "POP CORN", "GUM", "JELLY BEANS", "GUMMY BEARS",
		}},
		{Name: CategoryDairy, Keywords: []string{
			"CHEESE", "BUTTER", "MILK", "YOGURT", "ICE CREAM", "CREAM", "COTTAGE CHEESE",
			"WHIPPED CREAM", "SOUR CREAM", "EGGS",
		}},
		{Name: CategoryFrozen, Keywords: []string{
			"ICE CREAM", "FROZEN FOOD", "FROZEN PIZZA", "FROZEN VEGETABLES", "FROZEN FRUITS",
			"FROZEN MEALS", "FROZEN DINNER", "FROZEN FRENCH FRIES", "FROZEN BURGERS", "FROZEN CHICKEN",
		}},
		{Name: CategoryBakery, Keywords: []string{
			"BREAD", "BAGELS", "CROISSANT", "MUFFINS", "DONUTS", "PASTRY", "CAKE", "PIE", "BISCUIT",
			"CUPCAKES", "COOKIES", "TARTS",
		}},
		{Name: CategoryMeatSeafood, Keywords: []string{
			"BEEF", "PORK", "CHICKEN", "LAMB", "TURKEY", "SALMON", "TUNA", "SHRIMP", "LOBSTER",
			"CRAB", "SEAFOOD", "BACON", "SAUSAGE", "STEAK", "CHICKEN BREAST", "CHICKEN WINGS",
		}},
		{Name: CategoryProduce, Keywords: []string{
			"FRUIT", "VEGETABLE", "LEAFY GREENS", "AVOCADO", "CABBAGE", "CARROTS", "BROCCOLI",
			"CORN", "PEAS", "CUCUMBER", "PEPPER", "POTATOES", "ONION",
		}},
		{Name: CategoryPharmacy, Keywords: []string{
			"PILLS", "MEDICINE", "VITAMINS", "SUPPLEMENTS", "COLD MEDICINE", "PAIN RELIEVER",
			"ANTIBIOTICS", "FIRST AID", "BANDAGES", "PRESCRIPTION", "TOOTHPASTE", "SHAMPOO", "SOAP",
		}},
		{Name: CategoryPersonalCare, Keywords: []string{
			"SHAMPOO", "TOOTHPASTE", "SOAP", "DEODORANT", "LOTIONS", "HAIR CARE", "SKIN CARE",
			"MOISTURIZER", "MAKEUP", "NAIL POLISH", "HAIR COLOR", "FEMININE PRODUCTS", "RAZORS",
		}},
		{Name: CategoryPetSupplies, Keywords: []string{
			"PET FOOD", "CAT FOOD", "DOG FOOD", "PET TOYS", "PET CARE", "LITTER", "PET SUPPLIES",
			"PET BED", "PET COLLAR", "PET MEDICINE",
		}},
		{Name: CategoryElectronics, Keywords: []string{
			"LAPTOP", "PHONE", "TABLET", "CAMERA", "TV", "EARPHONES", "HEADPHONES", "CABLES",
			"CHARGER", "SMARTWATCH", "MONITOR", "SPEAKERS", "KEYBOARD", "MOUSE", "BATTERIES",
		}},
		{Name: CategoryHealthFitness, Keywords: []string{
			"EXERCISE EQUIPMENT", "DUMBBELLS", "YOGA MAT", "TREADMILL", "SUPPLEMENTS", "WEIGHT SCALE",
			"FITNESS TRACKER", "BICYCLE", "FOOT MASSAGER", "ELASTIC BAND", "RESISTANCE BAND",
		}},
		{Name: CategoryOfficeSupplies, Keywords: []string{
			"PAPER", "PENS", "PENCILS", "NOTEBOOK", "ENVELOPES", "STAPLER", "STAPLES", "PRINTER",
			"PRINTER INK", "BINDERS", "TAPE", "MARKERS", "WHITEBOARD", "CALENDAR",
		}},
		{Name: CategoryBabyKids, Keywords: []string{
			"DIAPERS", "BABY FOOD", "BABY WIPES", "BABY CLOTHES", "TOYS", "BABY FORMULA", "STROLLER",
			"BABY CREAM", "BABY LOTION", "KIDS CLOTHES", "KIDS TOYS", "BABY SHAMPOO",
		}},
		{Name: CategoryAutoSupplies, Keywords: []string{
			"OIL", "CAR BATTERY", "TIRES", "CAR WASH", "WAX", "JACK", "AIR FRESHENER", "FLOOR MATS",
			"CAR REPAIR TOOLS", "WINDSHIELD WIPERS",
		}},
	}
}

var defaultTaxonomy = sync.OnceValue(func() *Taxonomy {
	t, err := NewTaxonomy(DefaultCategories())
	if err != nil {
		panic("categorizer: invalid default taxonomy: " + err.Error())
	}
	return t
})

// DefaultTaxonomy returns the shared built-in taxonomy.
func DefaultTaxonomy() *Taxonomy {
	return defaultTaxonomy()
}
