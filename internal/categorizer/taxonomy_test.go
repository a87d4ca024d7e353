package categorizer

import (
	"sync"
	"testing"

	"fjacquet/finvision/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTaxonomy_DeclarationOrder(t *testing.T) {
	expected := []string{
		"Food", "Beverages", "Household", "Snacks", "Dairy", "Frozen", "Bakery",
		"Meat & Seafood", "Produce", "Pharmacy", "Personal Care", "Pet Supplies",
		"Electronics", "Health & Fitness", "Office Supplies", "Baby & Kids", "Auto Supplies",
	}

	assert.Equal(t, expected, DefaultTaxonomy().Labels())
	assert.Equal(t, 17, DefaultTaxonomy().Len())
}

func TestDefaultTaxonomy_Categorize(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		expected string
	}{
		{name: "eggs are food", item: "Large Eggs", expected: CategoryFood},
		{name: "cottage cheese is dairy", item: "Cottage Cheese", expected: CategoryDairy},
		{name: "milk resolves to beverages before dairy", item: "Whole Milk", expected: CategoryBeverages},
		{name: "lower case input", item: "whole milk", expected: CategoryBeverages},
		{name: "yogurt is declared under food first", item: "Milk Natura1 yogurt", expected: CategoryFood},
		{name: "tea inside steak wins over meat", item: "Steak", expected: CategoryBeverages},
		{name: "chicken is food before meat", item: "Chicken breasts", expected: CategoryFood},
		{name: "chocolate cookies are snacks before bakery", item: "Chocolate Cookies", expected: CategorySnacks},
		{name: "baby wipes are household before baby", item: "baby wipes", expected: CategoryHousehold},
		{name: "toilet paper", item: "Toilet Paper", expected: CategoryHousehold},
		{name: "ice cream is dairy before frozen", item: "Ice Cream", expected: CategoryDairy},
		{name: "electronics", item: "Laptop Sleeve", expected: CategoryElectronics},
		{name: "no keyword", item: "Zzz", expected: models.CategoryOthers},
		{name: "empty name", item: "", expected: models.CategoryOthers},
	}

	taxonomy := DefaultTaxonomy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, taxonomy.Categorize(tt.item))
		})
	}
}

func TestTaxonomy_Match(t *testing.T) {
	label, keyword := DefaultTaxonomy().Match("Semi-skimmed milk")
	assert.Equal(t, CategoryBeverages, label)
	assert.Equal(t, "MILK", keyword)

	label, keyword = DefaultTaxonomy().Match("Zzz")
	assert.Equal(t, models.CategoryOthers, label)
	assert.Empty(t, keyword)
}

func TestNewTaxonomy(t *testing.T) {
	t.Run("first declared category wins", func(t *testing.T) {
		taxonomy, err := NewTaxonomy([]models.CategoryConfig{
			{Name: "Groceries", Keywords: []string{"coop"}},
			{Name: "Restaurants", Keywords: []string{"restaurant", "coop"}},
		})
		require.NoError(t, err)

		assert.Equal(t, "Groceries", taxonomy.Categorize("COOP Restaurant"))
		assert.Equal(t, "Restaurants", taxonomy.Categorize("Restaurant du Lac"))
	})

	t.Run("keywords are normalized", func(t *testing.T) {
		taxonomy, err := NewTaxonomy([]models.CategoryConfig{
			{Name: "Drinks", Keywords: []string{"  juice ", "", "   "}},
		})
		require.NoError(t, err)

		assert.Equal(t, []models.CategoryConfig{{Name: "Drinks", Keywords: []string{"JUICE"}}}, taxonomy.Categories())
		assert.Equal(t, "Drinks", taxonomy.Categorize("orange Juice"))
	})

	t.Run("category without keywords never matches", func(t *testing.T) {
		taxonomy, err := NewTaxonomy([]models.CategoryConfig{{Name: "Empty"}})
		require.NoError(t, err)
		assert.Equal(t, models.CategoryOthers, taxonomy.Categorize("anything"))
		assert.True(t, taxonomy.Contains("Empty"))
	})

	errorCases := []struct {
		name    string
		configs []models.CategoryConfig
		errMsg  string
	}{
		{
			name:    "empty name",
			configs: []models.CategoryConfig{{Name: " "}},
			errMsg:  "empty name",
		},
		{
			name:    "reserved name",
			configs: []models.CategoryConfig{{Name: models.CategoryOthers}},
			errMsg:  "reserved",
		},
		{
			name:    "duplicate name",
			configs: []models.CategoryConfig{{Name: "Food"}, {Name: "Food"}},
			errMsg:  "duplicate",
		},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTaxonomy(tt.configs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestTaxonomy_CategoriesIsACopy(t *testing.T) {
	taxonomy, err := NewTaxonomy([]models.CategoryConfig{{Name: "Drinks", Keywords: []string{"JUICE"}}})
	require.NoError(t, err)

	configs := taxonomy.Categories()
	configs[0].Name = "Changed"
	configs[0].Keywords[0] = "CHANGED"

	assert.Equal(t, []string{"Drinks"}, taxonomy.Labels())
	assert.Equal(t, "Drinks", taxonomy.Categorize("juice"))
}

func TestTaxonomy_ResultIsAlwaysKnownLabel(t *testing.T) {
	taxonomy := DefaultTaxonomy()
	for _, name := range []string{"Cherry Tomatoes 11b", "#100", "Printer Ink", "dog food", "???", "TOTAL"} {
		label := taxonomy.Categorize(name)
		assert.True(t, taxonomy.Contains(label) || label == models.CategoryOthers, "unexpected label %q", label)
	}
}

func TestTaxonomy_ConcurrentUse(t *testing.T) {
	taxonomy := DefaultTaxonomy()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, CategoryDairy, taxonomy.Categorize("Cottage Cheese"))
			}
		}()
	}
	wg.Wait()
}
