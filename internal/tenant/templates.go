package tenant

import "github.com/r8r-one/platform/internal/domain"

// BuiltinTemplates returns the checked-in fallback configs for the
// communities that predate the self-service registry, plus the wildcard
// default used for ids nobody has claimed.
func BuiltinTemplates() Templates {
	burritos := &domain.TenantConfig{
		Name: "Burritos",
		RatingCategories: []domain.RatingCategory{
			{ID: "overall", Name: "Overall Rating", Required: true, Weight: 0.4},
			{ID: "taste", Name: "Taste", Required: true, Weight: 0.3},
			{ID: "value", Name: "Value", Required: true, Weight: 0.2},
			{ID: "price", Name: "Price", Required: false, Weight: 0.1},
		},
		ItemAttributes: []domain.ItemAttribute{
			{
				ID:      "ingredients",
				Name:    "Ingredients",
				Type:    "multiselect",
				Options: []string{"potatoes", "cheese", "bacon", "chorizo", "avocado", "vegetables"},
			},
			{
				ID:      "spice_level",
				Name:    "Spice Level",
				Type:    "select",
				Options: []string{"mild", "medium", "hot", "very_hot"},
			},
		},
		LocationRequired:   true,
		ImageUploadEnabled: true,
	}

	pizza := &domain.TenantConfig{
		Name: "Pizza",
		RatingCategories: []domain.RatingCategory{
			{ID: "overall", Name: "Overall Rating", Required: true, Weight: 0.4},
			{ID: "crust", Name: "Crust Quality", Required: true, Weight: 0.25},
			{ID: "sauce", Name: "Sauce", Required: true, Weight: 0.2},
			{ID: "cheese", Name: "Cheese", Required: true, Weight: 0.15},
		},
		ItemAttributes: []domain.ItemAttribute{
			{
				ID:      "style",
				Name:    "Pizza Style",
				Type:    "select",
				Options: []string{"neapolitan", "new_york", "sicilian", "chicago", "detroit"},
			},
			{
				ID:      "toppings",
				Name:    "Toppings",
				Type:    "multiselect",
				Options: []string{"pepperoni", "mushrooms", "sausage", "peppers", "onions", "olives"},
			},
		},
		LocationRequired:   true,
		ImageUploadEnabled: true,
	}

	coffee := &domain.TenantConfig{
		Name: "Coffee",
		RatingCategories: []domain.RatingCategory{
			{ID: "overall", Name: "Overall Rating", Required: true, Weight: 0.4},
			{ID: "flavor", Name: "Flavor", Required: true, Weight: 0.3},
			{ID: "aroma", Name: "Aroma", Required: true, Weight: 0.2},
			{ID: "value", Name: "Value", Required: false, Weight: 0.1},
		},
		ItemAttributes: []domain.ItemAttribute{
			{
				ID:      "roast_level",
				Name:    "Roast Level",
				Type:    "select",
				Options: []string{"light", "medium", "medium_dark", "dark", "extra_dark"},
			},
			{
				ID:      "brewing_method",
				Name:    "Brewing Method",
				Type:    "select",
				Options: []string{"espresso", "drip", "french_press", "pour_over", "cold_brew"},
			},
		},
		LocationRequired:   false,
		ImageUploadEnabled: true,
	}

	generic := &domain.TenantConfig{
		Name: "Community",
		RatingCategories: []domain.RatingCategory{
			{ID: "overall", Name: "Overall Rating", Required: true, Weight: 0.6},
			{ID: "value", Name: "Value", Required: false, Weight: 0.4},
		},
		LocationRequired:   false,
		ImageUploadEnabled: false,
	}

	return Templates{
		ByID: map[string]*domain.TenantConfig{
			"burritos": burritos,
			"pizza":    pizza,
			"coffee":   coffee,
		},
		Default: generic,
	}
}
