package gamedata

import "sort"

// RecipeIngredient pairs an item id with a quantity, used for both
// required materials and the crafted result.
type RecipeIngredient struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Recipe is a static crafting definition.
type Recipe struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Materials   []RecipeIngredient `json:"materials"`
	Result      RecipeIngredient   `json:"result"`
}

var recipes = map[string]Recipe{
	"bandages": {
		ID: "bandages", Name: "Bandages",
		Description: "Clean cloth rolled tight, for dressing wounds and stopping bleeding.",
		Materials:   []RecipeIngredient{{ItemID: "cloth_torn", Quantity: 2}},
		Result:      RecipeIngredient{ItemID: "bandages", Quantity: 1},
	},
	"sharpened_stick": {
		ID: "sharpened_stick", Name: "Sharpened Stick",
		Description: "A branch whittled to a point. Better than nothing.",
		Materials:   []RecipeIngredient{{ItemID: "stick", Quantity: 1}},
		Result:      RecipeIngredient{ItemID: "sharpened_stick", Quantity: 1},
	},
	"torch": {
		ID: "torch", Name: "Torch",
		Description: "Light and warmth in the dark. Can drive off some creatures.",
		Materials: []RecipeIngredient{
			{ItemID: "stick", Quantity: 1},
			{ItemID: "cloth_torn", Quantity: 1},
		},
		Result: RecipeIngredient{ItemID: "torch", Quantity: 1},
	},
	"healing_salve": {
		ID: "healing_salve", Name: "Healing Salve",
		Description: "A herbal salve that soothes wounds and restores HP.",
		Materials: []RecipeIngredient{
			{ItemID: "herb_green", Quantity: 1},
			{ItemID: "cloth_torn", Quantity: 1},
		},
		Result: RecipeIngredient{ItemID: "healing_salve", Quantity: 1},
	},
}

// RecipeByID looks up a static recipe definition.
func RecipeByID(id string) (Recipe, bool) {
	r, ok := recipes[id]
	return r, ok
}

// AllRecipes returns every recipe, sorted by id.
func AllRecipes() []Recipe {
	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
