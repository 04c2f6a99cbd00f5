// Package gamedata holds the static content tables: items, recipes,
// skills, deities, origins, and endings. Everything here is read-only at
// runtime; lookups return copies so callers cannot mutate the tables.
package gamedata

// ItemEffectType discriminates what using an item does.
type ItemEffectType string

const (
	ItemEffectHeal        ItemEffectType = "heal"
	ItemEffectLearnSkill  ItemEffectType = "learn_skill"
	ItemEffectLearnRecipe ItemEffectType = "learn_recipe"
)

// ItemEffect is one declared effect of a usable item.
type ItemEffect struct {
	Type     ItemEffectType `json:"type"`
	Stat     string         `json:"stat,omitempty"`
	Amount   int            `json:"amount,omitempty"`
	SkillID  string         `json:"skill_id,omitempty"`
	RecipeID string         `json:"recipe_id,omitempty"`
}

// Item is a static item definition. Inventory stores only id -> count;
// everything else about an item lives here.
type Item struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        string       `json:"type"` // weapon, armor, consumable, material, book, misc
	Usable      bool         `json:"usable"`
	Effects     []ItemEffect `json:"effects,omitempty"`
}

var items = map[string]Item{
	"dagger_rusted": {
		ID: "dagger_rusted", Name: "Rusted Dagger", Type: "weapon",
		Description: "An old dagger, still surprisingly sharp.",
	},
	"cloth_torn": {
		ID: "cloth_torn", Name: "Torn Cloth", Type: "material",
		Description: "A scrap of old fabric. Useful for bandaging or crafting.",
	},
	"robe_scholar": {
		ID: "robe_scholar", Name: "Scholar's Robe", Type: "armor",
		Description: "A robe of fine cloth, frayed in many places.",
	},
	"armor_iron_broken": {
		ID: "armor_iron_broken", Name: "Broken Iron Armor", Type: "armor",
		Description: "Battered plate, but better than nothing.",
	},
	"longsword_cracked": {
		ID: "longsword_cracked", Name: "Cracked Longsword", Type: "weapon",
		Description: "A dependable longsword with cracks running along the blade.",
	},
	"hide_armor": {
		ID: "hide_armor", Name: "Hide Armor", Type: "armor",
		Description: "Armor cut from the hide of a great beast. Tough and durable.",
	},
	"battle_axe": {
		ID: "battle_axe", Name: "Battle Axe", Type: "weapon",
		Description: "A broad, heavy axe that could split a skull in two.",
	},
	"ritual_knife": {
		ID: "ritual_knife", Name: "Ritual Knife", Type: "weapon",
		Description: "An ornate knife with shallow grooves for channeling blood.",
	},
	"dark_robe": {
		ID: "dark_robe", Name: "Dark Robe", Type: "armor",
		Description: "A plain black robe that hides the wearer's identity.",
	},
	"skull_candle": {
		ID: "skull_candle", Name: "Skull Candle", Type: "misc",
		Description: "A candle mounted on a small human skull. Its light is strange.",
	},
	"short_bow": {
		ID: "short_bow", Name: "Short Bow", Type: "weapon",
		Description: "A short, easy-to-handle bow suited to hunting and skirmishing.",
	},
	"arrows": {
		ID: "arrows", Name: "Arrows", Type: "misc",
		Description: "Iron-tipped arrows.",
	},
	"leather_cloak": {
		ID: "leather_cloak", Name: "Leather Cloak", Type: "armor",
		Description: "A leather cloak that wards off weather and glancing blows.",
	},
	"tattered_robes": {
		ID: "tattered_robes", Name: "Tattered Vestments", Type: "armor",
		Description: "The ceremonial robes of a believer who lost the faith.",
	},
	"warped_censer": {
		ID: "warped_censer", Name: "Warped Censer", Type: "misc",
		Description: "A bronze censer bent out of shape, leaking an unpleasant scent.",
	},

	"stick": {
		ID: "stick", Name: "Stick", Type: "material",
		Description: "A dry branch. Makeshift weapon or crafting material.",
	},
	"herb_green": {
		ID: "herb_green", Name: "Green Herb", Type: "material", Usable: true,
		Description: "A herb with mild healing properties.",
		Effects:     []ItemEffect{{Type: ItemEffectHeal, Stat: "hp", Amount: 10}},
	},

	"bandages": {
		ID: "bandages", Name: "Bandages", Type: "consumable", Usable: true,
		Description: "Tightly rolled clean cloth for dressing wounds. Restores a little HP.",
		Effects:     []ItemEffect{{Type: ItemEffectHeal, Stat: "hp", Amount: 15}},
	},
	"healing_salve": {
		ID: "healing_salve", Name: "Healing Salve", Type: "consumable", Usable: true,
		Description: "A herbal salve that soothes wounds and restores HP.",
		Effects:     []ItemEffect{{Type: ItemEffectHeal, Stat: "hp", Amount: 25}},
	},

	"book_arcane_bolt": {
		ID: "book_arcane_bolt", Name: "Spellbook: Arcane Bolt", Type: "book", Usable: true,
		Description: "An old tome teaching the first principles of Arcane magic.",
		Effects:     []ItemEffect{{Type: ItemEffectLearnSkill, SkillID: "scholar_arcane_bolt"}},
	},

	"sharpened_stick": {
		ID: "sharpened_stick", Name: "Sharpened Stick", Type: "weapon",
		Description: "A branch whittled to a point. Better than nothing.",
	},
	"torch": {
		ID: "torch", Name: "Torch", Type: "weapon",
		Description: "Light and warmth in the dark. Can drive off some creatures.",
	},
}

// ItemByID looks up a static item definition.
func ItemByID(id string) (Item, bool) {
	item, ok := items[id]
	return item, ok
}
