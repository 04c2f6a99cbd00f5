package character

import "maps"

// Difficulty selects the overall harshness of a playthrough. Permadeath
// difficulties delete the save when the character dies.
type Difficulty struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PointBuy    int    `json:"point_buy"`
	Permadeath  bool   `json:"permadeath"`
}

// Talent is a passive perk granted by an origin. Talents are narrative
// hooks resolved by the narrator, not by the engine.
type Talent struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Personality colors how the narrator treats the character.
type Personality struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Effect      string `json:"effect,omitempty"`
}

// Origin is a character background: base stats, starting gear, and the
// weapon style it favors.
type Origin struct {
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	BaseStats         map[string]int `json:"base_stats,omitempty"`
	StartingEquipment map[string]int `json:"starting_equipment,omitempty"` // item id -> count
	WeaponProficiency string         `json:"weapon_proficiency"`
	StartingRecipes   []string       `json:"starting_recipes,omitempty"`
	Talents           []Talent       `json:"talents,omitempty"`
	StartingSkills    []string       `json:"starting_skills,omitempty"` // skill ids
}

// Character is the player's full persistent state. It is mutated only by
// the state package's resolvers; the narrator proposes changes, the engine
// applies them.
type Character struct {
	Name      string `json:"name"`
	Gender    string `json:"gender,omitempty"`
	Backstory string `json:"backstory,omitempty"`

	Difficulty  Difficulty  `json:"difficulty"`
	Origin      Origin      `json:"origin"`
	Talent      Talent      `json:"talent"`
	Personality Personality `json:"personality"`

	Stats      Stats                       `json:"stats"`
	BodyParts  map[BodyPart]BodyPartStatus `json:"body_parts"`
	Hunger     int                         `json:"hunger"`
	MaxHunger  int                         `json:"max_hunger"`
	Thirst     int                         `json:"thirst"`
	MaxThirst  int                         `json:"max_thirst"`
	Reputation int                         `json:"reputation"`

	Inventory      map[string]int `json:"inventory"` // item id -> count, always positive
	Skills         []Skill        `json:"skills"`
	KnownRecipeIDs []string       `json:"known_recipe_ids,omitempty"`

	WeaponProficiencies map[string]Proficiency `json:"weapon_proficiencies"`
	MagicMasteries      map[string]Proficiency `json:"magic_masteries"`
	SpecialSkills       map[string]Proficiency `json:"special_skills"`

	Faith     map[string]FaithStatus `json:"faith"`
	Sanctuary *Sanctuary             `json:"sanctuary,omitempty"`
	Journal   Journal                `json:"journal"`

	Companions []Companion `json:"companions,omitempty"`

	GodMode        bool   `json:"god_mode,omitempty"`
	CustomScenario string `json:"custom_scenario,omitempty"`
}

// Special skill track names, pre-seeded locked at creation.
const (
	SpecialBeastTaming = "BeastTaming"
	SpecialNecromancy  = "Necromancy"
)

// ClampResources caps hp/san/mana/stamina and hunger/thirst at their
// maxima. No floor is applied here; floors are enforced at decrement time.
// This must run as the last data-shaping step of every mutation path,
// before the god mode override.
func (c *Character) ClampResources() {
	c.Stats.HP = min(c.Stats.HP, c.Stats.MaxHP)
	c.Stats.San = min(c.Stats.San, c.Stats.MaxSan)
	c.Stats.Mana = min(c.Stats.Mana, c.Stats.MaxMana)
	c.Stats.Stamina = min(c.Stats.Stamina, c.Stats.MaxStamina)
	c.Hunger = min(c.Hunger, c.MaxHunger)
	c.Thirst = min(c.Thirst, c.MaxThirst)
}

// ApplyGodMode forces every resource to its maximum. No-op unless god mode
// is on. Runs strictly after ClampResources and wins over any decay or
// cost applied earlier in the turn.
func (c *Character) ApplyGodMode() {
	if !c.GodMode {
		return
	}
	c.Stats.HP = c.Stats.MaxHP
	c.Stats.San = c.Stats.MaxSan
	c.Stats.Mana = c.Stats.MaxMana
	c.Stats.Stamina = c.Stats.MaxStamina
	c.Hunger = c.MaxHunger
	c.Thirst = c.MaxThirst
}

// Clone returns a deep copy. Resolvers clone before mutating so callers
// can treat their Character values as immutable inputs.
func (c *Character) Clone() *Character {
	out := *c

	out.BodyParts = maps.Clone(c.BodyParts)
	out.Inventory = maps.Clone(c.Inventory)
	out.WeaponProficiencies = maps.Clone(c.WeaponProficiencies)
	out.MagicMasteries = maps.Clone(c.MagicMasteries)
	out.SpecialSkills = maps.Clone(c.SpecialSkills)
	out.Faith = maps.Clone(c.Faith)

	if c.Skills != nil {
		out.Skills = make([]Skill, len(c.Skills))
		copy(out.Skills, c.Skills)
		for i := range out.Skills {
			if c.Skills[i].Effects != nil {
				out.Skills[i].Effects = make([]SkillEffect, len(c.Skills[i].Effects))
				copy(out.Skills[i].Effects, c.Skills[i].Effects)
			}
		}
	}
	if c.KnownRecipeIDs != nil {
		out.KnownRecipeIDs = append([]string(nil), c.KnownRecipeIDs...)
	}
	if c.Companions != nil {
		out.Companions = make([]Companion, len(c.Companions))
		copy(out.Companions, c.Companions)
		for i := range out.Companions {
			if c.Companions[i].StatusEffects != nil {
				out.Companions[i].StatusEffects = append([]string(nil), c.Companions[i].StatusEffects...)
			}
		}
	}
	if c.Sanctuary != nil {
		s := *c.Sanctuary
		if c.Sanctuary.Improvements != nil {
			s.Improvements = append([]string(nil), c.Sanctuary.Improvements...)
		}
		if c.Sanctuary.Followers != nil {
			s.Followers = append([]Follower(nil), c.Sanctuary.Followers...)
		}
		out.Sanctuary = &s
	}
	if c.Journal != nil {
		out.Journal = make(Journal, len(c.Journal))
		for k, v := range c.Journal {
			out.Journal[k] = append([]JournalEntry(nil), v...)
		}
	}
	return &out
}
