package character

// Survival and progression baselines used at character creation.
const (
	BaseResource    = 100
	BaseCombatStat  = 5
	BaseMaxHunger   = 100
	BaseMaxThirst   = 100
	BaseXPToNext    = 100
	BaseFaithToNext = 100
)

// CreationParams carries everything needed to assemble a new character.
// The static tables (weapon styles, magic schools, deities) are passed in
// so this package stays free of game-data imports; gamedata supplies them.
type CreationParams struct {
	Name           string
	Gender         string
	Backstory      string
	Difficulty     Difficulty
	Origin         Origin
	Talent         Talent
	Personality    Personality
	CustomScenario string
	GodMode        bool

	WeaponStyles   []string
	MagicSchools   []string
	Deities        []string
	StartingSkills []Skill // resolved from the origin's skill ids
}

// New builds a fresh character with every proficiency, mastery, and faith
// track pre-seeded. Tracks must exist up front: XP awards against unknown
// tracks are ignored rather than created.
func New(p CreationParams) *Character {
	stats := Stats{
		HP: BaseResource, MaxHP: BaseResource,
		San: BaseResource, MaxSan: BaseResource,
		Mana: BaseResource, MaxMana: BaseResource,
		Stamina: BaseResource, MaxStamina: BaseResource,
		Attack: BaseCombatStat, Defense: BaseCombatStat,
		Speed: BaseCombatStat, Charisma: BaseCombatStat,
	}
	applyBaseStats(&stats, p.Origin.BaseStats)

	weapons := make(map[string]Proficiency, len(p.WeaponStyles))
	for _, w := range p.WeaponStyles {
		weapons[w] = Proficiency{Unlocked: true, Level: 1, XPToNextLevel: BaseXPToNext}
	}
	masteries := make(map[string]Proficiency, len(p.MagicSchools))
	for _, m := range p.MagicSchools {
		masteries[m] = Proficiency{Unlocked: true, Level: 1, XPToNextLevel: BaseXPToNext}
	}
	faith := make(map[string]FaithStatus, len(p.Deities))
	for _, d := range p.Deities {
		faith[d] = FaithStatus{FaithPointsToNextLevel: BaseFaithToNext}
	}

	inventory := make(map[string]int, len(p.Origin.StartingEquipment))
	for id, n := range p.Origin.StartingEquipment {
		if n > 0 {
			inventory[id] = n
		}
	}

	skills := make([]Skill, len(p.StartingSkills))
	copy(skills, p.StartingSkills)
	for i := range skills {
		skills[i].CurrentCooldown = 0
	}

	return &Character{
		Name:           p.Name,
		Gender:         p.Gender,
		Backstory:      p.Backstory,
		Difficulty:     p.Difficulty,
		Origin:         p.Origin,
		Talent:         p.Talent,
		Personality:    p.Personality,
		CustomScenario: p.CustomScenario,
		GodMode:        p.GodMode,

		Stats:     stats,
		BodyParts: NewBodyParts(),
		Hunger:    BaseMaxHunger,
		MaxHunger: BaseMaxHunger,
		Thirst:    BaseMaxThirst,
		MaxThirst: BaseMaxThirst,

		Inventory:      inventory,
		Skills:         skills,
		KnownRecipeIDs: append([]string(nil), p.Origin.StartingRecipes...),

		WeaponProficiencies: weapons,
		MagicMasteries:      masteries,
		SpecialSkills: map[string]Proficiency{
			SpecialBeastTaming: {XPToNextLevel: BaseXPToNext},
			SpecialNecromancy:  {XPToNextLevel: BaseXPToNext},
		},

		Faith:   faith,
		Journal: NewJournal(),
	}
}

func applyBaseStats(s *Stats, base map[string]int) {
	for stat, v := range base {
		switch stat {
		case "hp":
			s.HP, s.MaxHP = v, v
		case "san":
			s.San, s.MaxSan = v, v
		case "mana":
			s.Mana, s.MaxMana = v, v
		case "stamina":
			s.Stamina, s.MaxStamina = v, v
		case "attack":
			s.Attack = v
		case "defense":
			s.Defense = v
		case "speed":
			s.Speed = v
		case "charisma":
			s.Charisma = v
		}
	}
}
