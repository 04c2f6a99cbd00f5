package gamedata

import "github.com/jwebster45206/echoes-of-ruin/pkg/character"

// Weapon proficiency tracks pre-seeded on every new character.
var AllWeaponStyles = []string{
	"Sword and Shield",
	"Heavy Weapons",
	"Light Weapons (Daggers)",
	"Ranged Weapons (Bows, Crossbows)",
	"Polearms (Spears)",
	"Whips and Chains",
	"Tomes and Staves",
	"Ritual Weapons",
	"Improvised Weapons",
	"Unarmed",
}

// Magic mastery tracks pre-seeded on every new character.
var AllMagicSchools = []string{SchoolArcane, SchoolBlood, SchoolAbyss, SchoolHoly}

// Difficulties, mildest first. Permadeath deletes the save on death.
var Difficulties = []character.Difficulty{
	{
		Name:        "Trial",
		Description: "A balanced experience for those who want to explore the world without being punished too harshly.",
		PointBuy:    10,
	},
	{
		Name:        "Nightmare",
		Description: "Resources are scarce, enemies target weak points, and rewards are thin. Death erases your progress.",
		PointBuy:    5,
		Permadeath:  true,
	},
	{
		Name:        "Torment",
		Description: "For hardened souls. Enemies are merciless and coordinate their attacks. The world forgives no mistakes. XP is scarce.",
		PointBuy:    2,
		Permadeath:  true,
	},
	{
		Name:        "Inferno",
		Description: "You should not be here. Enemies act perfectly, resources barely exist, and there are no rewards. This is punishment.",
		PointBuy:    0,
		Permadeath:  true,
	},
}

// Origins a new character can be built from.
var Origins = []character.Origin{
	{
		Name:        "Nameless Survivor",
		Description: "You are no one, from nowhere. The only thing you know is how to live through one more day.",
		BaseStats:   map[string]int{"hp": 110, "san": 90, "defense": 5, "stamina": 110},
		StartingEquipment: map[string]int{
			"dagger_rusted": 1,
			"cloth_torn":    3,
		},
		WeaponProficiency: "Light Weapons (Daggers)",
		StartingRecipes:   []string{"bandages", "sharpened_stick"},
		Talents: []character.Talent{
			{Name: "Iron Stomach", Description: "Can eat things others would not dare, restoring a little HP."},
			{Name: "Skulker", Description: "Begin every fight with one turn of concealment."},
			{Name: "Hardy", Description: "Take 10% less physical damage."},
		},
		StartingSkills: []string{"survivor_pocket_sand"},
	},
	{
		Name:        "Outcast Scholar",
		Description: "You glimpsed forbidden secrets in ancient texts, and were cast out for what you know.",
		BaseStats:   map[string]int{"san": 120, "mana": 110, "attack": 5, "charisma": 10},
		StartingEquipment: map[string]int{
			"robe_scholar":     1,
			"book_arcane_bolt": 1,
		},
		WeaponProficiency: "Tomes and Staves",
		Talents: []character.Talent{
			{Name: "Blood Magic", Description: "Can sacrifice HP in exchange for Mana."},
			{Name: "Forbidden Knowledge", Description: "Begin with a powerful mind-assault spell."},
			{Name: "Weakness Analysis", Description: "Your first strike against any enemy is always a critical hit."},
		},
		// Skill is learned from the starting spellbook, not granted directly.
		StartingSkills: nil,
	},
	{
		Name:        "Fallen Knight",
		Description: "Your oath is broken, your honor stained. Now you wander in search of redemption or a worthy death.",
		BaseStats:   map[string]int{"hp": 120, "attack": 10, "defense": 10, "charisma": 5},
		StartingEquipment: map[string]int{
			"armor_iron_broken": 1,
			"longsword_cracked": 1,
		},
		WeaponProficiency: "Sword and Shield",
		Talents: []character.Talent{
			{Name: "Stand Fast", Description: "Cannot be knocked down in the first turn of battle."},
			{Name: "Riposte", Description: "After a successful block, your next attack deals 50% more damage."},
			{Name: "Iron Will", Description: "When HP falls below 25%, Attack and Defense surge."},
		},
		StartingSkills: []string{"knight_defensive_stance"},
	},
	{
		Name:        "Savage Mercenary",
		Description: "Born in war, raised on blood. Your life is a chain of battles, and you excel at them.",
		BaseStats:   map[string]int{"hp": 130, "attack": 12, "speed": 5, "stamina": 120},
		StartingEquipment: map[string]int{
			"hide_armor": 1,
			"battle_axe": 1,
		},
		WeaponProficiency: "Heavy Weapons",
		Talents: []character.Talent{
			{Name: "Fury", Description: "Deal more damage the lower your HP falls."},
			{Name: "Slaughter", Description: "Felling an enemy restores a little HP."},
			{Name: "Unshakable", Description: "Immune to fear and sanity-draining effects."},
		},
		StartingSkills: []string{"barbarian_savage_strike"},
	},
	{
		Name:        "Dark Ritualist",
		Description: "You studied the forbidden arts and bargained with entities whose names others dare not speak. Dark power runs in your veins.",
		BaseStats:   map[string]int{"san": 110, "mana": 130, "hp": 90, "defense": 3},
		StartingEquipment: map[string]int{
			"ritual_knife": 1,
			"dark_robe":    1,
			"skull_candle": 1,
		},
		WeaponProficiency: "Ritual Weapons",
		Talents: []character.Talent{
			{Name: "Essence Harvest", Description: "Recover a little Mana whenever a creature dies nearby, friend or foe."},
			{Name: "Familiar Flesh", Description: "Take 25% less damage from undead creatures."},
			{Name: "Enveloping Dark", Description: "Abyss-school spells cost 15% less Mana."},
		},
		StartingSkills: []string{"dark_ritualist_drain_life"},
	},
	{
		Name:        "Cunning Archer",
		Description: "You are a nimble hunter who survives by keeping your distance and loosing killing shots. The dark is your ally.",
		BaseStats:   map[string]int{"speed": 10, "stamina": 110, "attack": 7, "defense": 3},
		StartingEquipment: map[string]int{
			"short_bow":     1,
			"arrows":        15,
			"leather_cloak": 1,
		},
		WeaponProficiency: "Ranged Weapons (Bows, Crossbows)",
		Talents: []character.Talent{
			{Name: "Hawk Eye", Description: "20% more accuracy with ranged weapons."},
			{Name: "Ambusher", Description: "Your first strike from concealment deals 100% more damage."},
			{Name: "Fleet-Footed", Description: "Chance to fully dodge a physical attack."},
		},
		StartingSkills: []string{"archer_crippling_shot"},
	},
	{
		Name:        "Lost Cultist",
		Description: "Your god is dead, or has abandoned you. Now you cling to warped rites in vain hope.",
		BaseStats:   map[string]int{"san": 110, "mana": 120, "speed": 5, "charisma": -5},
		StartingEquipment: map[string]int{
			"tattered_robes": 1,
			"warped_censer":  1,
		},
		WeaponProficiency: "Ritual Weapons",
		Talents: []character.Talent{
			{Name: "Sacrifice", Description: "Can burn maximum Sanity to empower your next spell."},
			{Name: "Whispers from the Void", Description: "Sometimes hear helpful (or harmful) counsel from an unseen entity."},
			{Name: "Final Covenant", Description: "On death, erupt with heavy spiritual damage to everything nearby."},
		},
		StartingSkills: []string{"cultist_blood_offering"},
	},
}

// Personalities a new character can adopt.
var Personalities = []character.Personality{
	{Name: "Vengeful", Description: "15% more Attack when HP is below 30%.", Effect: "More attack at low HP."},
	{Name: "Numb", Description: "Take 50% less Sanity damage.", Effect: "Reduced sanity damage."},
	{Name: "Paranoid", Description: "20% more Defense when Sanity is below 40%.", Effect: "More defense at low sanity."},
	{Name: "Ruthless", Description: "Threatening or violent choices succeed more often. Lower starting reputation.", Effect: "Brutal choices work better, at a cost to standing."},
	{Name: "Irrationally Hopeful", Description: "Recover a little Sanity every few turns.", Effect: "Sanity regeneration over time."},
	{Name: "Greedy", Description: "Find more loot, but it tends to lead to dangerous choices.", Effect: "More loot."},
	{Name: "Craven", Description: "More Speed when trying to flee a battle.", Effect: "Easier escapes."},
	{Name: "Curious", Description: "Every scene offers one extra exploration choice, usually a dangerous one.", Effect: "Extra exploration choice."},
	{Name: "Pragmatic", Description: "Improved crafting and repair.", Effect: "Better crafting."},
}

// OriginByName looks up an origin by its display name.
func OriginByName(name string) (character.Origin, bool) {
	for _, o := range Origins {
		if o.Name == name {
			return o, true
		}
	}
	return character.Origin{}, false
}

// DifficultyByName looks up a difficulty by its display name.
func DifficultyByName(name string) (character.Difficulty, bool) {
	for _, d := range Difficulties {
		if d.Name == name {
			return d, true
		}
	}
	return character.Difficulty{}, false
}

// ResolveStartingSkills maps an origin's starting skill ids to full skill
// records, silently skipping ids missing from the table.
func ResolveStartingSkills(o character.Origin) []character.Skill {
	out := make([]character.Skill, 0, len(o.StartingSkills))
	for _, id := range o.StartingSkills {
		if s, ok := SkillByID(id); ok {
			out = append(out, s)
		}
	}
	return out
}
