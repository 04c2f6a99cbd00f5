package gamedata

import "github.com/jwebster45206/echoes-of-ruin/pkg/character"

// SandboxCharacter builds the combat-sandbox preset: a seasoned Fallen
// Knight with stocked consumables, dropped straight into a fight. Used
// by the "combat sandbox" start instead of the creation flow.
func SandboxCharacter() *character.Character {
	origin, _ := OriginByName("Fallen Knight")

	c := character.New(character.CreationParams{
		Name:           "Trial Warrior",
		Gender:         "Other",
		Backstory:      "An entity created only to fight.",
		Difficulty:     Difficulties[0],
		Origin:         origin,
		Talent:         origin.Talents[0],
		Personality:    character.Personality{Name: "Brave", Description: "Never backs down."},
		WeaponStyles:   AllWeaponStyles,
		MagicSchools:   AllMagicSchools,
		Deities:        AllDeities,
		StartingSkills: ResolveStartingSkills(origin),
	})

	c.Stats = character.Stats{
		HP: 150, MaxHP: 150,
		San: 100, MaxSan: 100,
		Mana: 50, MaxMana: 50,
		Stamina: 120, MaxStamina: 120,
		Attack: 15, Defense: 12, Speed: 7, Charisma: 5,
	}
	c.Inventory["healing_salve"] = 5

	// The knight's own weapon style starts well-practiced.
	c.WeaponProficiencies[origin.WeaponProficiency] = character.Proficiency{
		Unlocked: true, Level: 5, XPToNextLevel: 500,
	}
	return c
}
