package prompts

import (
	"github.com/jwebster45206/echoes-of-ruin/pkg/character"
)

// PrunedCharacter is the slimmed character record sent to the
// narrator. The journal and known recipes are the biggest contributors
// to prompt size and are not needed to generate the next scene; lore
// retrieval covers the origin's flavor. Progression maps keep only
// tracks the player has actually advanced.
type PrunedCharacter struct {
	Name      string `json:"name"`
	Gender    string `json:"gender,omitempty"`
	Backstory string `json:"backstory,omitempty"`

	Difficulty  character.Difficulty  `json:"difficulty"`
	Talent      character.Talent      `json:"talent"`
	Personality character.Personality `json:"personality"`

	Stats      character.Stats                                 `json:"stats"`
	BodyParts  map[character.BodyPart]character.BodyPartStatus `json:"body_parts"`
	Hunger     int                                             `json:"hunger"`
	MaxHunger  int                                             `json:"max_hunger"`
	Thirst     int                                             `json:"thirst"`
	MaxThirst  int                                             `json:"max_thirst"`
	Reputation int                                             `json:"reputation"`

	Inventory map[string]int    `json:"inventory"`
	Skills    []character.Skill `json:"skills"`

	WeaponProficiencies map[string]character.Proficiency `json:"weapon_proficiencies,omitempty"`
	MagicMasteries      map[string]character.Proficiency `json:"magic_masteries,omitempty"`
	SpecialSkills       map[string]character.Proficiency `json:"special_skills,omitempty"`

	Faith     map[string]character.FaithStatus `json:"faith,omitempty"`
	Sanctuary *character.Sanctuary             `json:"sanctuary,omitempty"`

	Companions []character.Companion `json:"companions,omitempty"`

	GodMode        bool   `json:"god_mode,omitempty"`
	CustomScenario string `json:"custom_scenario,omitempty"`
}

// PruneCharacter builds the prompt view of a character. Oversized
// prompts cause API errors, so weapon and magic tracks are kept only
// when progressed past their starting level, faith only when any
// devotion exists, and special tracks only when unlocked.
func PruneCharacter(c *character.Character) PrunedCharacter {
	pruned := PrunedCharacter{
		Name:           c.Name,
		Gender:         c.Gender,
		Backstory:      c.Backstory,
		Difficulty:     c.Difficulty,
		Talent:         c.Talent,
		Personality:    c.Personality,
		Stats:          c.Stats,
		BodyParts:      c.BodyParts,
		Hunger:         c.Hunger,
		MaxHunger:      c.MaxHunger,
		Thirst:         c.Thirst,
		MaxThirst:      c.MaxThirst,
		Reputation:     c.Reputation,
		Inventory:      c.Inventory,
		Skills:         c.Skills,
		Companions:     c.Companions,
		Sanctuary:      c.Sanctuary,
		GodMode:        c.GodMode,
		CustomScenario: c.CustomScenario,
	}

	pruned.WeaponProficiencies = progressedTracks(c.WeaponProficiencies)
	pruned.MagicMasteries = progressedTracks(c.MagicMasteries)

	if len(c.SpecialSkills) > 0 {
		kept := make(map[string]character.Proficiency)
		for name, prof := range c.SpecialSkills {
			if prof.Unlocked {
				kept[name] = prof
			}
		}
		if len(kept) > 0 {
			pruned.SpecialSkills = kept
		}
	}

	if len(c.Faith) > 0 {
		kept := make(map[string]character.FaithStatus)
		for name, fs := range c.Faith {
			if fs.MarkLevel > 0 || fs.FaithPoints > 0 {
				kept[name] = fs
			}
		}
		if len(kept) > 0 {
			pruned.Faith = kept
		}
	}

	return pruned
}

func progressedTracks(tracks map[string]character.Proficiency) map[string]character.Proficiency {
	if len(tracks) == 0 {
		return nil
	}
	kept := make(map[string]character.Proficiency)
	for name, prof := range tracks {
		if prof.Level > 1 || prof.XP > 0 {
			kept[name] = prof
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}
