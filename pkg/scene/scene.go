package scene

import (
	"fmt"

	"github.com/jwebster45206/echoes-of-ruin/pkg/actor"
	"github.com/jwebster45206/echoes-of-ruin/pkg/character"
)

// StatChange is one AI-proposed stat delta, array-of-pairs form.
type StatChange struct {
	Stat   string `json:"stat"`
	Change int    `json:"change"`
}

// InventoryChange adjusts one item's count. Negative quantities remove.
type InventoryChange struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// BodyPartChange overwrites the status of one body part.
type BodyPartChange struct {
	Part   character.BodyPart       `json:"part"`
	Status character.BodyPartStatus `json:"status"`
}

// ProficiencyUpdate replaces a whole named proficiency track. Last writer
// wins; the engine never merges proficiency fields.
type ProficiencyUpdate struct {
	Name        string                `json:"name"`
	Proficiency character.Proficiency `json:"proficiency"`
}

// FaithUpdate replaces a deity's whole faith record.
type FaithUpdate struct {
	Name   string                `json:"name"`
	Status character.FaithStatus `json:"status"`
}

// JournalUpdate proposes one journal entry. Entries whose title already
// exists in the category are dropped.
type JournalUpdate struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// XPAward grants experience to a named proficiency track.
type XPAward struct {
	Type   string `json:"type"` // weapon, magic, special
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// XP award track types.
const (
	XPWeapon  = "weapon"
	XPMagic   = "magic"
	XPSpecial = "special"
)

// TamingResult reports a beast-taming attempt resolved by the narrator.
type TamingResult struct {
	Success      bool                 `json:"success"`
	CreatureName string               `json:"creature_name"`
	CreatureType string               `json:"creature_type,omitempty"`
	Companion    *character.Companion `json:"companion,omitempty"`
}

// ReanimationResult reports a reanimation ritual resolved by the narrator.
type ReanimationResult struct {
	Success      bool                 `json:"success"`
	CreatureName string               `json:"creature_name"`
	Message      string               `json:"message,omitempty"`
	Companion    *character.Companion `json:"companion,omitempty"`
}

// MarkLevelUpEvent signals that a deity's mark has deepened and the player
// must choose a level-up path next turn.
type MarkLevelUpEvent struct {
	Deity    string `json:"deity"`
	NewLevel int    `json:"new_level"`
}

// HitChance annotates a combat choice with its estimated chance to land.
type HitChance struct {
	Choice string `json:"choice"`
	Chance int    `json:"chance"`
}

// Scene is one narrator response: narrative text, the choices offered,
// and a bundle of optional state deltas. A Scene is consumed exactly once
// by the scene worker and folded into the Character. Absent fields mean
// "no change"; an empty list also means "no change", never "clear".
type Scene struct {
	Description string      `json:"description"`
	Choices     []string    `json:"choices"`
	HitChances  []HitChance `json:"hit_chances,omitempty"`

	Enemies []actor.Enemy `json:"enemies"`
	NPCs    []actor.NPC   `json:"npcs,omitempty"`

	StatChanges      []StatChange      `json:"stat_changes,omitempty"`
	InventoryChanges []InventoryChange `json:"inventory_changes,omitempty"`
	BodyPartChanges  []BodyPartChange  `json:"body_part_changes,omitempty"`

	GameOver  bool   `json:"game_over"`
	Reason    string `json:"reason,omitempty"`
	EndingKey string `json:"ending_key,omitempty"`

	NewlyLearnedSkillIDs  []string  `json:"newly_learned_skill_ids,omitempty"`
	NewlyLearnedRecipeIDs []string  `json:"newly_learned_recipe_ids,omitempty"`
	XPAwards              []XPAward `json:"xp_awards,omitempty"`

	UpdatedWeaponProficiencies []ProficiencyUpdate `json:"updated_weapon_proficiencies,omitempty"`
	UpdatedMagicMasteries      []ProficiencyUpdate `json:"updated_magic_masteries,omitempty"`
	UpdatedSpecialSkills       []ProficiencyUpdate `json:"updated_special_skills,omitempty"`

	UpdatedFaith     []FaithUpdate        `json:"updated_faith,omitempty"`
	UpdatedSanctuary *character.Sanctuary `json:"updated_sanctuary,omitempty"`

	FaithNotification     string `json:"faith_notification,omitempty"`
	SanctuaryNotification string `json:"sanctuary_notification,omitempty"`

	MarkLevelUpEvent *MarkLevelUpEvent `json:"mark_level_up_event,omitempty"`

	CompanionActionDescriptions []string              `json:"companion_action_descriptions,omitempty"`
	UpdatedCompanions           []character.Companion `json:"updated_companions,omitempty"`
	TamingResult                *TamingResult         `json:"taming_result,omitempty"`
	ReanimationResult           *ReanimationResult    `json:"reanimation_result,omitempty"`

	JournalUpdates []JournalUpdate `json:"journal_updates,omitempty"`
}

// Validate checks the structural minimum the narrator must always return.
// Choices may be empty only when the game is over or a mark level-up is
// pending (the player picks a path instead of a choice).
func (s *Scene) Validate() error {
	if s.Description == "" {
		return fmt.Errorf("scene is missing a description")
	}
	if len(s.Choices) == 0 && !s.GameOver && s.MarkLevelUpEvent == nil {
		return fmt.Errorf("scene offers no choices")
	}
	return nil
}

// Fallback is the fixed scene substituted when the narrator call fails.
// It carries no deltas, so processing it leaves character state intact;
// the turn is considered not to have happened.
func Fallback() *Scene {
	return &Scene{
		Description: "A strange interference ripples through the ruin. " +
			"The entities seem to resist your will. Perhaps try a " +
			"different action, or wind the moment back and try again.",
		Choices: []string{
			"Retry the previous action.",
			"Wait and gather yourself.",
			"Survey your surroundings.",
		},
		Enemies:  []actor.Enemy{},
		GameOver: false,
	}
}
