package character

// EffectType discriminates the variants of SkillEffect.
type EffectType string

const (
	EffectDamage EffectType = "damage"
	EffectHeal   EffectType = "heal"
	// EffectResourceTransfer converts one resource pool into another
	// (e.g. a blood offering burning HP for mana). Modeled explicitly so
	// the skill resolver never has to special-case skill identifiers.
	EffectResourceTransfer EffectType = "resource_transfer"
	EffectBuffStat         EffectType = "buff_stat"
	EffectDebuffStat       EffectType = "debuff_stat"
	EffectApplyStatus      EffectType = "apply_status"
)

// SkillEffect is one declared effect of a skill. Which fields are
// meaningful depends on Type; unused fields are omitted from JSON.
type SkillEffect struct {
	Type EffectType `json:"type"`

	// damage / heal
	BaseAmount int    `json:"base_amount,omitempty"`
	DamageType string `json:"damage_type,omitempty"` // physical, arcane, abyss, holy, mental
	Target     string `json:"target,omitempty"`      // "self" for heals

	// resource_transfer
	To Resource `json:"to,omitempty"`

	// buff_stat / debuff_stat
	Stat       string  `json:"stat,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty"`
	Duration   int     `json:"duration,omitempty"`

	// apply_status / debuff_stat
	Chance float64 `json:"chance,omitempty"`
	Status string  `json:"status,omitempty"` // blinded, stunned
}

// Skill is a player-usable combat or utility ability.
type Skill struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	CostType        Resource      `json:"cost_type"`
	CostAmount      int           `json:"cost_amount"`
	Cooldown        int           `json:"cooldown"`
	CurrentCooldown int           `json:"current_cooldown"`
	School          string        `json:"school,omitempty"`
	Effects         []SkillEffect `json:"effects,omitempty"`
}

// HasSkill reports whether the character already knows the skill id.
func (c *Character) HasSkill(id string) bool {
	for i := range c.Skills {
		if c.Skills[i].ID == id {
			return true
		}
	}
	return false
}

// FindSkill returns a pointer into the character's skill list, or nil.
func (c *Character) FindSkill(id string) *Skill {
	for i := range c.Skills {
		if c.Skills[i].ID == id {
			return &c.Skills[i]
		}
	}
	return nil
}
