package actor

import "github.com/jwebster45206/echoes-of-ruin/pkg/character"

// EnemyStats is the reduced stat block the narrator maintains for enemies.
type EnemyStats struct {
	HP      int `json:"hp"`
	MaxHP   int `json:"max_hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

// Enemy is a combatant scoped to a single encounter. Enemies live on the
// Scene, never on the Character; defeated enemies are filtered out of the
// encounter rather than flagged.
type Enemy struct {
	ID                string                                          `json:"id"`
	Name              string                                          `json:"name"`
	Description       string                                          `json:"description,omitempty"`
	Stats             EnemyStats                                      `json:"stats"`
	BodyParts         map[character.BodyPart]character.BodyPartStatus `json:"body_parts,omitempty"`
	TelegraphedAction string                                          `json:"telegraphed_action,omitempty"`
	StatusEffects     []string                                        `json:"status_effects,omitempty"`
}

// TakeDamage reduces the enemy's HP. HP cannot go below 0.
func (e *Enemy) TakeDamage(n int) {
	if n <= 0 {
		return
	}
	e.Stats.HP -= n
	if e.Stats.HP < 0 {
		e.Stats.HP = 0
	}
}

// IsDefeated reports whether the enemy is out of the fight.
func (e *Enemy) IsDefeated() bool {
	return e.Stats.HP <= 0
}

// AddStatus appends a status effect if not already present.
func (e *Enemy) AddStatus(status string) {
	for _, s := range e.StatusEffects {
		if s == status {
			return
		}
	}
	e.StatusEffects = append(e.StatusEffects, status)
}

// Living filters an enemy list down to combatants with HP remaining.
func Living(enemies []Enemy) []Enemy {
	out := make([]Enemy, 0, len(enemies))
	for _, e := range enemies {
		if !e.IsDefeated() {
			out = append(out, e)
		}
	}
	return out
}
