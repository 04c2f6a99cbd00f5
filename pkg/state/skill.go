package state

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/jwebster45206/echoes-of-ruin/pkg/actor"
	"github.com/jwebster45206/echoes-of-ruin/pkg/character"
)

// randFloat is swapped out in tests to make chance rolls deterministic.
var randFloat = rand.Float64

// SkillResult is the outcome of a player-invoked skill.
type SkillResult struct {
	Character *character.Character
	Enemies   []actor.Enemy
	// Log is the human-readable account of what the skill did, or why it
	// was rejected. It doubles as the action text sent to the narrator.
	Log string
}

// UseSkill validates and executes a player-invoked skill against the
// current enemies. Rejections (unknown skill, cooldown, insufficient
// resource) return the state unchanged with an explanatory log; they are
// never errors. God mode bypasses cost and cooldown entirely. Inputs are
// not mutated.
func UseSkill(c *character.Character, enemies []actor.Enemy, skillID, targetID string) SkillResult {
	known := c.FindSkill(skillID)
	if known == nil {
		return SkillResult{
			Character: c.Clone(),
			Enemies:   cloneEnemies(enemies),
			Log:       fmt.Sprintf("You don't know any skill with id %q.", skillID),
		}
	}

	if !c.GodMode {
		if known.CurrentCooldown > 0 {
			return SkillResult{
				Character: c.Clone(),
				Enemies:   cloneEnemies(enemies),
				Log:       fmt.Sprintf("%s is still on cooldown (%d turns left).", known.Name, known.CurrentCooldown),
			}
		}
		if c.Stats.Get(known.CostType) < known.CostAmount {
			return SkillResult{
				Character: c.Clone(),
				Enemies:   cloneEnemies(enemies),
				Log:       fmt.Sprintf("Not enough %s to use %s (need %d).", known.CostType, known.Name, known.CostAmount),
			}
		}
	}

	next := c.Clone()
	out := cloneEnemies(enemies)
	skill := next.FindSkill(skillID)

	if !next.GodMode {
		next.Stats.Add(skill.CostType, -skill.CostAmount)
		skill.CurrentCooldown = skill.Cooldown
	}

	log := []string{fmt.Sprintf("You use %s.", skill.Name)}
	for _, eff := range skill.Effects {
		switch eff.Type {
		case character.EffectDamage:
			target := pickTarget(out, targetID)
			if target == nil {
				log = append(log, "There is nothing to strike.")
				continue
			}
			// Attacks always do something.
			dmg := max(1, eff.BaseAmount+next.Stats.Attack-target.Stats.Defense)
			target.TakeDamage(dmg)
			log = append(log, fmt.Sprintf("%s takes %d %s damage.", target.Name, dmg, eff.DamageType))
			if target.IsDefeated() {
				log = append(log, fmt.Sprintf("%s is defeated!", target.Name))
			}
		case character.EffectHeal:
			next.Stats.Add(character.ResourceHP, eff.BaseAmount)
			log = append(log, fmt.Sprintf("You recover %d HP.", eff.BaseAmount))
		case character.EffectResourceTransfer:
			next.Stats.Add(eff.To, eff.BaseAmount)
			log = append(log, fmt.Sprintf("You gain %d %s.", eff.BaseAmount, eff.To))
		case character.EffectApplyStatus:
			target := pickTarget(out, targetID)
			if target == nil {
				continue
			}
			if eff.Chance <= 0 || randFloat() < eff.Chance {
				target.AddStatus(eff.Status)
				log = append(log, fmt.Sprintf("%s is %s!", target.Name, eff.Status))
			} else {
				log = append(log, fmt.Sprintf("%s resists the %s effect.", target.Name, eff.Status))
			}
		case character.EffectBuffStat, character.EffectDebuffStat:
			// Stat modifiers are narrated rather than duration-tracked
			// here; the narrator weighs them when resolving the round.
			log = append(log, fmt.Sprintf("Your %s shifts for %d turn(s).", eff.Stat, eff.Duration))
		}
	}

	out = actor.Living(out)
	next.ClampResources()
	next.ApplyGodMode()

	return SkillResult{
		Character: next,
		Enemies:   out,
		Log:       strings.Join(log, " "),
	}
}

// pickTarget resolves the explicit target, falling back to the first
// enemy when the id is absent or unknown.
func pickTarget(enemies []actor.Enemy, targetID string) *actor.Enemy {
	if len(enemies) == 0 {
		return nil
	}
	if targetID != "" {
		for i := range enemies {
			if enemies[i].ID == targetID {
				return &enemies[i]
			}
		}
	}
	return &enemies[0]
}

func cloneEnemies(enemies []actor.Enemy) []actor.Enemy {
	out := make([]actor.Enemy, len(enemies))
	copy(out, enemies)
	for i := range out {
		if enemies[i].BodyParts != nil {
			bp := make(map[character.BodyPart]character.BodyPartStatus, len(enemies[i].BodyParts))
			for k, v := range enemies[i].BodyParts {
				bp[k] = v
			}
			out[i].BodyParts = bp
		}
		if enemies[i].StatusEffects != nil {
			out[i].StatusEffects = append([]string(nil), enemies[i].StatusEffects...)
		}
	}
	return out
}
