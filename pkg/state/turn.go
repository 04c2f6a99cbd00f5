// Package state is the reconciliation and turn-resolution engine. It
// folds narrator-proposed scene deltas into the character record,
// enforces the invariants the narrator cannot be trusted with (clamping,
// costs, cooldowns, death), and resolves purely local actions (items,
// crafting, sanctuary tasks, level-up paths) without a narrator call.
package state

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/echoes-of-ruin/pkg/character"
)

// Per-turn survival decay outside combat. Thirst drains faster because
// dehydration is the more dangerous condition.
const (
	HungerPerTurn = 2
	ThirstPerTurn = 3
)

// TurnResult is the outcome of the start-of-turn transition.
type TurnResult struct {
	Character *character.Character
	// TurnInfo is a human-readable log of what fired this turn, passed
	// to the narrator as context. Not used for game logic.
	TurnInfo string
}

// AdvanceTurn runs the start-of-turn transition: cooldown ticks, survival
// decay outside combat, and starvation/dehydration penalties. God mode
// skips all of it. The input character is not mutated.
func AdvanceTurn(c *character.Character, inCombat bool) TurnResult {
	next := c.Clone()
	if next.GodMode {
		return TurnResult{Character: next}
	}

	var info []string
	for i := range next.Skills {
		next.Skills[i].CurrentCooldown = max(0, next.Skills[i].CurrentCooldown-1)
	}

	if !inCombat {
		next.Hunger = max(0, next.Hunger-HungerPerTurn)
		next.Thirst = max(0, next.Thirst-ThirstPerTurn)
	}

	// Starvation weakens but never kills on its own; both penalties
	// floor HP at 1.
	if next.Hunger == 0 {
		next.Stats.HP = max(1, next.Stats.HP-1)
		info = append(info, "The character is starving and loses HP.")
	}
	if next.Thirst == 0 {
		next.Stats.HP = max(1, next.Stats.HP-2)
		info = append(info, "The character is dehydrated and loses HP quickly.")
	}
	if next.Hunger > 0 && next.Hunger <= 20 {
		info = append(info, fmt.Sprintf("Hunger is getting low (%d/%d).", next.Hunger, next.MaxHunger))
	}
	if next.Thirst > 0 && next.Thirst <= 20 {
		info = append(info, fmt.Sprintf("Thirst is getting low (%d/%d).", next.Thirst, next.MaxThirst))
	}

	return TurnResult{
		Character: next,
		TurnInfo:  strings.Join(info, " "),
	}
}
