package state

import (
	"strings"
	"testing"
)

func TestAdvanceTurn_CooldownsTick(t *testing.T) {
	c := testCharacter()
	c.Skills[0].CurrentCooldown = 2

	result := AdvanceTurn(c, true)
	if got := result.Character.Skills[0].CurrentCooldown; got != 1 {
		t.Errorf("expected cooldown 1, got %d", got)
	}
	// Ticking never goes below zero.
	result = AdvanceTurn(result.Character, true)
	result = AdvanceTurn(result.Character, true)
	if got := result.Character.Skills[0].CurrentCooldown; got != 0 {
		t.Errorf("expected cooldown 0, got %d", got)
	}
}

func TestAdvanceTurn_SurvivalDecayOutsideCombat(t *testing.T) {
	c := testCharacter()
	start := c.Hunger

	result := AdvanceTurn(c, false)
	if got := result.Character.Hunger; got != start-HungerPerTurn {
		t.Errorf("expected hunger %d, got %d", start-HungerPerTurn, got)
	}
	if got := result.Character.Thirst; got != c.Thirst-ThirstPerTurn {
		t.Errorf("expected thirst %d, got %d", c.Thirst-ThirstPerTurn, got)
	}
}

func TestAdvanceTurn_NoDecayInCombat(t *testing.T) {
	c := testCharacter()
	result := AdvanceTurn(c, true)
	if result.Character.Hunger != c.Hunger || result.Character.Thirst != c.Thirst {
		t.Error("hunger and thirst must not decay during combat")
	}
}

func TestAdvanceTurn_StarvationNeverKills(t *testing.T) {
	c := testCharacter()
	c.Stats.HP = 1
	c.Hunger = 0
	c.Thirst = 0

	result := AdvanceTurn(c, false)
	if result.Character.Stats.HP < 1 {
		t.Errorf("starvation and dehydration must floor hp at 1, got %d", result.Character.Stats.HP)
	}
	if !strings.Contains(result.TurnInfo, "starving") || !strings.Contains(result.TurnInfo, "dehydrated") {
		t.Errorf("turn info should report the penalties, got %q", result.TurnInfo)
	}
}

func TestAdvanceTurn_DehydrationHitsHarder(t *testing.T) {
	c := testCharacter()
	c.Stats.HP = 50
	c.Hunger = 0
	c.Thirst = 5

	result := AdvanceTurn(c, true)
	// In combat: no decay, so thirst stays above zero. Only the hunger
	// penalty of 1 applies.
	if got := result.Character.Stats.HP; got != 49 {
		t.Errorf("expected hp 49 from hunger penalty alone, got %d", got)
	}

	c.Thirst = 0
	result = AdvanceTurn(c, true)
	if got := result.Character.Stats.HP; got != 47 {
		t.Errorf("expected hp 47 from both penalties, got %d", got)
	}
}

func TestAdvanceTurn_GodModeSkipsEverything(t *testing.T) {
	c := testCharacter()
	c.GodMode = true
	c.Skills[0].CurrentCooldown = 3
	c.Hunger = 10

	result := AdvanceTurn(c, false)
	if result.Character.Skills[0].CurrentCooldown != 3 {
		t.Error("god mode should skip cooldown ticking")
	}
	if result.Character.Hunger != 10 {
		t.Error("god mode should skip survival decay")
	}
	if result.TurnInfo != "" {
		t.Errorf("god mode turn info should be empty, got %q", result.TurnInfo)
	}
}

func TestAdvanceTurn_DoesNotMutateInput(t *testing.T) {
	c := testCharacter()
	c.Skills[0].CurrentCooldown = 2
	hunger := c.Hunger

	AdvanceTurn(c, false)
	if c.Skills[0].CurrentCooldown != 2 || c.Hunger != hunger {
		t.Error("AdvanceTurn mutated its input character")
	}
}
