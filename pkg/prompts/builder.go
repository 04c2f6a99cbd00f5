package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jwebster45206/echoes-of-ruin/pkg/actor"
	"github.com/jwebster45206/echoes-of-ruin/pkg/character"
	"github.com/jwebster45206/echoes-of-ruin/pkg/lore"
)

// loreResults bounds how many lore entries a single prompt carries.
const loreResults = 3

// ScenePromptTemplate lays out the user message for a scene turn.
const ScenePromptTemplate = `---
Setting: a dark, brutal and unforgiving fantasy world.
Difficulty: %s (%s)
God Mode: %s
Gore content: %s
%s
CURRENT CHARACTER STATE (PRUNED):
%s
---
CURRENT ENEMIES (if any):
%s
---
%sTURN INFO: %s
---
PLAYER ACTION:
%s
---
YOUR TASK:
From the information above, produce the next scene as a single JSON object strictly conforming to the provided schema.`

// SystemInstruction selects the narrator persona for the turn. Combat
// turns get the tactician, everything else the storyteller.
func SystemInstruction(inCombat bool) string {
	if inCombat {
		return CombatSystemPrompt
	}
	return NarratorSystemPrompt
}

// BuildScenePrompt renders the full user prompt for one turn. Lore
// retrieval only runs outside combat; the tactician ignores story
// context anyway.
func BuildScenePrompt(c *character.Character, action string, turnInfo string, enemies []actor.Enemy, npcs []actor.NPC, enableGore bool) (string, error) {
	if c == nil {
		return "", fmt.Errorf("character is nil")
	}
	inCombat := len(enemies) > 0

	ragContext := ""
	if !inCombat {
		keys := make([]string, 0, len(c.Inventory))
		for item := range c.Inventory {
			keys = append(keys, item)
		}
		loreContext := action + " " + c.Origin.Name + " " + strings.Join(keys, " ")
		if entries := lore.Retrieve(loreContext, loreResults); len(entries) > 0 {
			var sb strings.Builder
			sb.WriteString("\n---\nLORE LIBRARY (use these details to enrich the story):\n")
			for _, e := range entries {
				sb.WriteString("- " + e.Content + "\n")
			}
			sb.WriteString("---")
			ragContext = sb.String()
		}
	}

	prunedJSON, err := json.MarshalIndent(PruneCharacter(c), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal character: %w", err)
	}

	if enemies == nil {
		enemies = []actor.Enemy{}
	}
	enemiesJSON, err := json.MarshalIndent(enemies, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal enemies: %w", err)
	}

	npcBlock := ""
	if !inCombat && len(npcs) > 0 {
		npcsJSON, err := json.MarshalIndent(npcs, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal npcs: %w", err)
		}
		npcBlock = fmt.Sprintf("CURRENT NPCS:\n%s\n---\n", npcsJSON)
	}

	return fmt.Sprintf(ScenePromptTemplate,
		c.Difficulty.Name, c.Difficulty.Description,
		onOff(c.GodMode), onOff(enableGore),
		ragContext,
		prunedJSON,
		enemiesJSON,
		npcBlock,
		turnInfo,
		action,
	), nil
}

// SkillNameFromChoice extracts the skill name from a skill-usage
// choice, reporting whether the choice was one.
func SkillNameFromChoice(choice string) (string, bool) {
	if !strings.HasPrefix(choice, SkillUsagePrefix) {
		return "", false
	}
	return strings.TrimPrefix(choice, SkillUsagePrefix), true
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
