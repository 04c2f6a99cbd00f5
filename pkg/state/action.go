package state

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/echoes-of-ruin/pkg/character"
	"github.com/jwebster45206/echoes-of-ruin/pkg/gamedata"
)

// SystemActionType discriminates the variants of SystemAction.
type SystemActionType string

const (
	ActionUseItem           SystemActionType = "USE_ITEM"
	ActionCraftItem         SystemActionType = "CRAFT_ITEM"
	ActionSanctuary         SystemActionType = "SANCTUARY_ACTION"
	ActionChooseLevelUpPath SystemActionType = "CHOOSE_LEVEL_UP_PATH"
)

// Level-up paths offered when a deity's mark deepens. The Vietnamese
// names are the canonical ones; the English forms are accepted aliases.
const (
	PathPower     = "Sức Mạnh"
	PathSkill     = "Quyền Năng"
	PathInfluence = "Ảnh Hưởng"
)

// PowerPathHPBonus is the permanent HP increase granted by the Power path.
const PowerPathHPBonus = 5

// SystemAction is a player-triggered state change resolved entirely
// locally, without a narrator call. Exactly the payload fields for the
// action's type are meaningful.
type SystemAction struct {
	Type SystemActionType `json:"type"`

	ItemID   string `json:"item_id,omitempty"`
	RecipeID string `json:"recipe_id,omitempty"`

	FollowerName string `json:"follower_name,omitempty"`
	Task         string `json:"task,omitempty"`

	Deity string `json:"deity,omitempty"`
	Path  string `json:"path,omitempty"`
}

// ActionResult is the outcome of a system action.
type ActionResult struct {
	Character    *character.Character
	Notification string
}

// HandleSystemAction validates and executes a local action. Invalid
// references and insufficient resources come back as rejection
// notifications with the character unchanged, never as errors. The input
// character is not mutated.
func HandleSystemAction(c *character.Character, action SystemAction) ActionResult {
	next := c.Clone()
	var note string

	switch action.Type {
	case ActionUseItem:
		note = useItem(next, action.ItemID)
	case ActionCraftItem:
		note = craftItem(next, action.RecipeID)
	case ActionSanctuary:
		note = assignFollower(next, action.FollowerName, action.Task)
	case ActionChooseLevelUpPath:
		note = chooseLevelUpPath(next, action.Deity, action.Path)
	default:
		note = fmt.Sprintf("[ Nothing happens. Unknown action %q. ]", action.Type)
	}

	next.ClampResources()
	next.ApplyGodMode()
	return ActionResult{Character: next, Notification: note}
}

func useItem(c *character.Character, itemID string) string {
	item, ok := gamedata.ItemByID(itemID)
	if !ok {
		return fmt.Sprintf("[ You don't recognize the item %q. ]", itemID)
	}
	if !item.Usable {
		return fmt.Sprintf("[ %s cannot be used. ]", item.Name)
	}
	if c.Inventory[itemID] < 1 {
		return fmt.Sprintf("[ You have no %s left. ]", item.Name)
	}

	c.Inventory[itemID]--
	if c.Inventory[itemID] <= 0 {
		delete(c.Inventory, itemID)
	}

	notes := []string{fmt.Sprintf("[ You use %s. ]", item.Name)}
	for _, eff := range item.Effects {
		switch eff.Type {
		case gamedata.ItemEffectHeal:
			c.Stats.AddNamed(eff.Stat, eff.Amount)
			notes = append(notes, fmt.Sprintf("[ Restored %d %s. ]", eff.Amount, eff.Stat))
		case gamedata.ItemEffectLearnSkill:
			if n, learned := learnSkill(c, eff.SkillID); learned {
				notes = append(notes, fmt.Sprintf("[ %s ]", n))
			}
		case gamedata.ItemEffectLearnRecipe:
			if n, learned := learnRecipe(c, eff.RecipeID); learned {
				notes = append(notes, fmt.Sprintf("[ %s ]", n))
			}
		}
	}
	return strings.Join(notes, "\n\n")
}

func craftItem(c *character.Character, recipeID string) string {
	recipe, ok := gamedata.RecipeByID(recipeID)
	if !ok {
		return fmt.Sprintf("[ You don't know a recipe %q. ]", recipeID)
	}

	if !c.GodMode {
		for _, m := range recipe.Materials {
			if c.Inventory[m.ItemID] < m.Quantity {
				return fmt.Sprintf("[ Insufficient materials to craft %s. ]", recipe.Name)
			}
		}
		for _, m := range recipe.Materials {
			c.Inventory[m.ItemID] -= m.Quantity
			if c.Inventory[m.ItemID] <= 0 {
				delete(c.Inventory, m.ItemID)
			}
		}
	}
	c.Inventory[recipe.Result.ItemID] += recipe.Result.Quantity
	return fmt.Sprintf("[ You craft %s. ]", recipe.Name)
}

func assignFollower(c *character.Character, followerName, task string) string {
	f := c.Sanctuary.FindFollower(followerName)
	if f == nil {
		// No sanctuary or no such follower: silent no-op.
		return ""
	}
	f.Status = task
	return fmt.Sprintf("[ %s is now %s. ]", f.Name, task)
}

func chooseLevelUpPath(c *character.Character, deity, path string) string {
	switch path {
	case PathPower, "Power":
		c.Stats.MaxHP += PowerPathHPBonus
		c.Stats.HP += PowerPathHPBonus
		return fmt.Sprintf("[ %s's blessing hardens your body. Max HP +%d. ]", deity, PowerPathHPBonus)

	case PathSkill, "Skill":
		d, ok := gamedata.DeityByName(deity)
		if !ok {
			return fmt.Sprintf("[ No power answers from %s. ]", deity)
		}
		if n, learned := learnSkill(c, d.PowerPathSkillID); learned {
			return fmt.Sprintf("[ %s ]", n)
		}
		return fmt.Sprintf("[ You already command %s's gift. ]", deity)

	case PathInfluence, "Influence":
		if c.Sanctuary == nil {
			return "[ You have no sanctuary to benefit from this influence. ]"
		}
		follower := character.Follower{
			Name:    fmt.Sprintf("Disciple of %s", deity),
			Loyalty: 50,
			Status:  "Idle",
		}
		c.Sanctuary.Followers = append(c.Sanctuary.Followers, follower)
		c.Sanctuary.Population++
		return fmt.Sprintf("[ %s joins your sanctuary. ]", follower.Name)
	}
	return fmt.Sprintf("[ Nothing happens. Unknown path %q. ]", path)
}

// learnSkill teaches the character a skill by id. Unknown ids and already
// known skills are skipped without error.
func learnSkill(c *character.Character, skillID string) (string, bool) {
	if c.HasSkill(skillID) {
		return "", false
	}
	s, ok := gamedata.SkillByID(skillID)
	if !ok {
		return "", false
	}
	c.Skills = append(c.Skills, s)
	return fmt.Sprintf("You learn a new skill: %s", s.Name), true
}

// learnRecipe adds a recipe id to the known list, skipping duplicates and
// unknown ids.
func learnRecipe(c *character.Character, recipeID string) (string, bool) {
	for _, id := range c.KnownRecipeIDs {
		if id == recipeID {
			return "", false
		}
	}
	r, ok := gamedata.RecipeByID(recipeID)
	if !ok {
		return "", false
	}
	c.KnownRecipeIDs = append(c.KnownRecipeIDs, recipeID)
	return fmt.Sprintf("You learn a new recipe: %s", r.Name), true
}
