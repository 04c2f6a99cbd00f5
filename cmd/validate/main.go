// Command validate checks the static content tables for broken
// cross-references: recipes naming unknown items, origins granting
// unknown skills, item effects teaching unknown recipes, and so on.
// The tables are hand-edited, so this runs in CI.
package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/jwebster45206/echoes-of-ruin/pkg/gamedata"
)

func main() {
	v := &ContentValidator{}
	v.validateItems()
	v.validateRecipes()
	v.validateSkills()
	v.validateOrigins()

	if len(v.errors) > 0 {
		fmt.Fprintf(os.Stderr, "Content validation failed:\n")
		for _, e := range v.errors {
			fmt.Fprintf(os.Stderr, "%s\n", e)
		}
		os.Exit(1)
	}

	fmt.Println("Content tables are valid!")
}

type ContentValidator struct {
	errors []string
}

func (v *ContentValidator) validateItems() {
	for _, item := range gamedata.AllItems() {
		v.validateIDFormat("item ID", item.ID)
		if item.Name == "" {
			v.addError(fmt.Sprintf("item '%s' has no name", item.ID))
		}

		for _, effect := range item.Effects {
			if !item.Usable {
				v.addError(fmt.Sprintf("item '%s' declares effects but is not usable", item.ID))
				break
			}
			switch effect.Type {
			case gamedata.ItemEffectHeal:
				if effect.Amount <= 0 {
					v.addError(fmt.Sprintf("item '%s' has a heal effect with no amount", item.ID))
				}
			case gamedata.ItemEffectLearnSkill:
				if _, ok := gamedata.SkillByID(effect.SkillID); !ok {
					v.addError(fmt.Sprintf("item '%s' teaches unknown skill '%s'", item.ID, effect.SkillID))
				}
			case gamedata.ItemEffectLearnRecipe:
				if _, ok := gamedata.RecipeByID(effect.RecipeID); !ok {
					v.addError(fmt.Sprintf("item '%s' teaches unknown recipe '%s'", item.ID, effect.RecipeID))
				}
			default:
				v.addError(fmt.Sprintf("item '%s' has unknown effect type '%s'", item.ID, effect.Type))
			}
		}
	}
}

func (v *ContentValidator) validateRecipes() {
	for _, recipe := range gamedata.AllRecipes() {
		v.validateIDFormat("recipe ID", recipe.ID)

		if len(recipe.Materials) == 0 {
			v.addError(fmt.Sprintf("recipe '%s' has no materials", recipe.ID))
		}
		for _, m := range recipe.Materials {
			if _, ok := gamedata.ItemByID(m.ItemID); !ok {
				v.addError(fmt.Sprintf("recipe '%s' requires unknown item '%s'", recipe.ID, m.ItemID))
			}
			if m.Quantity <= 0 {
				v.addError(fmt.Sprintf("recipe '%s' requires a non-positive quantity of '%s'", recipe.ID, m.ItemID))
			}
		}

		if _, ok := gamedata.ItemByID(recipe.Result.ItemID); !ok {
			v.addError(fmt.Sprintf("recipe '%s' produces unknown item '%s'", recipe.ID, recipe.Result.ItemID))
		}
		if recipe.Result.Quantity <= 0 {
			v.addError(fmt.Sprintf("recipe '%s' produces a non-positive quantity", recipe.ID))
		}
	}
}

func (v *ContentValidator) validateSkills() {
	schools := make(map[string]bool, len(gamedata.AllMagicSchools))
	for _, s := range gamedata.AllMagicSchools {
		schools[s] = true
	}

	for _, skill := range gamedata.AllSkills() {
		v.validateIDFormat("skill ID", skill.ID)
		if skill.Name == "" {
			v.addError(fmt.Sprintf("skill '%s' has no name", skill.ID))
		}
		if skill.CostAmount < 0 {
			v.addError(fmt.Sprintf("skill '%s' has a negative cost", skill.ID))
		}
		if skill.School != "" && !schools[skill.School] {
			v.addError(fmt.Sprintf("skill '%s' belongs to unknown school '%s'", skill.ID, skill.School))
		}
	}
}

func (v *ContentValidator) validateOrigins() {
	styles := make(map[string]bool, len(gamedata.AllWeaponStyles))
	for _, s := range gamedata.AllWeaponStyles {
		styles[s] = true
	}

	for _, origin := range gamedata.Origins {
		if origin.Name == "" {
			v.addError("origin with empty name")
			continue
		}

		for itemID := range origin.StartingEquipment {
			if _, ok := gamedata.ItemByID(itemID); !ok {
				v.addError(fmt.Sprintf("origin '%s' grants unknown item '%s'", origin.Name, itemID))
			}
		}
		for _, recipeID := range origin.StartingRecipes {
			if _, ok := gamedata.RecipeByID(recipeID); !ok {
				v.addError(fmt.Sprintf("origin '%s' grants unknown recipe '%s'", origin.Name, recipeID))
			}
		}
		for _, skillID := range origin.StartingSkills {
			if _, ok := gamedata.SkillByID(skillID); !ok {
				v.addError(fmt.Sprintf("origin '%s' grants unknown skill '%s'", origin.Name, skillID))
			}
		}
		if origin.WeaponProficiency != "" && !styles[origin.WeaponProficiency] {
			v.addError(fmt.Sprintf("origin '%s' favors unknown weapon style '%s'", origin.Name, origin.WeaponProficiency))
		}
	}
}

func (v *ContentValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		v.addError(fmt.Sprintf("empty %s", fieldName))
		return
	}
	if !validIDRegex.MatchString(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *ContentValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
