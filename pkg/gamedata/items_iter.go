package gamedata

import (
	"sort"

	"github.com/jwebster45206/echoes-of-ruin/pkg/character"
)

// AllItems returns every item, sorted by id.
func AllItems() []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AllSkills returns every skill, sorted by id.
func AllSkills() []character.Skill {
	out := make([]character.Skill, 0, len(skills))
	for id := range skills {
		s, _ := SkillByID(id)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
