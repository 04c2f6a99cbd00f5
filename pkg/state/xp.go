package state

import (
	"fmt"

	"github.com/jwebster45206/echoes-of-ruin/pkg/character"
	"github.com/jwebster45206/echoes-of-ruin/pkg/scene"
)

// XPGrowthFactor is applied to a track's XP requirement on each level-up.
const XPGrowthFactor = 1.5

// applyXPAwards credits XP awards against the character's proficiency
// tracks and resolves level-ups, appending one notification per gain and
// per level. Awards against unknown tracks are ignored; tracks are
// pre-seeded at creation, so an unknown track means the narrator invented
// one. Mutates c in place (callers hold a clone).
func applyXPAwards(c *character.Character, awards []scene.XPAward) []string {
	var notes []string
	for _, a := range awards {
		var tracks map[string]character.Proficiency
		switch a.Type {
		case scene.XPWeapon:
			tracks = c.WeaponProficiencies
		case scene.XPMagic:
			tracks = c.MagicMasteries
		case scene.XPSpecial:
			tracks = c.SpecialSkills
		default:
			continue
		}
		p, ok := tracks[a.Name]
		if !ok || a.Amount <= 0 {
			continue
		}

		p.XP += a.Amount
		notes = append(notes, fmt.Sprintf("%s gained %d XP.", a.Name, a.Amount))

		// One large award can roll over multiple levels. A track with a
		// non-positive requirement never rolls over; the requirement is
		// restored to at least 1 when narrator records are applied.
		for p.XPToNextLevel > 0 && p.XP >= p.XPToNextLevel {
			p.XP -= p.XPToNextLevel
			p.Level++
			p.XPToNextLevel = int(float64(p.XPToNextLevel) * XPGrowthFactor)
			notes = append(notes, fmt.Sprintf("%s reached level %d!", a.Name, p.Level))
		}
		tracks[a.Name] = p
	}
	return notes
}
