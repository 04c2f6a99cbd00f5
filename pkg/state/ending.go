package state

import (
	"github.com/jwebster45206/echoes-of-ruin/pkg/character"
	"github.com/jwebster45206/echoes-of-ruin/pkg/gamedata"
	"github.com/jwebster45206/echoes-of-ruin/pkg/scene"
)

// EndingResult describes a resolved game-over: the ending key, its title,
// the displayed reason, and whether the save must be deleted.
type EndingResult struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
	// Permadeath is true when the active difficulty deletes the save on
	// death. The persistence layer acts on it; the engine only reports.
	Permadeath bool `json:"permadeath"`
}

// ResolveEnding determines whether the playthrough has ended and, if so,
// resolves the ending. Returns nil while the character is still alive.
// Death fires on the narrator's explicit game-over flag, or on HP or
// sanity reaching zero outside god mode.
func ResolveEnding(c *character.Character, s *scene.Scene) *EndingResult {
	dead := !c.GodMode && (c.Stats.HP <= 0 || c.Stats.San <= 0)
	if !s.GameOver && !dead {
		return nil
	}

	key := s.EndingKey
	if key == "" {
		switch {
		case c.Stats.HP <= 0:
			key = gamedata.EndingDeathHP
		case c.Stats.San <= 0:
			key = gamedata.EndingDeathSanity
		default:
			key = gamedata.EndingGeneric
		}
	}

	ending := gamedata.EndingByKey(key)
	reason := s.Reason
	if reason == "" {
		reason = ending.DefaultReason
	}

	return &EndingResult{
		Key:        key,
		Title:      ending.Title,
		Reason:     reason,
		Permadeath: c.Difficulty.Permadeath,
	}
}
