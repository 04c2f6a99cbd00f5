package actor

import "github.com/jwebster45206/echoes-of-ruin/pkg/character"

// NPC dispositions as the narrator reports them.
const (
	DispositionFriendly = "Friendly"
	DispositionNeutral  = "Neutral"
	DispositionHostile  = "Hostile"
	DispositionAfraid   = "Afraid"
)

// NPC is a non-player character present in the current scene.
type NPC struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Disposition     string   `json:"disposition,omitempty"`
	DialogueHistory []string `json:"dialogue_history,omitempty"`
}

// ReconcileNPCs repairs the narrator's habit of silently dropping NPCs it
// has nothing new to say about. Any NPC from the previous scene that is
// missing from the new list is restored, unless its absence is explained
// by recruitment into the companion roster this turn. AI-returned NPCs
// come first, then restored leftovers in previous-scene order.
func ReconcileNPCs(previous, next []NPC, recruited []character.Companion) []NPC {
	if len(previous) == 0 {
		return next
	}

	nextIDs := make(map[string]bool, len(next))
	for _, n := range next {
		nextIDs[n.ID] = true
	}
	recruitedNames := make(map[string]bool, len(recruited))
	for _, c := range recruited {
		recruitedNames[c.Name] = true
	}

	out := append([]NPC(nil), next...)
	for _, p := range previous {
		if !nextIDs[p.ID] && !recruitedNames[p.Name] {
			out = append(out, p)
		}
	}
	return out
}
