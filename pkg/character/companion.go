package character

// Companion is a recruited NPC, tamed beast, or reanimated servant that
// fights alongside the character. Companions are owned value types on the
// Character record; they keep their own stat block, independent of the
// player's.
type Companion struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Stats         Stats    `json:"stats"`
	StatusEffects []string `json:"status_effects,omitempty"`
	IsUndead      bool     `json:"is_undead,omitempty"`
}
