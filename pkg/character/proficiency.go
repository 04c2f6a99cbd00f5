package character

// Proficiency is a named progression track (weapon style, magic school,
// or special skill). XP rolls over into levels with a fixed growth curve;
// after leveling resolution XP is always below XPToNextLevel.
type Proficiency struct {
	Unlocked      bool `json:"unlocked"`
	Level         int  `json:"level"`
	XP            int  `json:"xp"`
	XPToNextLevel int  `json:"xp_to_next_level"`
}

// FaithStatus tracks the character's standing with one deity.
type FaithStatus struct {
	MarkLevel              int `json:"mark_level"`
	FaithPoints            int `json:"faith_points"`
	FaithPointsToNextLevel int `json:"faith_points_to_next_level"`
}
