package character

// Follower is one member of the character's sanctuary.
type Follower struct {
	Name    string `json:"name"`
	Loyalty int    `json:"loyalty"`
	Status  string `json:"status"` // e.g. "Idle", "Scavenging", "Patrolling"
}

// Sanctuary is the character's settlement, if they have founded one. The
// narrator replaces the whole record when it changes; the engine never
// merges sanctuary fields.
type Sanctuary struct {
	Name         string     `json:"name"`
	Hope         int        `json:"hope"`
	Population   int        `json:"population"`
	Improvements []string   `json:"improvements,omitempty"`
	Followers    []Follower `json:"followers,omitempty"`
}

// FindFollower returns a pointer into the follower list, or nil.
func (s *Sanctuary) FindFollower(name string) *Follower {
	if s == nil {
		return nil
	}
	for i := range s.Followers {
		if s.Followers[i].Name == name {
			return &s.Followers[i]
		}
	}
	return nil
}
