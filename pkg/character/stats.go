package character

// Stats holds the full resource and combat stat block for the player
// character. Companions carry their own copy of the same block.
type Stats struct {
	HP         int `json:"hp"`
	MaxHP      int `json:"max_hp"`
	San        int `json:"san"`
	MaxSan     int `json:"max_san"`
	Mana       int `json:"mana"`
	MaxMana    int `json:"max_mana"`
	Stamina    int `json:"stamina"`
	MaxStamina int `json:"max_stamina"`
	Attack     int `json:"attack"`
	Defense    int `json:"defense"`
	Speed      int `json:"speed"`
	Charisma   int `json:"charisma"`
}

// Resource identifies a spendable stat pool.
type Resource string

const (
	ResourceHP      Resource = "hp"
	ResourceSan     Resource = "san"
	ResourceMana    Resource = "mana"
	ResourceStamina Resource = "stamina"
)

// Get returns the current value of a resource pool.
func (s *Stats) Get(r Resource) int {
	switch r {
	case ResourceHP:
		return s.HP
	case ResourceSan:
		return s.San
	case ResourceMana:
		return s.Mana
	case ResourceStamina:
		return s.Stamina
	}
	return 0
}

// Add adjusts a resource pool by delta, flooring at zero. Capping at the
// pool's maximum is the clamp step's job, not Add's.
func (s *Stats) Add(r Resource, delta int) {
	switch r {
	case ResourceHP:
		s.HP = max(0, s.HP+delta)
	case ResourceSan:
		s.San = max(0, s.San+delta)
	case ResourceMana:
		s.Mana = max(0, s.Mana+delta)
	case ResourceStamina:
		s.Stamina = max(0, s.Stamina+delta)
	}
}

// AddNamed adjusts any stat by name, flooring at zero. Unknown stat names
// are ignored; the AI occasionally invents stats and that must not fail
// the whole scene.
func (s *Stats) AddNamed(stat string, delta int) {
	switch stat {
	case "hp":
		s.HP = max(0, s.HP+delta)
	case "maxHp", "max_hp":
		s.MaxHP = max(0, s.MaxHP+delta)
	case "san":
		s.San = max(0, s.San+delta)
	case "maxSan", "max_san":
		s.MaxSan = max(0, s.MaxSan+delta)
	case "mana":
		s.Mana = max(0, s.Mana+delta)
	case "maxMana", "max_mana":
		s.MaxMana = max(0, s.MaxMana+delta)
	case "stamina":
		s.Stamina = max(0, s.Stamina+delta)
	case "maxStamina", "max_stamina":
		s.MaxStamina = max(0, s.MaxStamina+delta)
	case "attack":
		s.Attack = max(0, s.Attack+delta)
	case "defense":
		s.Defense = max(0, s.Defense+delta)
	case "speed":
		s.Speed = max(0, s.Speed+delta)
	case "charisma":
		s.Charisma = max(0, s.Charisma+delta)
	}
}
