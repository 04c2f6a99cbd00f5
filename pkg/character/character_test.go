package character

import (
	"reflect"
	"testing"
)

func sampleCharacter() *Character {
	return &Character{
		Name: "Aldric",
		Stats: Stats{
			HP: 150, MaxHP: 120,
			San: 90, MaxSan: 100,
			Mana: 200, MaxMana: 100,
			Stamina: 50, MaxStamina: 100,
		},
		Hunger: 120, MaxHunger: 100,
		Thirst: 40, MaxThirst: 100,
		BodyParts: NewBodyParts(),
		Inventory: map[string]int{"torch": 1},
		Journal:   NewJournal(),
		WeaponProficiencies: map[string]Proficiency{
			"Sword and Shield": {Unlocked: true, Level: 2, XP: 10, XPToNextLevel: 150},
		},
		MagicMasteries: map[string]Proficiency{},
		SpecialSkills:  map[string]Proficiency{},
		Faith:          map[string]FaithStatus{},
	}
}

func TestClampResources(t *testing.T) {
	c := sampleCharacter()
	c.ClampResources()

	if c.Stats.HP != 120 {
		t.Errorf("hp should clamp to max 120, got %d", c.Stats.HP)
	}
	if c.Stats.Mana != 100 {
		t.Errorf("mana should clamp to max 100, got %d", c.Stats.Mana)
	}
	if c.Stats.San != 90 {
		t.Errorf("san below max must not change, got %d", c.Stats.San)
	}
	if c.Stats.Stamina != 50 {
		t.Errorf("stamina below max must not change, got %d", c.Stats.Stamina)
	}
	if c.Hunger != 100 {
		t.Errorf("hunger should clamp to max, got %d", c.Hunger)
	}
	if c.Thirst != 40 {
		t.Errorf("thirst below max must not change, got %d", c.Thirst)
	}
}

func TestApplyGodMode(t *testing.T) {
	c := sampleCharacter()
	c.Stats.HP = 1
	c.Hunger = 0

	c.ApplyGodMode()
	if c.Stats.HP != 1 {
		t.Error("god mode off must be a no-op")
	}

	c.GodMode = true
	c.ApplyGodMode()
	if c.Stats.HP != c.Stats.MaxHP || c.Hunger != c.MaxHunger || c.Thirst != c.MaxThirst {
		t.Errorf("god mode must force all resources to maxima: %+v", c.Stats)
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := sampleCharacter()
	c.Skills = []Skill{{ID: "s", Effects: []SkillEffect{{Type: EffectDamage, BaseAmount: 5}}}}
	c.Companions = []Companion{{Name: "Mira", StatusEffects: []string{"tired"}}}
	c.Sanctuary = &Sanctuary{Name: "Hearth", Followers: []Follower{{Name: "Jun"}}}
	c.Journal["quests"] = []JournalEntry{{Title: "T", Content: "C"}}

	clone := c.Clone()
	if !reflect.DeepEqual(clone, c) {
		t.Fatal("clone must equal the original")
	}

	clone.Inventory["torch"] = 99
	clone.Skills[0].Effects[0].BaseAmount = 999
	clone.Companions[0].StatusEffects[0] = "changed"
	clone.Sanctuary.Followers[0].Name = "changed"
	clone.Journal["quests"][0].Title = "changed"
	clone.WeaponProficiencies["Sword and Shield"] = Proficiency{}

	if c.Inventory["torch"] != 1 ||
		c.Skills[0].Effects[0].BaseAmount != 5 ||
		c.Companions[0].StatusEffects[0] != "tired" ||
		c.Sanctuary.Followers[0].Name != "Jun" ||
		c.Journal["quests"][0].Title != "T" ||
		c.WeaponProficiencies["Sword and Shield"].Level != 2 {
		t.Error("mutating the clone leaked into the original")
	}
}

func TestNewSeedsAllTracks(t *testing.T) {
	weapons := []string{"Sword and Shield", "Unarmed"}
	schools := []string{"Arcane", "Holy"}
	deities := []string{"Sylvian"}

	c := New(CreationParams{
		Name: "Aldric",
		Origin: Origin{
			Name:              "Fallen Knight",
			BaseStats:         map[string]int{"hp": 120, "attack": 10},
			StartingEquipment: map[string]int{"longsword_cracked": 1},
			StartingRecipes:   []string{"bandages"},
		},
		WeaponStyles: weapons,
		MagicSchools: schools,
		Deities:      deities,
	})

	if c.Stats.HP != 120 || c.Stats.MaxHP != 120 {
		t.Errorf("origin hp must set both current and max, got %d/%d", c.Stats.HP, c.Stats.MaxHP)
	}
	if c.Stats.Attack != 10 {
		t.Errorf("expected attack 10, got %d", c.Stats.Attack)
	}
	if c.Stats.Mana != BaseResource {
		t.Errorf("unset resources default to %d, got %d", BaseResource, c.Stats.Mana)
	}

	for _, w := range weapons {
		p, ok := c.WeaponProficiencies[w]
		if !ok || p.Level != 1 || p.XPToNextLevel != BaseXPToNext || !p.Unlocked {
			t.Errorf("weapon track %q not seeded: %+v", w, p)
		}
	}
	for _, s := range schools {
		if _, ok := c.MagicMasteries[s]; !ok {
			t.Errorf("magic track %q not seeded", s)
		}
	}
	for _, d := range deities {
		f, ok := c.Faith[d]
		if !ok || f.FaithPointsToNextLevel != BaseFaithToNext {
			t.Errorf("faith track %q not seeded: %+v", d, f)
		}
	}
	for _, special := range []string{SpecialBeastTaming, SpecialNecromancy} {
		p, ok := c.SpecialSkills[special]
		if !ok || p.Unlocked || p.Level != 0 {
			t.Errorf("special track %q should start locked at level 0: %+v", special, p)
		}
	}

	if len(c.BodyParts) != 6 {
		t.Errorf("expected 6 body parts, got %d", len(c.BodyParts))
	}
	if c.Hunger != BaseMaxHunger || c.Thirst != BaseMaxThirst {
		t.Error("survival meters start full")
	}
	if c.Inventory["longsword_cracked"] != 1 {
		t.Error("starting equipment missing")
	}
	if len(c.KnownRecipeIDs) != 1 || c.KnownRecipeIDs[0] != "bandages" {
		t.Errorf("starting recipes not copied: %v", c.KnownRecipeIDs)
	}
}

func TestJournalHasEntry(t *testing.T) {
	j := NewJournal()
	j[JournalQuests] = append(j[JournalQuests], JournalEntry{Title: "Find the well"})

	if !j.HasEntry(JournalQuests, "Find the well") {
		t.Error("expected entry to be found")
	}
	if j.HasEntry(JournalLore, "Find the well") {
		t.Error("titles are scoped per category")
	}
	if j.HasEntry(JournalQuests, "Other") {
		t.Error("unknown title must not match")
	}
}

func TestStatsAddNamedUnknownIgnored(t *testing.T) {
	s := Stats{HP: 10, MaxHP: 20}
	before := s
	s.AddNamed("luck", 5)
	if s != before {
		t.Error("unknown stat names must be ignored")
	}
	s.AddNamed("hp", -50)
	if s.HP != 0 {
		t.Errorf("named stat changes floor at zero, got %d", s.HP)
	}
	s.AddNamed("maxHp", 5)
	if s.MaxHP != 25 {
		t.Errorf("camelCase max form accepted, got %d", s.MaxHP)
	}
}
