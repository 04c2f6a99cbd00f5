package lore

import "testing"

func TestRetrieveScoresByKeywordCount(t *testing.T) {
	entries := Retrieve("A fallen knight grips his cracked longsword and swears a new oath.", 2)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// The knight entry matches three keywords, the sword entry two.
	if entries[0].ID != "origin_knight" {
		t.Errorf("expected origin_knight first, got %s", entries[0].ID)
	}
	if entries[1].ID != "item_cracked_longsword" {
		t.Errorf("expected item_cracked_longsword second, got %s", entries[1].ID)
	}
}

func TestRetrieveIsCaseInsensitive(t *testing.T) {
	entries := Retrieve("GRO-GOROTH demands DESTRUCTION", 5)
	if len(entries) == 0 {
		t.Fatal("expected a match")
	}
	if entries[0].ID != "deity_gro_goroth" {
		t.Errorf("expected deity_gro_goroth, got %s", entries[0].ID)
	}
}

func TestRetrieveNoMatches(t *testing.T) {
	if entries := Retrieve("completely unrelated text", 3); len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestRetrieveRespectsLimit(t *testing.T) {
	entries := Retrieve("knight scholar survivor ruins dagger sword", 2)
	if len(entries) != 2 {
		t.Errorf("expected limit of 2, got %d", len(entries))
	}
	if got := Retrieve("knight", 0); got != nil {
		t.Errorf("expected nil for zero limit, got %v", got)
	}
}
