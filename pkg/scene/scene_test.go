package scene

import (
	"encoding/json"
	"testing"
)

func TestSceneValidate(t *testing.T) {
	tests := []struct {
		name    string
		scene   Scene
		wantErr bool
	}{
		{
			name:  "valid scene",
			scene: Scene{Description: "A door.", Choices: []string{"Open it"}},
		},
		{
			name:    "missing description",
			scene:   Scene{Choices: []string{"Open it"}},
			wantErr: true,
		},
		{
			name:    "no choices while alive",
			scene:   Scene{Description: "A door."},
			wantErr: true,
		},
		{
			name:  "no choices on game over",
			scene: Scene{Description: "The end.", GameOver: true},
		},
		{
			name: "no choices during mark level-up",
			scene: Scene{
				Description:      "The mark burns.",
				MarkLevelUpEvent: &MarkLevelUpEvent{Deity: "Sylvian", NewLevel: 2},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scene.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFallbackCarriesNoDeltas(t *testing.T) {
	f := Fallback()
	if err := f.Validate(); err != nil {
		t.Fatalf("fallback must be structurally valid: %v", err)
	}
	if f.GameOver {
		t.Error("fallback must never end the game")
	}
	if len(f.Enemies) != 0 {
		t.Error("fallback must not spawn enemies")
	}
	if len(f.StatChanges) != 0 || len(f.InventoryChanges) != 0 || f.UpdatedSanctuary != nil {
		t.Error("fallback must carry no state deltas")
	}
	if len(f.Choices) != 3 {
		t.Errorf("fallback offers three retry choices, got %d", len(f.Choices))
	}
}

func TestSceneAbsentFieldsStayAbsent(t *testing.T) {
	raw := `{"description":"A hall.","choices":["Go"],"enemies":[],"game_over":false}`
	var s Scene
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.StatChanges != nil || s.JournalUpdates != nil || s.UpdatedSanctuary != nil {
		t.Error("absent delta fields must decode to nil, meaning no change")
	}
	if s.NPCs != nil {
		t.Error("absent npc list must decode to nil for reconciliation defaults")
	}
	if len(s.Enemies) != 0 {
		t.Errorf("expected empty enemies, got %+v", s.Enemies)
	}
}
