package state

import (
	"testing"

	"github.com/jwebster45206/echoes-of-ruin/pkg/gamedata"
	"github.com/jwebster45206/echoes-of-ruin/pkg/scene"
)

func TestResolveEnding_AliveReturnsNil(t *testing.T) {
	c := testCharacter()
	if got := ResolveEnding(c, emptyScene()); got != nil {
		t.Errorf("healthy character should not end the run, got %+v", got)
	}
}

func TestResolveEnding_DeathByInjury(t *testing.T) {
	c := testCharacter()
	c.Stats.HP = 0
	s := emptyScene() // gameOver false, no ending key

	got := ResolveEnding(c, s)
	if got == nil {
		t.Fatal("hp 0 outside god mode must end the run")
	}
	if got.Key != gamedata.EndingDeathHP {
		t.Errorf("expected key %s, got %s", gamedata.EndingDeathHP, got.Key)
	}
	if got.Reason != gamedata.EndingByKey(gamedata.EndingDeathHP).DefaultReason {
		t.Error("with no scene reason, the ending's default reason applies")
	}
}

func TestResolveEnding_DeathByMadness(t *testing.T) {
	c := testCharacter()
	c.Stats.San = 0

	got := ResolveEnding(c, emptyScene())
	if got == nil || got.Key != gamedata.EndingDeathSanity {
		t.Fatalf("expected %s ending, got %+v", gamedata.EndingDeathSanity, got)
	}
}

func TestResolveEnding_SceneKeyAndReasonPreferred(t *testing.T) {
	c := testCharacter()
	c.Stats.HP = 0
	s := emptyScene()
	s.GameOver = true
	s.EndingKey = gamedata.EndingPuppetFate
	s.Reason = "Something else is wearing you now."

	got := ResolveEnding(c, s)
	if got.Key != gamedata.EndingPuppetFate {
		t.Errorf("scene ending key must win over stat-derived keys, got %s", got.Key)
	}
	if got.Reason != "Something else is wearing you now." {
		t.Errorf("scene reason must win over defaults, got %q", got.Reason)
	}
}

func TestResolveEnding_NarratorGameOverWithoutDeath(t *testing.T) {
	c := testCharacter()
	s := emptyScene()
	s.GameOver = true

	got := ResolveEnding(c, s)
	if got == nil || got.Key != gamedata.EndingGeneric {
		t.Fatalf("narrator game-over without a key falls back to the generic ending, got %+v", got)
	}
}

func TestResolveEnding_GodModeSurvivesZeroStats(t *testing.T) {
	c := testCharacter()
	c.GodMode = true
	c.Stats.HP = 0
	c.Stats.San = 0

	if got := ResolveEnding(c, emptyScene()); got != nil {
		t.Errorf("god mode must not die from stats, got %+v", got)
	}
}

func TestResolveEnding_PermadeathFlag(t *testing.T) {
	c := testCharacter()
	c.Stats.HP = 0

	got := ResolveEnding(c, emptyScene())
	if got.Permadeath {
		t.Error("Trial difficulty must not flag permadeath")
	}

	nightmare, _ := gamedata.DifficultyByName("Nightmare")
	c.Difficulty = nightmare
	got = ResolveEnding(c, emptyScene())
	if !got.Permadeath {
		t.Error("Nightmare difficulty must flag permadeath for save cleanup")
	}
}

func TestSceneWorker_DeathTransitionMarksScene(t *testing.T) {
	c := testCharacter()
	s := emptyScene()
	s.StatChanges = []scene.StatChange{{Stat: "hp", Change: -9999}}

	result, err := NewSceneWorker(s, c, noopLogger).Process()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Ending == nil {
		t.Fatal("lethal delta must end the run")
	}
	if !result.FinalScene.GameOver {
		t.Error("final scene must carry the game-over flag")
	}
	if result.Ending.Key != gamedata.EndingDeathHP {
		t.Errorf("expected %s, got %s", gamedata.EndingDeathHP, result.Ending.Key)
	}
}
