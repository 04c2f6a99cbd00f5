package state

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jwebster45206/echoes-of-ruin/pkg/actor"
	"github.com/jwebster45206/echoes-of-ruin/pkg/character"
	"github.com/jwebster45206/echoes-of-ruin/pkg/scene"
)

// SceneWorker folds one narrator scene into the character record. Each
// applier tolerates an absent delta: missing fields are the narrator's
// way of saying "no change", and must never clear state.
type SceneWorker struct {
	scene  *scene.Scene
	c      *character.Character
	logger *slog.Logger

	previousNPCs []actor.NPC

	notes          []string
	preamble       []string
	journalUpdated bool
}

// ProcessResult is the outcome of folding a scene into a character.
type ProcessResult struct {
	Character  *character.Character
	FinalScene *scene.Scene
	// Ending is non-nil when this scene ended the playthrough.
	Ending *EndingResult
}

// NewSceneWorker creates a worker for one scene application. The inputs
// are not mutated; the worker operates on a clone.
func NewSceneWorker(s *scene.Scene, c *character.Character, logger *slog.Logger) *SceneWorker {
	return &SceneWorker{
		scene:  s,
		c:      c.Clone(),
		logger: logger,
	}
}

// WithPreviousNPCs sets the previous scene's NPC list so silently dropped
// NPCs can be restored. Returns the SceneWorker for method chaining.
func (sw *SceneWorker) WithPreviousNPCs(npcs []actor.NPC) *SceneWorker {
	sw.previousNPCs = npcs
	return sw
}

// ProcessScene folds a scene into a character with no NPC history.
// Nil arguments are programmer errors and fail fast.
func ProcessScene(s *scene.Scene, c *character.Character) (*ProcessResult, error) {
	if s == nil || c == nil {
		return nil, fmt.Errorf("processScene requires a scene and a character")
	}
	return NewSceneWorker(s, c, slog.Default()).Process()
}

// Process runs the full application pipeline in its fixed order and
// returns the next character plus the finalized scene. The order matters:
// each step only sees what the prior steps produced, and the clamp and
// god-mode overrides run last so the returned character is always valid.
func (sw *SceneWorker) Process() (*ProcessResult, error) {
	if sw.scene == nil || sw.c == nil {
		return nil, fmt.Errorf("scene worker requires a scene and a character")
	}

	sw.applyCompanions()
	sw.applyStatChanges()
	sw.applyInventoryChanges()
	sw.applyBodyPartChanges()
	sw.applyXP()
	sw.learnSkills()
	sw.learnRecipes()
	sw.applyFaith()
	sw.applySanctuary()
	sw.applyJournal()
	sw.resolveCompanionResults()

	final := *sw.scene
	final.NPCs = actor.ReconcileNPCs(sw.previousNPCs, sw.scene.NPCs, sw.scene.UpdatedCompanions)
	final.Description = sw.finalDescription()

	sw.c.ClampResources()
	sw.c.ApplyGodMode()

	ending := ResolveEnding(sw.c, &final)
	if ending != nil {
		final.GameOver = true
		if sw.logger != nil {
			sw.logger.Debug("playthrough ended",
				"ending_key", ending.Key,
				"permadeath", ending.Permadeath)
		}
	}

	return &ProcessResult{
		Character:  sw.c,
		FinalScene: &final,
		Ending:     ending,
	}, nil
}

// applyCompanions replaces the companion roster wholesale when the
// narrator sends one. Taming and reanimation recruits are appended later,
// after the replacement, so they are never lost to it.
func (sw *SceneWorker) applyCompanions() {
	if sw.scene.UpdatedCompanions == nil {
		return
	}
	sw.c.Companions = append([]character.Companion(nil), sw.scene.UpdatedCompanions...)
}

func (sw *SceneWorker) applyStatChanges() {
	for _, ch := range sw.scene.StatChanges {
		sw.c.Stats.AddNamed(ch.Stat, ch.Change)
	}
}

func (sw *SceneWorker) applyInventoryChanges() {
	for _, ch := range sw.scene.InventoryChanges {
		sw.c.Inventory[ch.ItemName] += ch.Quantity
		if sw.c.Inventory[ch.ItemName] <= 0 {
			delete(sw.c.Inventory, ch.ItemName)
		}
	}
}

// applyBodyPartChanges overwrites part statuses unconditionally. The
// narrator has narrative authority here, including healing a severed limb.
func (sw *SceneWorker) applyBodyPartChanges() {
	for _, ch := range sw.scene.BodyPartChanges {
		sw.c.BodyParts[ch.Part] = ch.Status
	}
}

func (sw *SceneWorker) applyXP() {
	sw.notes = append(sw.notes, applyXPAwards(sw.c, sw.scene.XPAwards)...)
}

func (sw *SceneWorker) learnSkills() {
	for _, id := range sw.scene.NewlyLearnedSkillIDs {
		if n, learned := learnSkill(sw.c, id); learned {
			sw.notes = append(sw.notes, n)
		}
	}
}

func (sw *SceneWorker) learnRecipes() {
	for _, id := range sw.scene.NewlyLearnedRecipeIDs {
		if n, learned := learnRecipe(sw.c, id); learned {
			sw.notes = append(sw.notes, n)
		}
	}
}

// applyFaith replaces whole per-deity records. Last writer wins; faith
// fields are never merged.
func (sw *SceneWorker) applyFaith() {
	for _, u := range sw.scene.UpdatedFaith {
		sw.c.Faith[u.Name] = u.Status
	}
	// Proficiency updates share the replace-whole-record contract.
	for _, u := range sw.scene.UpdatedWeaponProficiencies {
		sw.c.WeaponProficiencies[u.Name] = sanitizeProficiency(u.Proficiency)
	}
	for _, u := range sw.scene.UpdatedMagicMasteries {
		sw.c.MagicMasteries[u.Name] = sanitizeProficiency(u.Proficiency)
	}
	for _, u := range sw.scene.UpdatedSpecialSkills {
		sw.c.SpecialSkills[u.Name] = sanitizeProficiency(u.Proficiency)
	}
}

// sanitizeProficiency repairs a narrator-sent track record so that
// xpToNextLevel stays positive and XP stays non-negative. XP rollover
// depends on both.
func sanitizeProficiency(p character.Proficiency) character.Proficiency {
	if p.XPToNextLevel < 1 {
		p.XPToNextLevel = 1
	}
	if p.XP < 0 {
		p.XP = 0
	}
	return p
}

// applySanctuary replaces the whole sanctuary when present, even if the
// replacement is partial or empty. Absence means no change.
func (sw *SceneWorker) applySanctuary() {
	if sw.scene.UpdatedSanctuary == nil {
		return
	}
	s := *sw.scene.UpdatedSanctuary
	sw.c.Sanctuary = &s
}

// applyJournal appends entries, dropping any whose title already exists
// in its category. A delta made entirely of duplicates must not claim the
// journal was updated.
func (sw *SceneWorker) applyJournal() {
	if sw.c.Journal == nil {
		sw.c.Journal = character.NewJournal()
	}
	for _, u := range sw.scene.JournalUpdates {
		if u.Title == "" || sw.c.Journal.HasEntry(u.Category, u.Title) {
			continue
		}
		sw.c.Journal[u.Category] = append(sw.c.Journal[u.Category], character.JournalEntry{
			Title:   u.Title,
			Content: u.Content,
		})
		sw.journalUpdated = true
	}
}

// resolveCompanionResults appends taming and reanimation recruits and
// queues their narrative lines ahead of the notification block.
func (sw *SceneWorker) resolveCompanionResults() {
	if t := sw.scene.TamingResult; t != nil {
		if t.Success && t.Companion != nil {
			sw.c.Companions = append(sw.c.Companions, *t.Companion)
			sw.preamble = append(sw.preamble,
				fmt.Sprintf("[ %s is now your companion. ]", t.Companion.Name))
		} else if !t.Success {
			sw.preamble = append(sw.preamble,
				fmt.Sprintf("[ The %s refuses to be tamed. ]", t.CreatureName))
		}
	}
	if r := sw.scene.ReanimationResult; r != nil {
		if r.Success && r.Companion != nil {
			sw.c.Companions = append(sw.c.Companions, *r.Companion)
			sw.preamble = append(sw.preamble,
				fmt.Sprintf("[ %s rises to serve you. ]", r.Companion.Name))
		} else if !r.Success {
			msg := r.Message
			if msg == "" {
				msg = "The ritual fails."
			}
			sw.preamble = append(sw.preamble, fmt.Sprintf("[ %s ]", msg))
		}
	}
}

// finalDescription assembles the notification block and prefixes it to
// the narrative, separated by a blank line. The block order is fixed:
// taming/reanimation lines, companion actions, XP and learning notes,
// journal marker, sanctuary and faith notifications.
func (sw *SceneWorker) finalDescription() string {
	var parts []string
	parts = append(parts, sw.preamble...)
	for _, d := range sw.scene.CompanionActionDescriptions {
		parts = append(parts, fmt.Sprintf("[ %s ]", d))
	}
	for _, n := range sw.notes {
		parts = append(parts, fmt.Sprintf("[ %s ]", n))
	}
	if sw.journalUpdated {
		parts = append(parts, "[ Journal updated. ]")
	}
	if sw.scene.SanctuaryNotification != "" {
		parts = append(parts, fmt.Sprintf("[ %s ]", sw.scene.SanctuaryNotification))
	}
	if sw.scene.FaithNotification != "" {
		parts = append(parts, fmt.Sprintf("[ %s ]", sw.scene.FaithNotification))
	}

	if len(parts) == 0 {
		return sw.scene.Description
	}
	return strings.Join(parts, "\n\n") + "\n\n" + sw.scene.Description
}
