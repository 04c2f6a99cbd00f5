package gamedata

import "github.com/jwebster45206/echoes-of-ruin/pkg/character"

// Magic schools.
const (
	SchoolArcane = "Arcane"
	SchoolBlood  = "Blood Magic"
	SchoolAbyss  = "Abyss"
	SchoolHoly   = "Holy"
)

var skills = map[string]character.Skill{
	// Survivor
	"survivor_pocket_sand": {
		ID: "survivor_pocket_sand", Name: "Pocket Sand",
		Description: "Fling sand into an enemy's eyes, with a chance to blind them for the next turn.",
		CostType:    character.ResourceStamina, CostAmount: 10, Cooldown: 2,
		Effects: []character.SkillEffect{
			{Type: character.EffectApplyStatus, Status: "blinded", Chance: 0.7, Duration: 1},
		},
	},

	// Scholar
	"scholar_arcane_bolt": {
		ID: "scholar_arcane_bolt", Name: "Arcane Bolt",
		Description: "Fire a bolt of arcane energy for moderate damage.",
		CostType:    character.ResourceMana, CostAmount: 15, School: SchoolArcane,
		Effects: []character.SkillEffect{
			{Type: character.EffectDamage, BaseAmount: 15, DamageType: "arcane"},
		},
	},
	"scholar_mental_assault": {
		ID: "scholar_mental_assault", Name: "Mental Assault",
		Description: "Strike directly at an enemy's mind, dealing heavy mental damage with a chance to stun.",
		CostType:    character.ResourceMana, CostAmount: 30, Cooldown: 4, School: SchoolArcane,
		Effects: []character.SkillEffect{
			{Type: character.EffectDamage, BaseAmount: 25, DamageType: "mental"},
			{Type: character.EffectApplyStatus, Status: "stunned", Chance: 0.3, Duration: 1},
		},
	},

	// Knight
	"knight_defensive_stance": {
		ID: "knight_defensive_stance", Name: "Defensive Stance",
		Description: "Greatly raise Defense for one turn at the cost of Attack.",
		CostType:    character.ResourceStamina, CostAmount: 20, Cooldown: 3,
		Effects: []character.SkillEffect{
			{Type: character.EffectBuffStat, Stat: "defense", Multiplier: 2, Duration: 1},
			{Type: character.EffectDebuffStat, Stat: "attack", Multiplier: 0.5, Duration: 1},
		},
	},

	// Barbarian
	"barbarian_savage_strike": {
		ID: "barbarian_savage_strike", Name: "Savage Strike",
		Description: "A wild blow that deals heavy damage but lowers your Defense this turn.",
		CostType:    character.ResourceStamina, CostAmount: 25, Cooldown: 2,
		Effects: []character.SkillEffect{
			{Type: character.EffectDamage, BaseAmount: 30, DamageType: "physical"},
			{Type: character.EffectDebuffStat, Stat: "defense", Multiplier: 0.5, Duration: 1},
		},
	},

	// Dark Ritualist
	"dark_ritualist_drain_life": {
		ID: "dark_ritualist_drain_life", Name: "Drain Life",
		Description: "Siphon blood from a target to restore yourself. Deals Abyss damage.",
		CostType:    character.ResourceMana, CostAmount: 18, Cooldown: 2, School: SchoolAbyss,
		Effects: []character.SkillEffect{
			{Type: character.EffectDamage, BaseAmount: 12, DamageType: "abyss"},
			{Type: character.EffectHeal, BaseAmount: 12, Target: "self"},
		},
	},

	// Archer
	"archer_crippling_shot": {
		ID: "archer_crippling_shot", Name: "Crippling Shot",
		Description: "Shoot an enemy's legs, with a chance to slow them.",
		CostType:    character.ResourceStamina, CostAmount: 20, Cooldown: 3,
		Effects: []character.SkillEffect{
			{Type: character.EffectDamage, BaseAmount: 10, DamageType: "physical"},
			{Type: character.EffectDebuffStat, Stat: "speed", Multiplier: 0.5, Duration: 2, Chance: 0.8},
		},
	},

	// Cultist
	"cultist_blood_offering": {
		ID: "cultist_blood_offering", Name: "Blood Offering",
		Description: "Sacrifice HP in exchange for a surge of Mana.",
		CostType:    character.ResourceHP, CostAmount: 20, Cooldown: 1, School: SchoolBlood,
		Effects: []character.SkillEffect{
			{Type: character.EffectResourceTransfer, BaseAmount: 40, To: character.ResourceMana},
		},
	},

	// Deity path skills, granted by the Power level-up path.
	"chaos_unpredictable_strike": {
		ID: "chaos_unpredictable_strike", Name: "Unpredictable Strike",
		Description: "A blow guided by Khaos. No two swings land the same way.",
		CostType:    character.ResourceStamina, CostAmount: 15, Cooldown: 2,
		Effects: []character.SkillEffect{
			{Type: character.EffectDamage, BaseAmount: 20, DamageType: "physical"},
		},
	},
	"aethel_veil_of_shadows": {
		ID: "aethel_veil_of_shadows", Name: "Veil of Shadows",
		Description: "Aethel's void wraps around you, turning aside incoming blows.",
		CostType:    character.ResourceMana, CostAmount: 20, Cooldown: 3, School: SchoolAbyss,
		Effects: []character.SkillEffect{
			{Type: character.EffectBuffStat, Stat: "defense", Multiplier: 1.5, Duration: 2},
		},
	},
	"lithos_earthen_armor": {
		ID: "lithos_earthen_armor", Name: "Earthen Armor",
		Description: "Stone answers the will of Lithos and sheathes your body.",
		CostType:    character.ResourceMana, CostAmount: 25, Cooldown: 4,
		Effects: []character.SkillEffect{
			{Type: character.EffectBuffStat, Stat: "defense", Multiplier: 2, Duration: 1},
		},
	},
	"sylvian_healing_embrace": {
		ID: "sylvian_healing_embrace", Name: "Healing Embrace",
		Description: "Sylvian's warmth knits torn flesh back together.",
		CostType:    character.ResourceMana, CostAmount: 25, Cooldown: 3, School: SchoolHoly,
		Effects: []character.SkillEffect{
			{Type: character.EffectHeal, BaseAmount: 30, Target: "self"},
		},
	},
	"gro_goroth_blood_frenzy": {
		ID: "gro_goroth_blood_frenzy", Name: "Blood Frenzy",
		Description: "Gro-goroth's hunger takes hold. Strike harder, bleed freely.",
		CostType:    character.ResourceHP, CostAmount: 15, Cooldown: 3, School: SchoolBlood,
		Effects: []character.SkillEffect{
			{Type: character.EffectBuffStat, Stat: "attack", Multiplier: 1.5, Duration: 2},
		},
	},
	"alll_mer_holy_smite": {
		ID: "alll_mer_holy_smite", Name: "Holy Smite",
		Description: "Alll-mer's judgment falls as searing light.",
		CostType:    character.ResourceMana, CostAmount: 30, Cooldown: 3, School: SchoolHoly,
		Effects: []character.SkillEffect{
			{Type: character.EffectDamage, BaseAmount: 28, DamageType: "holy"},
		},
	},

	// Special skills. Their outcomes are narrated rather than resolved in
	// combat, so they declare no effects; the turn handler detects them.
	"special_try_taming": {
		ID: "special_try_taming", Name: "Attempt Taming",
		Description: "Try to tame a non-sapient creature. Usable only outside combat.",
		CostType:    character.ResourceStamina, CostAmount: 30,
	},
	"special_try_reanimation": {
		ID: "special_try_reanimation", Name: "Attempt Reanimation",
		Description: "Perform a dark rite to raise a corpse as an undead disciple. Usable only outside combat.",
		CostType:    character.ResourceMana, CostAmount: 40, School: SchoolAbyss,
	},
}

// SkillByID returns a copy of a static skill definition with a fresh
// cooldown, ready to append to a character's skill list.
func SkillByID(id string) (character.Skill, bool) {
	s, ok := skills[id]
	if !ok {
		return character.Skill{}, false
	}
	s.CurrentCooldown = 0
	s.Effects = append([]character.SkillEffect(nil), s.Effects...)
	return s, true
}
