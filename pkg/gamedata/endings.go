package gamedata

// Ending keys. DEATH_HP and DEATH_SANITY are resolved by the engine on
// stat-driven deaths; the narrator may name any key directly.
const (
	EndingDeathHP     = "DEATH_HP"
	EndingDeathSanity = "DEATH_SANITY"
	EndingPuppetFate  = "PUPPET_FATE"
	EndingEscapeAlone = "ESCAPE_ALONE"
	EndingAscension   = "TRANSFORMATION_ASCENSION"
	EndingGeneric     = "GENERIC_END"
)

// Ending is a static game-over definition.
type Ending struct {
	Title         string `json:"title"`
	DefaultReason string `json:"default_reason"`
}

var endings = map[string]Ending{
	EndingDeathHP: {
		Title: "THE COLLAPSE OF THE FLESH",
		DefaultReason: "Your body can endure no more. Bones break, blood pours, " +
			"and you crumple onto the cold stone, a meal for the things " +
			"that stalk the dark. No one will remember your name.",
	},
	EndingDeathSanity: {
		Title: "THE SHATTERING OF THE MIND",
		DefaultReason: "Reality splinters before your eyes. Warped shapes, " +
			"whispers without end. You laugh madly, one more echo in the " +
			"eternal decay.",
	},
	EndingPuppetFate: {
		Title: "THE PUPPET'S FATE",
		DefaultReason: "A cold presence floods your body as a foreign will tears " +
			"through your mind. Your eyes stay open, but it is no longer " +
			"you looking out. Your body moves at another's command, a " +
			"puppet of flesh and bone, trapped in its own prison to " +
			"witness the horrors it will be made to perform.",
	},
	EndingEscapeAlone: {
		Title: "THE LONE ESCAPE",
		DefaultReason: "The pale light of the outside world touches your weary " +
			"eyes. You are out, but the memories will haunt you forever. " +
			"You survived, yet part of you died back in the ruin.",
	},
	EndingAscension: {
		Title: "ASCENSION",
		DefaultReason: "Your mortal flesh dissolves. You are no longer human but " +
			"an avatar, the will of an ancient power. You have passed " +
			"beyond pain, and beyond humanity.",
	},
	EndingGeneric: {
		Title:         "THE END",
		DefaultReason: "Your journey is over.",
	},
}

// EndingByKey resolves an ending key, falling back to the generic ending
// for unknown keys so a malformed narrator response still ends cleanly.
func EndingByKey(key string) Ending {
	if e, ok := endings[key]; ok {
		return e
	}
	return endings[EndingGeneric]
}
