// Package lore provides keyword-scored retrieval over the static lore
// library. Retrieved entries are injected into narrator prompts so the
// storyteller stays consistent with established world detail.
package lore

import (
	"sort"
	"strings"
)

// Entry is a single piece of world knowledge with the keywords that
// make it retrievable.
type Entry struct {
	ID       string   `json:"id"`
	Keywords []string `json:"keywords"`
	Content  string   `json:"content"`
}

// Retrieve scores every library entry by counting its keywords that
// appear in context, then returns the top maxResults entries with at
// least one match, highest score first.
func Retrieve(context string, maxResults int) []Entry {
	if maxResults <= 0 {
		return nil
	}
	lowered := strings.ToLower(context)

	type scored struct {
		entry Entry
		score int
	}
	var hits []scored
	for _, e := range Library {
		score := 0
		for _, kw := range e.Keywords {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{entry: e, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}
	out := make([]Entry, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.entry)
	}
	return out
}

// Library is the static lore corpus. A production system would swap
// this for a vector store; keyword scoring is enough at this scale.
var Library = []Entry{
	{
		ID:       "origin_survivor",
		Keywords: []string{"nameless survivor", "survivor", "nameless"},
		Content:  "The Nameless Survivor has no glorious past. They are persistence made flesh, a silent shadow picking through the rubble for scraps of life. Every scar on their body is the story of a death dodged by a hair's breadth.",
	},
	{
		ID:       "origin_scholar",
		Keywords: []string{"outcast scholar", "scholar", "book", "knowledge"},
		Content:  "The Outcast Scholar once sought knowledge in safe libraries, but fell into forbidden texts. They witnessed truths no ordinary mind can bear, and were cast out by their own academy for their dangerous curiosity.",
	},
	{
		ID:       "origin_knight",
		Keywords: []string{"fallen knight", "knight", "oath"},
		Content:  "A Fallen Knight carries the weight of a broken oath. The glow of honor has gone out, leaving only rusted plate and a cracked sword. They wander not for glory, but for redemption or a worthy death.",
	},
	{
		ID:       "item_rusted_dagger",
		Keywords: []string{"rusted dagger", "dagger"},
		Content:  "This dagger belonged to someone once, but now it is an ownerless sliver of metal. The rust along its edge is a reminder that everything in these ruins decays.",
	},
	{
		ID:       "item_torn_cloth",
		Keywords: []string{"torn cloth", "cloth"},
		Content:  "A scrap of torn cloth, perhaps once part of a garment or a banner. Its only use now is binding wounds, a small hope amid despair.",
	},
	{
		ID:       "item_broken_iron_armor",
		Keywords: []string{"broken iron armor", "iron armor", "armor"},
		Content:  "This armor has absorbed countless blows. The dents and cracks across its surface tell the story of one final, losing battle.",
	},
	{
		ID:       "item_cracked_longsword",
		Keywords: []string{"cracked longsword", "longsword", "sword"},
		Content:  "This longsword has seen many battles, and the cracks along its blade prove it. Though far from whole, it remains a fearsome weapon in skilled hands.",
	},
	{
		ID:       "deity_gro_goroth",
		Keywords: []string{"gro-goroth", "destruction", "torture"},
		Content:  "Gro-goroth, god of destruction and endless pain. His devotees believe purification comes only through utmost agony and total erasure. Their rites tend toward self-mutilation and blood sacrifice.",
	},
	{
		ID:       "deity_sylvian",
		Keywords: []string{"sylvian", "love", "fertility", "nature"},
		Content:  "Sylvian, goddess of love, fertility and nature. She is a force of life, but in a rotting world that life often takes twisted, aberrant shapes. Her gardens are as beautiful as they are lethal.",
	},
	{
		ID:       "deity_alll_mer",
		Keywords: []string{"alll-mer", "all-mer", "light", "order"},
		Content:  "Alll-mer, the ascended god of humankind, stands for order, light and hope. Yet his absence has left a void, and his faithful grow ever more extreme and merciless in their effort to preserve his legacy.",
	},
	{
		ID:       "location_ruins",
		Keywords: []string{"ruins", "wreckage"},
		Content:  "These ruins are the grave of a civilization that withered away. The air hangs thick with the smell of death and despair. Every stone is steeped in tragedy and lingering curses.",
	},
}
