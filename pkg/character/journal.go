package character

// Journal categories. The narrator may write to any of these; entries are
// de-duplicated by title within a category.
const (
	JournalQuests     = "quests"
	JournalLore       = "lore"
	JournalCharacters = "characters"
	JournalBestiary   = "bestiary"
)

// JournalEntry is one append-only record in a journal category.
type JournalEntry struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Journal maps category name to its ordered entries.
type Journal map[string][]JournalEntry

// NewJournal returns an empty journal with all standard categories present.
func NewJournal() Journal {
	return Journal{
		JournalQuests:     {},
		JournalLore:       {},
		JournalCharacters: {},
		JournalBestiary:   {},
	}
}

// HasEntry reports whether an entry with the given title already exists in
// the category.
func (j Journal) HasEntry(category, title string) bool {
	for _, e := range j[category] {
		if e.Title == title {
			return true
		}
	}
	return false
}
