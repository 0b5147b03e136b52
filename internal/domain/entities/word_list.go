package entities

import "time"

// WordListSection names one of the personal word lists.
type WordListSection string

const (
	SectionUnknown   WordListSection = "unknown"
	SectionFavorites WordListSection = "favorites"
)

func (s WordListSection) Valid() bool {
	return s == SectionUnknown || s == SectionFavorites
}

// Other returns the opposite section.
func (s WordListSection) Other() WordListSection {
	if s == SectionUnknown {
		return SectionFavorites
	}
	return SectionUnknown
}

// WordListEntry associates a chat with a catalog word. Unique per (ChatID, Item.ID).
type WordListEntry struct {
	ChatID  int64
	Item    VocabularyItem
	AddedAt time.Time
}
