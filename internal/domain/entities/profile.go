package entities

import "time"

const DefaultSentenceRounds = 5

// SentenceRoundOptions are the allowed sentence game lengths.
var SentenceRoundOptions = []int{5, 10, 15, 20, 25, 30, 40}

// Profile is a registered bot user keyed by chat id.
type Profile struct {
	ChatID         int64
	FirstName      string
	LastName       string
	NativeLanguage Language // empty until chosen
	TargetLanguage Language // empty until chosen
	Level          Level    // empty until chosen
	SentenceRounds int
	RegisteredAt   time.Time
	LastActivityAt time.Time
}

// NewProfile creates a blank profile with default settings.
func NewProfile(chatID int64, firstName, lastName string) *Profile {
	now := time.Now().UTC()
	return &Profile{
		ChatID:         chatID,
		FirstName:      firstName,
		LastName:       lastName,
		SentenceRounds: DefaultSentenceRounds,
		RegisteredAt:   now,
		LastActivityAt: now,
	}
}

// Complete reports whether onboarding has finished.
func (p *Profile) Complete() bool {
	return p.NativeLanguage.Valid() && p.TargetLanguage.Valid() && p.Level.Valid()
}

// ValidSentenceRounds reports whether n is one of SentenceRoundOptions.
func ValidSentenceRounds(n int) bool {
	for _, v := range SentenceRoundOptions {
		if v == n {
			return true
		}
	}
	return false
}
