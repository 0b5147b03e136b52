package entities

import "strings"

// VocabularyItem is a catalog word with its translation into the learner's native language.
type VocabularyItem struct {
	ID            int64
	Word          string
	Transcription string
	Translation   string // comma-separated alternatives
	Level         Level
	Language      Language
}

// Accepts reports whether answer equals any of the translation alternatives,
// ignoring case and surrounding whitespace.
func (v VocabularyItem) Accepts(answer string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}
	for _, alt := range strings.Split(v.Translation, ",") {
		if strings.EqualFold(strings.TrimSpace(alt), answer) {
			return true
		}
	}
	return false
}

// PracticeSentence is a sentence stored together with its shuffle-able tokens.
type PracticeSentence struct {
	ID              int64
	Words           string // tokens separated by commas
	CorrectSentence string
	Level           Level
	Language        Language
}

// Tokens splits Words into trimmed, non-empty tokens in stored order.
func (s PracticeSentence) Tokens() []string {
	parts := strings.Split(s.Words, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// Matches reports whether answer is the canonical sentence after trimming and case folding.
func (s PracticeSentence) Matches(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(s.CorrectSentence))
}
