package entities

// DialogStep is the current conversation step of a chat.
type DialogStep int

const (
	StepStart DialogStep = iota
	StepAwaitingNativeLanguage
	StepAwaitingTargetLanguage
	StepAwaitingLevel
	StepInMenu
	StepInGames
	StepInFlashcardOptions
	StepAwaitingFlashcardTier
	StepInMyWords
	StepInSettings
	StepInDictionary
	StepAwaitingNewNativeLanguage
	StepAwaitingNewTargetLanguage
	StepAwaitingNewLevel
	StepAwaitingSentenceRounds
)

var stepNames = map[DialogStep]string{
	StepStart:                     "start",
	StepAwaitingNativeLanguage:    "awaiting_native_language",
	StepAwaitingTargetLanguage:    "awaiting_target_language",
	StepAwaitingLevel:             "awaiting_level",
	StepInMenu:                    "in_menu",
	StepInGames:                   "in_games",
	StepInFlashcardOptions:        "in_flashcard_options",
	StepAwaitingFlashcardTier:     "awaiting_flashcard_tier",
	StepInMyWords:                 "in_my_words",
	StepInSettings:                "in_settings",
	StepInDictionary:              "in_dictionary",
	StepAwaitingNewNativeLanguage: "awaiting_new_native_language",
	StepAwaitingNewTargetLanguage: "awaiting_new_target_language",
	StepAwaitingNewLevel:          "awaiting_new_level",
	StepAwaitingSentenceRounds:    "awaiting_sentence_rounds",
}

func (s DialogStep) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}
