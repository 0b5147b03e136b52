package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/service"
)

// command identifies a reply-keyboard action independently of the label
// shown to the user.
type command int

const (
	cmdNone command = iota
	cmdBackToMenu
	cmdGames
	cmdDictionary
	cmdMyWords
	cmdSettings
	cmdFlashcards
	cmdSentences
	cmdFlashcardSize
	cmdFlashcardAll
	cmdFlashcardMyWords
	cmdFlashcardTier
	cmdCurrentTier
	cmdBackToGames
	cmdLevel
	cmdAllLevels
	cmdLanguage
	cmdUnknownWords
	cmdFavoriteWords
	cmdDontKnow
	cmdAddFavorite
	cmdChangeNative
	cmdChangeTarget
	cmdChangeLevel
	cmdSentenceRounds
	cmdNumber
	cmdBackToSettings
)

// input is a resolved text message.
type input struct {
	cmd   command
	n     int
	level entities.Level
	lang  entities.Language
}

// commandTable maps every label of every locale back to its input.
var commandTable = buildCommandTable()

func buildCommandTable() map[string]input {
	table := make(map[string]input)
	add := func(label string, in input) {
		if prev, ok := table[label]; ok && prev != in {
			panic(fmt.Sprintf("telegram: label %q is bound to two commands", label))
		}
		table[label] = in
	}

	for _, t := range locales {
		for cmd, label := range t.labels {
			add(label, input{cmd: cmd})
		}
		for _, size := range service.FlashcardSizes {
			add(fmt.Sprintf(t.sizeLabel, size), input{cmd: cmdFlashcardSize, n: size})
		}
	}
	for _, lang := range entities.Languages {
		add(languageLabels[lang], input{cmd: cmdLanguage, lang: lang})
	}

	return table
}

// resolve turns message text into an input. Unknown text resolves to cmdNone.
func resolve(text string) input {
	text = strings.TrimSpace(text)

	if in, ok := commandTable[text]; ok {
		return in
	}
	if level, ok := entities.ParseLevel(text); ok {
		return input{cmd: cmdLevel, level: level}
	}
	if n, err := strconv.Atoi(text); err == nil {
		return input{cmd: cmdNumber, n: n}
	}
	return input{cmd: cmdNone}
}
