package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/pagination"
	"github.com/aliskhannn/language-teacher-bot/internal/service"
)

// buttonsPerRow is the width of rows of numbered inline buttons.
const buttonsPerRow = 5

func replyKeyboard(rows ...[]string) tgbotapi.ReplyKeyboardMarkup {
	kbRows := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		kbRows = append(kbRows, lo.Map(row, func(label string, _ int) tgbotapi.KeyboardButton {
			return tgbotapi.NewKeyboardButton(label)
		}))
	}

	kb := tgbotapi.NewReplyKeyboard(kbRows...)
	kb.ResizeKeyboard = true
	return kb
}

func withKeyboard(msg tgbotapi.MessageConfig, kb tgbotapi.ReplyKeyboardMarkup) tgbotapi.MessageConfig {
	msg.ReplyMarkup = kb
	return msg
}

func withRemovedKeyboard(msg tgbotapi.MessageConfig) tgbotapi.MessageConfig {
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	return msg
}

func buildLanguageKeyboard(langs ...entities.Language) tgbotapi.ReplyKeyboardMarkup {
	return replyKeyboard(lo.Map(langs, func(l entities.Language, _ int) string {
		return languageLabels[l]
	}))
}

// buildLevelKeyboard lays the levels out in pairs and appends extra rows.
func buildLevelKeyboard(extra ...[]string) tgbotapi.ReplyKeyboardMarkup {
	labels := lo.Map(entities.Levels, func(l entities.Level, _ int) string { return l.String() })
	rows := append(lo.Chunk(labels, 2), extra...)
	return replyKeyboard(rows...)
}

func buildMainMenuKeyboard(t *texts) tgbotapi.ReplyKeyboardMarkup {
	return replyKeyboard(
		[]string{t.label(cmdGames), t.label(cmdDictionary)},
		[]string{t.label(cmdMyWords), t.label(cmdSettings)},
	)
}

func buildGamesKeyboard(t *texts) tgbotapi.ReplyKeyboardMarkup {
	return replyKeyboard(
		[]string{t.label(cmdFlashcards), t.label(cmdSentences)},
		[]string{t.label(cmdBackToMenu)},
	)
}

func buildFlashcardOptionsKeyboard(t *texts) tgbotapi.ReplyKeyboardMarkup {
	sizes := lo.Map(service.FlashcardSizes, func(n int, _ int) string {
		return fmt.Sprintf(t.sizeLabel, n)
	})

	rows := lo.Chunk(sizes, 3)
	rows = append(rows,
		[]string{t.label(cmdFlashcardAll), t.label(cmdFlashcardMyWords)},
		[]string{t.label(cmdFlashcardTier)},
		[]string{t.label(cmdBackToGames), t.label(cmdBackToMenu)},
	)
	return replyKeyboard(rows...)
}

func buildFlashcardTierKeyboard(t *texts) tgbotapi.ReplyKeyboardMarkup {
	return buildLevelKeyboard(
		[]string{t.label(cmdCurrentTier)},
		[]string{t.label(cmdBackToGames)},
	)
}

func buildCardKeyboard(t *texts) tgbotapi.ReplyKeyboardMarkup {
	return replyKeyboard(
		[]string{t.label(cmdDontKnow), t.label(cmdAddFavorite)},
		[]string{t.label(cmdBackToMenu)},
	)
}

func buildSentenceKeyboard(t *texts) tgbotapi.ReplyKeyboardMarkup {
	return replyKeyboard([]string{t.label(cmdBackToMenu)})
}

func buildDictionaryLevelKeyboard(t *texts) tgbotapi.ReplyKeyboardMarkup {
	return buildLevelKeyboard(
		[]string{t.label(cmdAllLevels)},
		[]string{t.label(cmdBackToMenu)},
	)
}

func buildMyWordsKeyboard(t *texts) tgbotapi.ReplyKeyboardMarkup {
	return replyKeyboard(
		[]string{t.label(cmdUnknownWords), t.label(cmdFavoriteWords)},
		[]string{t.label(cmdBackToMenu)},
	)
}

func buildSettingsKeyboard(t *texts) tgbotapi.ReplyKeyboardMarkup {
	return replyKeyboard(
		[]string{t.label(cmdChangeNative), t.label(cmdChangeTarget)},
		[]string{t.label(cmdChangeLevel), t.label(cmdSentenceRounds)},
		[]string{t.label(cmdBackToMenu)},
	)
}

func buildRoundsKeyboard(t *texts) tgbotapi.ReplyKeyboardMarkup {
	labels := lo.Map(entities.SentenceRoundOptions, func(n int, _ int) string { return strconv.Itoa(n) })
	rows := append(lo.Chunk(labels, 4), []string{t.label(cmdBackToSettings)})
	return replyKeyboard(rows...)
}

// buildPageNavRow returns prev/next buttons for the pages that exist.
func buildPageNavRow[T any](t *texts, page pagination.Page[T], prevData, nextData string) []tgbotapi.InlineKeyboardButton {
	var row []tgbotapi.InlineKeyboardButton
	if page.HasPrev() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(t.prevPage, prevData))
	}
	if page.HasNext() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(t.nextPage, nextData))
	}
	return row
}

// buildNumberedRows makes one button per item, labelled with its number on
// the page, buttonsPerRow to a row.
func buildNumberedRows[T any](
	page pagination.Page[T], icon string, data func(item T) string,
) [][]tgbotapi.InlineKeyboardButton {
	buttons := lo.Map(page.Items, func(item T, i int) tgbotapi.InlineKeyboardButton {
		label := fmt.Sprintf("%s %d", icon, page.Offset+i+1)
		return tgbotapi.NewInlineKeyboardButtonData(label, data(item))
	})
	return lo.Chunk(buttons, buttonsPerRow)
}

func buildDictionaryKeyboard(t *texts, tier entities.Level, page pagination.Page[entities.VocabularyItem]) tgbotapi.InlineKeyboardMarkup {
	rows := buildNumberedRows(page, "⭐", func(item entities.VocabularyItem) string {
		return buildDictionaryFavoriteCallback(tier, page.Index, item.ID)
	})

	nav := buildPageNavRow(t, page,
		buildDictionaryCallback(tier, page.Index-1),
		buildDictionaryCallback(tier, page.Index+1),
	)
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(t.mainMenuButton, buildMenuCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func buildWordListKeyboard(
	t *texts, section entities.WordListSection, page pagination.Page[entities.WordListEntry],
) tgbotapi.InlineKeyboardMarkup {
	rows := buildNumberedRows(page, "🗑", func(e entities.WordListEntry) string {
		return buildDeleteCallback(section, page.Index, e.Item.ID)
	})

	if !page.Empty() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t.deleteAll, buildClearCallback(section)),
		))
	}

	nav := buildPageNavRow(t, page,
		buildWordListCallback(section, page.Index-1),
		buildWordListCallback(section, page.Index+1),
	)
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	switchLabel := t.showFavorites
	if section == entities.SectionFavorites {
		switchLabel = t.showUnknown
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(switchLabel, buildWordListCallback(section.Other(), 0)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t.mainMenuButton, buildMenuCallback()),
		),
	)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
