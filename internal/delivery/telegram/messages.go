// messages.go contains formatting helpers for MarkdownV2 messages.

package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/pagination"
	"github.com/aliskhannn/language-teacher-bot/internal/service"
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

// mdf formats plain text and escapes the result.
func mdf(format string, args ...any) string {
	return md(fmt.Sprintf(format, args...))
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

func formatWordLine(n int, item entities.VocabularyItem) string {
	var sb strings.Builder
	sb.WriteString(md(strconv.Itoa(n) + ". "))
	sb.WriteString(bold(item.Word))
	if item.Transcription != "" {
		sb.WriteString(md(" [" + item.Transcription + "]"))
	}
	sb.WriteString(md(" - " + item.Translation))
	return sb.String()
}

func formatCard(t *texts, card *service.Card) string {
	var sb strings.Builder
	sb.WriteString(mdf(t.cardPrompt, card.Position, card.Total))
	sb.WriteString("\n\n")
	sb.WriteString(bold(card.Item.Word))
	if card.Item.Transcription != "" {
		sb.WriteString(md(" [" + card.Item.Transcription + "]"))
	}
	return sb.String()
}

func formatVerdict(t *texts, out *service.FlashcardOutcome) string {
	var text string
	switch out.Verdict {
	case service.VerdictCorrect:
		text = md(t.correct)
		if out.Graduated {
			text += "\n" + md(t.graduated)
		}
	case service.VerdictWrong:
		text = mdf(t.wrong, out.Item.Translation)
	case service.VerdictUnfamiliar:
		text = mdf(t.unfamiliar, out.Item.Translation)
	case service.VerdictFavorited:
		if out.AlreadyFavorite {
			text = mdf(t.favoriteExists, out.Item.Translation)
		} else {
			text = mdf(t.favoriteAdded, out.Item.Translation)
		}
	}
	return text
}

func formatFlashcardResult(t *texts, sum *service.FlashcardSummary) string {
	text := mdf(t.flashcardResult,
		sum.Correct, sum.Total, sum.Percent, sum.Unfamiliar, seconds(sum.Elapsed),
	)
	if sum.SuggestTest {
		text += "\n\n" + mdf(t.testSuggestion, sum.TestURL)
	}
	return text
}

func formatSentenceRound(t *texts, round service.SentenceRound) string {
	var sb strings.Builder
	sb.WriteString(mdf(t.sentenceRound, round.Number, round.Total))
	sb.WriteString("\n\n")
	sb.WriteString(bold(strings.Join(round.Tokens, " / ")))
	return sb.String()
}

func formatSentenceResult(t *texts, res *entities.SentenceResult) string {
	return mdf(t.sentenceResult, res.Correct, res.Incorrect, seconds(res.Elapsed))
}

func formatDictionaryPage(t *texts, tier entities.Level, page pagination.Page[entities.VocabularyItem]) string {
	tierName := t.allLevels
	if tier != "" {
		tierName = tier.String()
	}

	var sb strings.Builder
	sb.WriteString(bold(fmt.Sprintf(t.dictionaryTitle, tierName, page.Number(), page.TotalPages)))
	sb.WriteString("\n\n")

	if page.Empty() {
		sb.WriteString(md(t.emptyList))
		return sb.String()
	}

	for i, item := range page.Items {
		sb.WriteString(formatWordLine(page.Offset+i+1, item))
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatWordListPage(t *texts, section entities.WordListSection, page pagination.Page[entities.WordListEntry]) string {
	title := t.unknownTitle
	if section == entities.SectionFavorites {
		title = t.favoritesTitle
	}

	var sb strings.Builder
	sb.WriteString(bold(fmt.Sprintf(title, page.Number(), page.TotalPages)))
	sb.WriteString("\n\n")

	if page.Empty() {
		sb.WriteString(md(t.emptyList))
		return sb.String()
	}

	for i, e := range page.Items {
		sb.WriteString(formatWordLine(page.Offset+i+1, e.Item))
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatSettings(t *texts, p *entities.Profile) string {
	return mdf(t.settingsTitle,
		t.languageName(p.NativeLanguage),
		t.languageName(p.TargetLanguage),
		p.Level.String(),
		p.SentenceRounds,
	)
}

func seconds(d time.Duration) int {
	return int(d.Round(time.Second) / time.Second)
}
