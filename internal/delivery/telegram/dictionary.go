package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/pagination"
	"github.com/aliskhannn/language-teacher-bot/internal/storage"
)

func (h *Handler) onDictionary(ctx context.Context, req request) error {
	var tier entities.Level
	switch req.in.cmd {
	case cmdLevel:
		tier = req.in.level
	case cmdAllLevels:
	default:
		t := h.locale(ctx, req.chatID)
		h.send(withKeyboard(newMessage(req.chatID, md(t.invalidLevel)), buildDictionaryLevelKeyboard(t)))
		return nil
	}

	text, kb, err := h.renderDictionary(ctx, req.chatID, tier, 0)
	if err != nil {
		return err
	}

	msg := newMessage(req.chatID, text)
	msg.ReplyMarkup = kb
	h.send(msg)
	return nil
}

// renderDictionary builds one page of the dictionary in the user's target
// language and remembers it as the chat's dictionary position.
func (h *Handler) renderDictionary(
	ctx context.Context, chatID int64, tier entities.Level, index int,
) (string, tgbotapi.InlineKeyboardMarkup, error) {
	p, err := h.profiles.Get(ctx, chatID)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}
	t := textsFor(p.NativeLanguage)

	items, err := h.catalog.Dictionary(ctx, p.TargetLanguage, tier)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	page := pagination.Paginate(items, index, pagination.DefaultPageSize)
	_ = h.chats.Update(chatID, func(c *storage.ChatContext) error {
		c.Dictionary = storage.DictionaryCursor{Tier: tier, Page: page.Index}
		return nil
	})

	return formatDictionaryPage(t, tier, page), buildDictionaryKeyboard(t, tier, page), nil
}
