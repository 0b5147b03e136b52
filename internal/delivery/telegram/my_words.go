package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/pagination"
	"github.com/aliskhannn/language-teacher-bot/internal/storage"
)

func (h *Handler) onMyWords(ctx context.Context, req request) error {
	var section entities.WordListSection
	switch req.in.cmd {
	case cmdUnknownWords:
		section = entities.SectionUnknown
	case cmdFavoriteWords:
		section = entities.SectionFavorites
	default:
		t := h.locale(ctx, req.chatID)
		h.send(withKeyboard(newMessage(req.chatID, md(t.unknownCommand)), buildMyWordsKeyboard(t)))
		return nil
	}

	text, kb, err := h.renderWordList(ctx, req.chatID, section, 0)
	if err != nil {
		return err
	}

	msg := newMessage(req.chatID, text)
	msg.ReplyMarkup = kb
	h.send(msg)
	return nil
}

// renderWordList builds one page of a personal word list. The page index is
// clamped, so re-rendering after a deletion on the last page shows the new
// last page.
func (h *Handler) renderWordList(
	ctx context.Context, chatID int64, section entities.WordListSection, index int,
) (string, tgbotapi.InlineKeyboardMarkup, error) {
	t := h.locale(ctx, chatID)

	entries, err := h.wordLists.List(ctx, section, chatID)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	page := pagination.Paginate(entries, index, pagination.DefaultPageSize)
	_ = h.chats.Update(chatID, func(c *storage.ChatContext) error {
		c.MyWords = storage.WordListCursor{Section: section, Page: page.Index}
		return nil
	})

	return formatWordListPage(t, section, page), buildWordListKeyboard(t, section, page), nil
}
