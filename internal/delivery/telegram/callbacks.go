package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
)

// callbackResult is what a callback handler wants shown: an edited page
// (when text is set) and a short notice on the button press.
type callbackResult struct {
	text  string
	kb    *tgbotapi.InlineKeyboardMarkup
	toast string
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	var (
		res callbackResult
		err error
	)

	switch data.Action {
	case actionDictionary:
		res, err = h.dictionaryPageCallback(ctx, chatID, data)
	case actionFavorite:
		res, err = h.favoriteCallback(ctx, chatID, data)
	case actionWordList:
		res, err = h.wordListPageCallback(ctx, chatID, data)
	case actionDelete:
		res, err = h.deleteCallback(ctx, chatID, data)
	case actionClear:
		res, err = h.clearCallback(ctx, chatID, data)
	case actionMenu:
		err = h.backToMenu(ctx, chatID)
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
	}

	if errors.Is(err, errBadCallback) {
		h.logger.Warn("malformed callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}
	if err != nil {
		// The button press is still acknowledged so the client stops spinning.
		h.answerCallback(cb.ID, "")
		_ = h.withErrorHandling(func(context.Context, int64) error { return err })(ctx, chatID)
		return
	}

	if res.text != "" {
		edit := newEdit(chatID, cb.Message.MessageID, res.text)
		edit.ReplyMarkup = res.kb
		h.send(edit)
	}

	// Remove the user's "clock".
	h.answerCallback(cb.ID, res.toast)
}

func (h *Handler) dictionaryPageCallback(ctx context.Context, chatID int64, data callbackData) (callbackResult, error) {
	tier, err := data.tierParam(0)
	if err != nil {
		return callbackResult{}, err
	}
	page, err := data.intParam(1)
	if err != nil {
		return callbackResult{}, err
	}

	text, kb, err := h.renderDictionary(ctx, chatID, tier, page)
	if err != nil {
		return callbackResult{}, err
	}
	return callbackResult{text: text, kb: &kb}, nil
}

// favoriteCallback stars a dictionary word. The page itself does not change.
func (h *Handler) favoriteCallback(ctx context.Context, chatID int64, data callbackData) (callbackResult, error) {
	wordID, err := data.idParam(2)
	if err != nil {
		return callbackResult{}, err
	}

	created, err := h.wordLists.Add(ctx, entities.SectionFavorites, chatID, wordID)
	if err != nil {
		return callbackResult{}, err
	}

	t := h.locale(ctx, chatID)
	if created {
		return callbackResult{toast: t.addedToFavorites}, nil
	}
	return callbackResult{toast: t.alreadyInFavorites}, nil
}

func (h *Handler) wordListPageCallback(ctx context.Context, chatID int64, data callbackData) (callbackResult, error) {
	section, err := data.sectionParam(0)
	if err != nil {
		return callbackResult{}, err
	}
	page, err := data.intParam(1)
	if err != nil {
		return callbackResult{}, err
	}

	h.chats.SetStep(chatID, entities.StepInMyWords)
	text, kb, err := h.renderWordList(ctx, chatID, section, page)
	if err != nil {
		return callbackResult{}, err
	}
	return callbackResult{text: text, kb: &kb}, nil
}

func (h *Handler) deleteCallback(ctx context.Context, chatID int64, data callbackData) (callbackResult, error) {
	section, err := data.sectionParam(0)
	if err != nil {
		return callbackResult{}, err
	}
	page, err := data.intParam(1)
	if err != nil {
		return callbackResult{}, err
	}
	wordID, err := data.idParam(2)
	if err != nil {
		return callbackResult{}, err
	}

	if _, err := h.wordLists.Remove(ctx, section, chatID, wordID); err != nil {
		return callbackResult{}, err
	}

	text, kb, err := h.renderWordList(ctx, chatID, section, page)
	if err != nil {
		return callbackResult{}, err
	}
	return callbackResult{text: text, kb: &kb, toast: h.locale(ctx, chatID).deleted}, nil
}

func (h *Handler) clearCallback(ctx context.Context, chatID int64, data callbackData) (callbackResult, error) {
	section, err := data.sectionParam(0)
	if err != nil {
		return callbackResult{}, err
	}

	if _, err := h.wordLists.Clear(ctx, section, chatID); err != nil {
		return callbackResult{}, err
	}

	text, kb, err := h.renderWordList(ctx, chatID, section, 0)
	if err != nil {
		return callbackResult{}, err
	}
	return callbackResult{text: text, kb: &kb, toast: h.locale(ctx, chatID).cleared}, nil
}
