package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs a failed handler and tells the user about it.
// A missing profile resets the chat so that /start begins onboarding again.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		if err == nil {
			return nil
		}

		t := h.locale(ctx, chatID)
		if errors.Is(err, service.ErrProfileNotFound) {
			h.chats.EndGames(chatID)
			h.chats.SetStep(chatID, entities.StepStart)
			h.send(withRemovedKeyboard(newMessage(chatID, md(t.restart))))
			return nil
		}

		h.logger.Error("handle error",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.send(newMessage(chatID, md(t.internalError)))
		return nil
	}
}
