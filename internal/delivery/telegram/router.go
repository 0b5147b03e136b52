package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
)

// request is one incoming text message.
type request struct {
	chatID int64
	text   string
	in     input
	from   *tgbotapi.User
}

type stepHandler func(ctx context.Context, req request) error

func (h *Handler) stepTable() map[entities.DialogStep]stepHandler {
	return map[entities.DialogStep]stepHandler{
		entities.StepStart:                     h.onStart,
		entities.StepAwaitingNativeLanguage:    h.onNativeLanguage,
		entities.StepAwaitingTargetLanguage:    h.onTargetLanguage,
		entities.StepAwaitingLevel:             h.onLevel,
		entities.StepInMenu:                    h.onMenu,
		entities.StepInGames:                   h.onGames,
		entities.StepInFlashcardOptions:        h.onFlashcardOptions,
		entities.StepAwaitingFlashcardTier:     h.onFlashcardTier,
		entities.StepInDictionary:              h.onDictionary,
		entities.StepInMyWords:                 h.onMyWords,
		entities.StepInSettings:                h.onSettings,
		entities.StepAwaitingNewNativeLanguage: h.onNewNativeLanguage,
		entities.StepAwaitingNewTargetLanguage: h.onNewTargetLanguage,
		entities.StepAwaitingNewLevel:          h.onNewLevel,
		entities.StepAwaitingSentenceRounds:    h.onSentenceRounds,
	}
}

// handleMessage dispatches a text message. Returning to the menu and
// /start work from anywhere. Otherwise an active game takes the input,
// and only then the dialog step decides.
func (h *Handler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	req := request{
		chatID: msg.Chat.ID,
		text:   strings.TrimSpace(msg.Text),
		from:   msg.From,
	}
	req.in = resolve(req.text)

	_ = h.withErrorHandling(func(ctx context.Context, chatID int64) error {
		return h.dispatch(ctx, req)
	})(ctx, req.chatID)
}

func (h *Handler) dispatch(ctx context.Context, req request) error {
	if req.in.cmd == cmdBackToMenu {
		return h.backToMenu(ctx, req.chatID)
	}
	if isStartCommand(req.text) {
		return h.onStart(ctx, req)
	}

	view := h.chats.View(req.chatID)
	switch {
	case view.Flashcard != nil:
		return h.onFlashcardInput(ctx, req)
	case view.Sentence != nil:
		return h.onSentenceInput(ctx, req)
	}

	handler, ok := h.steps[view.Step]
	if !ok {
		h.logger.Warn("no handler for dialog step",
			zap.Int64("chat_id", req.chatID),
			zap.Stringer("step", view.Step),
		)
		return h.onStart(ctx, req)
	}
	return handler(ctx, req)
}

func isStartCommand(text string) bool {
	cmd, _, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return cmd == "/start"
}
