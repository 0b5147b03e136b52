package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
)

// Services groups the use cases the handler dispatches to.
type Services struct {
	Profiles   ProfileService
	Catalog    CatalogService
	WordLists  WordListService
	Flashcards FlashcardService
	Sentences  SentenceService
}

// Options tunes the polling loop.
type Options struct {
	PollTimeout    int // seconds
	HandshakeRetry time.Duration
	ErrorBackoff   time.Duration
}

type Handler struct {
	bot        BotAPI
	logger     *zap.Logger
	profiles   ProfileService
	catalog    CatalogService
	wordLists  WordListService
	flashcards FlashcardService
	sentences  SentenceService
	chats      ChatStore
	opts       Options
	steps      map[entities.DialogStep]stepHandler
}

func NewHandler(bot BotAPI, logger *zap.Logger, services Services, chats ChatStore, opts Options) *Handler {
	if opts.HandshakeRetry <= 0 {
		opts.HandshakeRetry = 5 * time.Second
	}
	if opts.ErrorBackoff <= 0 {
		opts.ErrorBackoff = time.Second
	}

	h := &Handler{
		bot:        bot,
		logger:     logger,
		profiles:   services.Profiles,
		catalog:    services.Catalog,
		wordLists:  services.WordLists,
		flashcards: services.Flashcards,
		sentences:  services.Sentences,
		chats:      chats,
		opts:       opts,
	}
	h.steps = h.stepTable()

	return h
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

// locale returns the catalog matching the chat's native language.
func (h *Handler) locale(ctx context.Context, chatID int64) *texts {
	p, err := h.profiles.Get(ctx, chatID)
	if err != nil {
		return textsFor("")
	}
	return textsFor(p.NativeLanguage)
}
