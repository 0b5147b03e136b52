package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/service"
	"github.com/aliskhannn/language-teacher-bot/internal/storage"
)

// BotAPI is the part of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
}

type ProfileService interface {
	Get(ctx context.Context, chatID int64) (*entities.Profile, error)
	Register(ctx context.Context, chatID int64, firstName, lastName string) (*entities.Profile, bool, error)
	SetNativeLanguage(ctx context.Context, chatID int64, lang entities.Language) (*entities.Profile, error)
	SetTargetLanguage(ctx context.Context, chatID int64, lang entities.Language) (*entities.Profile, error)
	ChangeNativeLanguage(ctx context.Context, chatID int64, lang entities.Language) (*entities.Profile, error)
	SetLevel(ctx context.Context, chatID int64, level entities.Level) (*entities.Profile, error)
	SetSentenceRounds(ctx context.Context, chatID int64, rounds int) (*entities.Profile, error)
}

type CatalogService interface {
	Dictionary(ctx context.Context, lang entities.Language, tier entities.Level) ([]entities.VocabularyItem, error)
}

type WordListService interface {
	Add(ctx context.Context, section entities.WordListSection, chatID, wordID int64) (bool, error)
	Remove(ctx context.Context, section entities.WordListSection, chatID, wordID int64) (bool, error)
	Clear(ctx context.Context, section entities.WordListSection, chatID int64) (int64, error)
	List(ctx context.Context, section entities.WordListSection, chatID int64) ([]entities.WordListEntry, error)
}

type FlashcardService interface {
	SelectTier(chatID int64, tier entities.Level) error
	Start(ctx context.Context, chatID int64, size int, onlyUnknown bool) (*service.Card, entities.Level, error)
	Answer(ctx context.Context, chatID int64, in service.FlashcardInput) (*service.FlashcardOutcome, error)
}

type SentenceService interface {
	Start(ctx context.Context, chatID int64) (*service.SentenceRound, error)
	Answer(ctx context.Context, chatID int64, text string) (*service.SentenceOutcome, error)
}

// ChatStore is the per-chat dialog state.
type ChatStore interface {
	View(chatID int64) storage.ChatContext
	Update(chatID int64, fn func(c *storage.ChatContext) error) error
	SetStep(chatID int64, step entities.DialogStep)
	EndGames(chatID int64)
}
