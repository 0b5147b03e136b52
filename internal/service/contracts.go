package service

import (
	"context"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres"
)

type ProfileRepository interface {
	Get(ctx context.Context, chatID int64) (*entities.Profile, error)
	Save(ctx context.Context, p *entities.Profile) (bool, error)
}

type CatalogRepository interface {
	WordsAtLevelUpTo(ctx context.Context, level entities.Level, lang entities.Language) ([]entities.VocabularyItem, error)
	WordsByLevel(ctx context.Context, level entities.Level, lang entities.Language) ([]entities.VocabularyItem, error)
	AllWords(ctx context.Context, lang entities.Language) ([]entities.VocabularyItem, error)
	WordByID(ctx context.Context, id int64) (*entities.VocabularyItem, error)
	SentencesAtLevelUpTo(ctx context.Context, level entities.Level, lang entities.Language) ([]entities.PracticeSentence, error)
}

// CatalogWriter is the write side of the catalog used by the importer.
type CatalogWriter interface {
	InsertWords(ctx context.Context, items []entities.VocabularyItem) (int64, error)
	InsertSentences(ctx context.Context, sentences []entities.PracticeSentence) (int64, error)
}

// WordListRepository stores one personal word list.
type WordListRepository interface {
	Add(ctx context.Context, chatID, wordID int64) (bool, error)
	Remove(ctx context.Context, chatID, wordID int64) (bool, error)
	Clear(ctx context.Context, chatID int64) (int64, error)
	List(ctx context.Context, chatID int64) ([]entities.WordListEntry, error)
	Find(ctx context.Context, chatID, wordID int64) (*entities.WordListEntry, error)
}

type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx postgres.DBTX) error) error
}

// RoundPresenter shows a sentence round that was scheduled after a delay.
type RoundPresenter interface {
	PresentSentenceRound(chatID int64, round SentenceRound)
}
