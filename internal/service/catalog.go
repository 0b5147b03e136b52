package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres/repository"
)

type CatalogService struct {
	repository CatalogRepository
}

func NewCatalogService(repository CatalogRepository) *CatalogService {
	return &CatalogService{repository: repository}
}

// Dictionary returns the words of one tier, or of every tier when tier is empty.
func (s *CatalogService) Dictionary(ctx context.Context, lang entities.Language, tier entities.Level) ([]entities.VocabularyItem, error) {
	if tier == "" {
		return s.repository.AllWords(ctx, lang)
	}
	if !tier.Valid() {
		return nil, ErrInvalidLevel
	}
	return s.repository.WordsByLevel(ctx, tier, lang)
}

func (s *CatalogService) Word(ctx context.Context, id int64) (*entities.VocabularyItem, error) {
	item, err := s.repository.WordByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWordNotFound) {
			return nil, ErrWordNotFound
		}
		return nil, err
	}
	return item, nil
}

// CatalogFile is the JSON layout accepted by the seed command.
type CatalogFile struct {
	Words []struct {
		Word          string `json:"word"`
		Transcription string `json:"transcription"`
		Translation   string `json:"translation"`
		Level         string `json:"level"`
		Lang          string `json:"lang"`
	} `json:"words"`
	Sentences []struct {
		Words           string `json:"words"`
		CorrectSentence string `json:"correct_sentence"`
		Level           string `json:"level"`
		Language        string `json:"language"`
	} `json:"sentences"`
}

// LoadCatalogFile reads and validates a catalog file.
func LoadCatalogFile(path string) ([]entities.VocabularyItem, []entities.PracticeSentence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog: %w", err)
	}

	var file CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("decode catalog: %w", err)
	}

	words := make([]entities.VocabularyItem, 0, len(file.Words))
	for i, w := range file.Words {
		level, ok := entities.ParseLevel(w.Level)
		if !ok {
			return nil, nil, fmt.Errorf("word %d: %w: %q", i, ErrInvalidLevel, w.Level)
		}
		lang, ok := entities.ParseLanguage(w.Lang)
		if !ok {
			return nil, nil, fmt.Errorf("word %d: %w: %q", i, ErrInvalidLanguage, w.Lang)
		}
		words = append(words, entities.VocabularyItem{
			Word:          w.Word,
			Transcription: w.Transcription,
			Translation:   w.Translation,
			Level:         level,
			Language:      lang,
		})
	}

	sentences := make([]entities.PracticeSentence, 0, len(file.Sentences))
	for i, s := range file.Sentences {
		level, ok := entities.ParseLevel(s.Level)
		if !ok {
			return nil, nil, fmt.Errorf("sentence %d: %w: %q", i, ErrInvalidLevel, s.Level)
		}
		lang, ok := entities.ParseLanguage(s.Language)
		if !ok {
			return nil, nil, fmt.Errorf("sentence %d: %w: %q", i, ErrInvalidLanguage, s.Language)
		}
		sentences = append(sentences, entities.PracticeSentence{
			Words:           s.Words,
			CorrectSentence: s.CorrectSentence,
			Level:           level,
			Language:        lang,
		})
	}

	return words, sentences, nil
}

// CatalogImporter writes a catalog in a single transaction.
type CatalogImporter struct {
	tx        Transactor
	newWriter func(db postgres.DBTX) CatalogWriter
}

func NewCatalogImporter(tx Transactor, newWriter func(db postgres.DBTX) CatalogWriter) *CatalogImporter {
	return &CatalogImporter{tx: tx, newWriter: newWriter}
}

// Import stores words and sentences and returns how many of each were inserted.
func (i *CatalogImporter) Import(
	ctx context.Context, words []entities.VocabularyItem, sentences []entities.PracticeSentence,
) (int64, int64, error) {
	var nWords, nSentences int64

	err := i.tx.WithinTx(ctx, func(ctx context.Context, db postgres.DBTX) error {
		w := i.newWriter(db)

		var err error
		if nWords, err = w.InsertWords(ctx, words); err != nil {
			return err
		}
		if nSentences, err = w.InsertSentences(ctx, sentences); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("import catalog: %w", err)
	}

	return nWords, nSentences, nil
}
