package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres"
)

// insertBatchSize keeps multi-row inserts well below the bind parameter limit.
const insertBatchSize = 1000

var (
	wordColumns     = []string{"id", "word", "transcription", "translation", "level", "lang"}
	sentenceColumns = []string{"id", "words", "correct_sentence", "level", "language"}
)

// CatalogRepository reads the leveled vocabulary and practice sentences.
type CatalogRepository struct {
	db postgres.DBTX
}

func NewCatalogRepository(db postgres.DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// WordsAtLevelUpTo returns words of every tier from A1 up to level inclusive.
func (r *CatalogRepository) WordsAtLevelUpTo(ctx context.Context, level entities.Level, lang entities.Language) ([]entities.VocabularyItem, error) {
	q := psql.Select(wordColumns...).
		From("words").
		Where(sq.Eq{"lang": string(lang), "level": levelStrings(level.UpTo())}).
		OrderBy("id")

	return r.queryWords(ctx, q, "words up to level")
}

// WordsByLevel returns words of exactly one tier.
func (r *CatalogRepository) WordsByLevel(ctx context.Context, level entities.Level, lang entities.Language) ([]entities.VocabularyItem, error) {
	q := psql.Select(wordColumns...).
		From("words").
		Where(sq.Eq{"lang": string(lang), "level": string(level)}).
		OrderBy("id")

	return r.queryWords(ctx, q, "words by level")
}

func (r *CatalogRepository) AllWords(ctx context.Context, lang entities.Language) ([]entities.VocabularyItem, error) {
	q := psql.Select(wordColumns...).
		From("words").
		Where(sq.Eq{"lang": string(lang)}).
		OrderBy("id")

	return r.queryWords(ctx, q, "all words")
}

func (r *CatalogRepository) WordByID(ctx context.Context, id int64) (*entities.VocabularyItem, error) {
	query, args, err := psql.Select(wordColumns...).
		From("words").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word by id: %w", err)
	}

	item, err := scanWord(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWordNotFound
		}
		return nil, fmt.Errorf("get word: %w", err)
	}

	return &item, nil
}

// SentencesAtLevelUpTo returns sentences of every tier from A1 up to level inclusive.
func (r *CatalogRepository) SentencesAtLevelUpTo(ctx context.Context, level entities.Level, lang entities.Language) ([]entities.PracticeSentence, error) {
	query, args, err := psql.Select(sentenceColumns...).
		From("sentences").
		Where(sq.Eq{"language": string(lang), "level": levelStrings(level.UpTo())}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sentences query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sentences: %w", err)
	}

	sentences, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.PracticeSentence, error) {
		var (
			s               entities.PracticeSentence
			level, language string
		)
		if err := row.Scan(&s.ID, &s.Words, &s.CorrectSentence, &level, &language); err != nil {
			return s, err
		}
		s.Level = entities.Level(level)
		s.Language = entities.Language(language)
		return s, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan sentences: %w", err)
	}

	return sentences, nil
}

// InsertWords stores words and returns how many rows were inserted.
func (r *CatalogRepository) InsertWords(ctx context.Context, items []entities.VocabularyItem) (int64, error) {
	var inserted int64
	for _, batch := range lo.Chunk(items, insertBatchSize) {
		q := psql.Insert("words").Columns("word", "transcription", "translation", "level", "lang")
		for _, it := range batch {
			q = q.Values(it.Word, it.Transcription, it.Translation, string(it.Level), string(it.Language))
		}

		query, args, err := q.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("build insert words: %w", err)
		}

		tag, err := r.db.Exec(ctx, query, args...)
		if err != nil {
			return inserted, fmt.Errorf("insert words: %w", err)
		}
		inserted += tag.RowsAffected()
	}

	return inserted, nil
}

// InsertSentences stores sentences and returns how many rows were inserted.
func (r *CatalogRepository) InsertSentences(ctx context.Context, sentences []entities.PracticeSentence) (int64, error) {
	var inserted int64
	for _, batch := range lo.Chunk(sentences, insertBatchSize) {
		q := psql.Insert("sentences").Columns("words", "correct_sentence", "level", "language")
		for _, s := range batch {
			q = q.Values(s.Words, s.CorrectSentence, string(s.Level), string(s.Language))
		}

		query, args, err := q.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("build insert sentences: %w", err)
		}

		tag, err := r.db.Exec(ctx, query, args...)
		if err != nil {
			return inserted, fmt.Errorf("insert sentences: %w", err)
		}
		inserted += tag.RowsAffected()
	}

	return inserted, nil
}

func (r *CatalogRepository) queryWords(ctx context.Context, q sq.SelectBuilder, what string) ([]entities.VocabularyItem, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", what, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", what, err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.VocabularyItem, error) {
		return scanWord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", what, err)
	}

	return items, nil
}

func scanWord(row pgx.Row) (entities.VocabularyItem, error) {
	var (
		item        entities.VocabularyItem
		level, lang string
	)
	if err := row.Scan(&item.ID, &item.Word, &item.Transcription, &item.Translation, &level, &lang); err != nil {
		return item, err
	}
	item.Level = entities.Level(level)
	item.Language = entities.Language(lang)
	return item, nil
}

func levelStrings(levels []entities.Level) []string {
	return lo.Map(levels, func(l entities.Level, _ int) string { return string(l) })
}
