package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres"
)

// WordListRepository stores (chat, word) associations of one personal list.
type WordListRepository struct {
	db    postgres.DBTX
	table string
}

// NewUnknownWordRepository returns the repository of words a user failed to translate.
func NewUnknownWordRepository(db postgres.DBTX) *WordListRepository {
	return &WordListRepository{db: db, table: "unknown_words"}
}

// NewFavoriteWordRepository returns the repository of words a user starred.
func NewFavoriteWordRepository(db postgres.DBTX) *WordListRepository {
	return &WordListRepository{db: db, table: "favorite_words"}
}

// Add inserts the association unless it already exists.
// It reports whether a new row was created.
func (r *WordListRepository) Add(ctx context.Context, chatID, wordID int64) (bool, error) {
	query, args, err := psql.Insert(r.table).
		Columns("chat_id", "word_id").
		Values(chatID, wordID).
		Suffix("ON CONFLICT (chat_id, word_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build add %s: %w", r.table, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, ErrWordNotFound
		}
		return false, fmt.Errorf("add %s: %w", r.table, err)
	}

	return tag.RowsAffected() == 1, nil
}

// Remove deletes the association. It reports whether a row was deleted.
func (r *WordListRepository) Remove(ctx context.Context, chatID, wordID int64) (bool, error) {
	query, args, err := psql.Delete(r.table).
		Where(sq.Eq{"chat_id": chatID, "word_id": wordID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build remove %s: %w", r.table, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("remove %s: %w", r.table, err)
	}

	return tag.RowsAffected() > 0, nil
}

// Clear deletes every association of the chat and returns how many were removed.
func (r *WordListRepository) Clear(ctx context.Context, chatID int64) (int64, error) {
	query, args, err := psql.Delete(r.table).
		Where(sq.Eq{"chat_id": chatID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build clear %s: %w", r.table, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("clear %s: %w", r.table, err)
	}

	return tag.RowsAffected(), nil
}

// List returns the chat's entries in the order they were added.
func (r *WordListRepository) List(ctx context.Context, chatID int64) ([]entities.WordListEntry, error) {
	query, args, err := r.selectEntries().
		Where(sq.Eq{"l.chat_id": chatID}).
		OrderBy("l.added_at", "w.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", r.table, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.WordListEntry, error) {
		return scanEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", r.table, err)
	}

	return entries, nil
}

// Find returns a single entry of the chat.
func (r *WordListRepository) Find(ctx context.Context, chatID, wordID int64) (*entities.WordListEntry, error) {
	query, args, err := r.selectEntries().
		Where(sq.Eq{"l.chat_id": chatID, "l.word_id": wordID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find %s: %w", r.table, err)
	}

	entry, err := scanEntry(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("find %s: %w", r.table, err)
	}

	return &entry, nil
}

func (r *WordListRepository) selectEntries() sq.SelectBuilder {
	return psql.Select(
		"l.chat_id", "l.added_at",
		"w.id", "w.word", "w.transcription", "w.translation", "w.level", "w.lang",
	).
		From(r.table + " l").
		Join("words w ON w.id = l.word_id")
}

func scanEntry(row pgx.Row) (entities.WordListEntry, error) {
	var (
		e           entities.WordListEntry
		level, lang string
	)
	err := row.Scan(
		&e.ChatID,
		&e.AddedAt,
		&e.Item.ID,
		&e.Item.Word,
		&e.Item.Transcription,
		&e.Item.Translation,
		&level,
		&lang,
	)
	if err != nil {
		return e, err
	}
	e.Item.Level = entities.Level(level)
	e.Item.Language = entities.Language(lang)
	return e, nil
}
