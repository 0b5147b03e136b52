package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres"
)

// ProfileRepository provides access to user profiles in the database.
type ProfileRepository struct {
	db postgres.DBTX
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db postgres.DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Save inserts a new profile or updates an existing one.
// It reports whether a new row was created.
func (r *ProfileRepository) Save(ctx context.Context, p *entities.Profile) (bool, error) {
	query := `
		INSERT INTO profiles (
			chat_id, first_name, last_name, native_language, target_language,
			level, sentence_rounds, registered_at, last_activity_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (chat_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			native_language = EXCLUDED.native_language,
			target_language = EXCLUDED.target_language,
			level = EXCLUDED.level,
			sentence_rounds = EXCLUDED.sentence_rounds,
			last_activity_at = NOW()
		RETURNING (xmax = 0) AS created, last_activity_at
	`

	var created bool
	err := r.db.QueryRow(ctx, query,
		p.ChatID,
		p.FirstName,
		p.LastName,
		string(p.NativeLanguage),
		string(p.TargetLanguage),
		string(p.Level),
		p.SentenceRounds,
		p.RegisteredAt,
	).Scan(&created, &p.LastActivityAt)
	if err != nil {
		return false, fmt.Errorf("save profile: %w", err)
	}

	return created, nil
}

// Get retrieves a profile by chat ID.
func (r *ProfileRepository) Get(ctx context.Context, chatID int64) (*entities.Profile, error) {
	query := `
		SELECT chat_id, first_name, last_name, native_language, target_language,
		       level, sentence_rounds, registered_at, last_activity_at
		FROM profiles
		WHERE chat_id = $1
	`

	var (
		p                     entities.Profile
		native, target, level string
	)
	err := r.db.QueryRow(ctx, query, chatID).Scan(
		&p.ChatID,
		&p.FirstName,
		&p.LastName,
		&native,
		&target,
		&level,
		&p.SentenceRounds,
		&p.RegisteredAt,
		&p.LastActivityAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	p.NativeLanguage = entities.Language(native)
	p.TargetLanguage = entities.Language(target)
	p.Level = entities.Level(level)

	return &p, nil
}
