package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"spiral-oracle/internal/domain"
)

// EntryRepository persiste entradas de diario ya evaluadas.
// Los snapshots de scores se guardan como jsonb.
type EntryRepository interface {
	Create(ctx context.Context, entry domain.JournalEntry) error
	GetByID(ctx context.Context, id string) (domain.JournalEntry, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error)
	ListBySession(ctx context.Context, sessionID string) ([]domain.JournalEntry, error)
}

type PgEntryRepository struct {
	pool *pgxpool.Pool
}

func NewPgEntryRepository(pool *pgxpool.Pool) *PgEntryRepository {
	return &PgEntryRepository{pool: pool}
}

func (r *PgEntryRepository) Create(ctx context.Context, entry domain.JournalEntry) error {
	attention, err := json.Marshal(entry.AttentionScores)
	if err != nil {
		return fmt.Errorf("marshal attention scores: %w", err)
	}
	liminal, err := json.Marshal(entry.LiminalScores)
	if err != nil {
		return fmt.Errorf("marshal liminal scores: %w", err)
	}

	const query = `
		INSERT INTO journal_entries (
			id, user_id, session_id, content, element, attention_scores, attention_mode, liminal_scores, liminal_mode, guidance, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	var sessionID interface{}
	if entry.SessionID != "" {
		sessionID = entry.SessionID
	}

	_, err = r.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		sessionID,
		entry.Content,
		entry.Element,
		attention,
		entry.AttentionMode,
		liminal,
		entry.LiminalMode,
		entry.Guidance,
		entry.CreatedAt,
	)
	return err
}

func (r *PgEntryRepository) GetByID(ctx context.Context, id string) (domain.JournalEntry, error) {
	const query = `
		SELECT id, user_id, session_id, content, element, attention_scores, attention_mode, liminal_scores, liminal_mode, guidance, created_at
		FROM journal_entries
		WHERE id = $1
	`
	return scanEntry(r.pool.QueryRow(ctx, query, id))
}

func (r *PgEntryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
		SELECT id, user_id, session_id, content, element, attention_scores, attention_mode, liminal_scores, liminal_mode, guidance, created_at
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntryRows(rows)
}

func (r *PgEntryRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.JournalEntry, error) {
	const query = `
		SELECT id, user_id, session_id, content, element, attention_scores, attention_mode, liminal_scores, liminal_mode, guidance, created_at
		FROM journal_entries
		WHERE session_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntryRows(rows)
}

func scanEntryRows(rows pgxRows) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func scanEntry(row interface{ Scan(...interface{}) error }) (domain.JournalEntry, error) {
	var (
		e         domain.JournalEntry
		sessionID *string
		attention []byte
		liminal   []byte
	)
	if err := row.Scan(
		&e.ID,
		&e.UserID,
		&sessionID,
		&e.Content,
		&e.Element,
		&attention,
		&e.AttentionMode,
		&liminal,
		&e.LiminalMode,
		&e.Guidance,
		&e.CreatedAt,
	); err != nil {
		return domain.JournalEntry{}, err
	}
	if sessionID != nil {
		e.SessionID = *sessionID
	}
	if len(attention) > 0 {
		if err := json.Unmarshal(attention, &e.AttentionScores); err != nil {
			return domain.JournalEntry{}, fmt.Errorf("unmarshal attention scores: %w", err)
		}
	}
	if len(liminal) > 0 {
		if err := json.Unmarshal(liminal, &e.LiminalScores); err != nil {
			return domain.JournalEntry{}, fmt.Errorf("unmarshal liminal scores: %w", err)
		}
	}
	return e, nil
}
