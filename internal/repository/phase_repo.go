package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"spiral-oracle/internal/domain"
)

// PhaseRepository persiste la progresion de fases por usuario.
// PhaseHistory y Breakthroughs se guardan como jsonb.
type PhaseRepository interface {
	Get(ctx context.Context, userID string) (domain.UserPhaseData, error)
	Upsert(ctx context.Context, data domain.UserPhaseData) error
}

type PgPhaseRepository struct {
	pool *pgxpool.Pool
}

func NewPgPhaseRepository(pool *pgxpool.Pool) *PgPhaseRepository {
	return &PgPhaseRepository{pool: pool}
}

func (r *PgPhaseRepository) Get(ctx context.Context, userID string) (domain.UserPhaseData, error) {
	const query = `
		SELECT user_id, current_phase, phase_entered_at, spiral_count, phase_resonance, phase_history, breakthroughs, updated_at
		FROM user_phases
		WHERE user_id = $1
	`
	var (
		data          domain.UserPhaseData
		history       []byte
		breakthroughs []byte
	)
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&data.UserID,
		&data.CurrentPhase,
		&data.PhaseEnteredAt,
		&data.SpiralCount,
		&data.PhaseResonance,
		&history,
		&breakthroughs,
		&data.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.UserPhaseData{}, err
	}
	if err != nil {
		return domain.UserPhaseData{}, err
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &data.PhaseHistory); err != nil {
			return domain.UserPhaseData{}, fmt.Errorf("unmarshal phase history: %w", err)
		}
	}
	if len(breakthroughs) > 0 {
		if err := json.Unmarshal(breakthroughs, &data.Breakthroughs); err != nil {
			return domain.UserPhaseData{}, fmt.Errorf("unmarshal breakthroughs: %w", err)
		}
	}
	return data, nil
}

func (r *PgPhaseRepository) Upsert(ctx context.Context, data domain.UserPhaseData) error {
	history, err := json.Marshal(data.PhaseHistory)
	if err != nil {
		return fmt.Errorf("marshal phase history: %w", err)
	}
	breakthroughs, err := json.Marshal(data.Breakthroughs)
	if err != nil {
		return fmt.Errorf("marshal breakthroughs: %w", err)
	}

	const query = `
		INSERT INTO user_phases (user_id, current_phase, phase_entered_at, spiral_count, phase_resonance, phase_history, breakthroughs, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			current_phase = EXCLUDED.current_phase,
			phase_entered_at = EXCLUDED.phase_entered_at,
			spiral_count = EXCLUDED.spiral_count,
			phase_resonance = EXCLUDED.phase_resonance,
			phase_history = EXCLUDED.phase_history,
			breakthroughs = EXCLUDED.breakthroughs,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.pool.Exec(ctx, query,
		data.UserID,
		data.CurrentPhase,
		data.PhaseEnteredAt,
		data.SpiralCount,
		data.PhaseResonance,
		history,
		breakthroughs,
		data.UpdatedAt,
	)
	return err
}
