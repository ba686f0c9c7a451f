package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"spiral-oracle/internal/domain"
	"spiral-oracle/internal/oracle"
	"spiral-oracle/internal/repository"
)

// PhaseService coordina la progresion de fases: carga el estado del usuario,
// evalua las condiciones de transicion y persiste los cambios.
type PhaseService struct {
	logger *zap.Logger
	phases repository.PhaseRepository
	gating *oracle.Gating
}

func NewPhaseService(logger *zap.Logger, phases repository.PhaseRepository, gating *oracle.Gating) *PhaseService {
	if gating == nil {
		gating = oracle.NewGating()
	}
	return &PhaseService{
		logger: logger,
		phases: phases,
		gating: gating,
	}
}

// Get devuelve el estado de fase del usuario; un usuario nuevo arranca en
// initiation y se persiste en la primera consulta.
func (s *PhaseService) Get(ctx context.Context, userID string) (domain.UserPhaseData, error) {
	data, err := s.phases.Get(ctx, userID)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.UserPhaseData{}, fmt.Errorf("get phase data: %w", err)
	}

	now := time.Now().UTC()
	data = domain.UserPhaseData{
		UserID:         userID,
		CurrentPhase:   domain.PhaseInitiation,
		PhaseEnteredAt: now,
		PhaseResonance: 0.5,
		UpdatedAt:      now,
	}
	if err := s.phases.Upsert(ctx, data); err != nil {
		return domain.UserPhaseData{}, fmt.Errorf("init phase data: %w", err)
	}
	return data, nil
}

// AdvanceResult reporta el resultado de un intento de transicion.
type AdvanceResult struct {
	Transitioned bool                 `json:"transitioned"`
	From         domain.SpiralPhase   `json:"from"`
	To           domain.SpiralPhase   `json:"to,omitempty"`
	Data         domain.UserPhaseData `json:"data"`
}

// TryAdvance evalua el gate de la fase actual con las señales reportadas y
// aplica la transicion si el usuario esta listo.
func (s *PhaseService) TryAdvance(ctx context.Context, userID string, signals map[string]float64, ritualDone bool) (AdvanceResult, error) {
	data, err := s.Get(ctx, userID)
	if err != nil {
		return AdvanceResult{}, err
	}

	result := AdvanceResult{From: data.CurrentPhase, Data: data}

	to, ready := s.gating.CheckTransition(&data, signals)
	if !ready {
		return result, nil
	}

	s.gating.Transition(&data, to, ritualDone)
	if err := s.phases.Upsert(ctx, data); err != nil {
		return AdvanceResult{}, fmt.Errorf("persist transition: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("phase transition",
			zap.String("user_id", userID),
			zap.String("from", string(result.From)),
			zap.String("to", string(to)),
			zap.Int("spiral_count", data.SpiralCount),
		)
	}

	result.Transitioned = true
	result.To = to
	result.Data = data
	return result, nil
}

// RecordBreakthrough anota un insight del usuario y sube la resonancia de fase.
func (s *PhaseService) RecordBreakthrough(ctx context.Context, userID, note string) (domain.UserPhaseData, error) {
	data, err := s.Get(ctx, userID)
	if err != nil {
		return domain.UserPhaseData{}, err
	}

	s.gating.RecordBreakthrough(&data, note)
	if err := s.phases.Upsert(ctx, data); err != nil {
		return domain.UserPhaseData{}, fmt.Errorf("persist breakthrough: %w", err)
	}
	return data, nil
}

// Guidance devuelve la guia de la fase actual del usuario.
func (s *PhaseService) Guidance(ctx context.Context, userID string) (domain.PhaseGuidance, error) {
	data, err := s.Get(ctx, userID)
	if err != nil {
		return domain.PhaseGuidance{}, err
	}
	return s.gating.Guidance(data.CurrentPhase), nil
}
