package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"spiral-oracle/internal/domain"
	"spiral-oracle/internal/llm"
	"spiral-oracle/internal/oracle"
	"spiral-oracle/internal/scoring"
)

type mockEntryRepo struct {
	created []domain.JournalEntry
	err     error
}

func (m *mockEntryRepo) Create(_ context.Context, entry domain.JournalEntry) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, entry)
	return nil
}

func (m *mockEntryRepo) GetByID(_ context.Context, _ string) (domain.JournalEntry, error) {
	return domain.JournalEntry{}, nil
}

func (m *mockEntryRepo) ListByUser(_ context.Context, _ string, _ int) ([]domain.JournalEntry, error) {
	return m.created, nil
}

func (m *mockEntryRepo) ListBySession(_ context.Context, _ string) ([]domain.JournalEntry, error) {
	return m.created, nil
}

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(string) bool { return false }

func newTestOracleService(entries *mockEntryRepo, phases *mockPhaseRepo, client llm.Client, limiter JournalRateLimiter) *OracleService {
	rng := rand.New(rand.NewSource(7))
	var phaseSvc *PhaseService
	if phases != nil {
		phaseSvc = NewPhaseService(zap.NewNop(), phases, oracle.NewGating())
	}
	return NewOracleService(
		zap.NewNop(),
		scoring.NewAttentionScorer(rng),
		scoring.NewLiminalScorer(rand.New(rand.NewSource(7))),
		oracle.NewRegistry(),
		entries,
		phaseSvc,
		nil,
		client,
		limiter,
		nil,
	)
}

func TestOracleService_ProcessJournal(t *testing.T) {
	entries := &mockEntryRepo{}
	phases := newMockPhaseRepo()
	svc := newTestOracleService(entries, phases, nil, nil)

	result, err := svc.ProcessJournal(context.Background(), JournalInput{
		UserID:    "u1",
		SessionID: "s1",
		Content:   "Tears and grief flow through my heart like a river",
	})
	if err != nil {
		t.Fatalf("process journal: %v", err)
	}

	if result.Entry.Element != domain.ElementWater {
		t.Fatalf("expected water element, got %s", result.Entry.Element)
	}
	if result.Oracle.Element != domain.ElementWater {
		t.Fatalf("expected water oracle response, got %s", result.Oracle.Element)
	}
	if result.Attention.Mode == "" || result.Liminal.Mode == "" {
		t.Fatalf("expected modes from both scorers, got %+v", result)
	}
	if len(entries.created) != 1 {
		t.Fatalf("expected persisted entry, got %d", len(entries.created))
	}
	stored := entries.created[0]
	if stored.AttentionMode != result.Attention.Mode || stored.Guidance == "" {
		t.Fatalf("entry snapshot mismatch: %+v", stored)
	}
	for dim, score := range stored.AttentionScores {
		if score < 0 || score > 1 {
			t.Fatalf("score %s = %v out of range", dim, score)
		}
	}
}

func TestOracleService_ProcessJournalEmptyContent(t *testing.T) {
	svc := newTestOracleService(&mockEntryRepo{}, nil, nil, nil)
	if _, err := svc.ProcessJournal(context.Background(), JournalInput{UserID: "u1", Content: "   "}); err == nil {
		t.Fatalf("expected error for empty content")
	}
}

func TestOracleService_ProcessJournalRateLimited(t *testing.T) {
	svc := newTestOracleService(&mockEntryRepo{}, nil, nil, denyAllLimiter{})
	_, err := svc.ProcessJournal(context.Background(), JournalInput{UserID: "u1", Content: "anything at all"})
	if !errors.Is(err, ErrJournalRateLimited) {
		t.Fatalf("expected ErrJournalRateLimited, got %v", err)
	}
}

func TestOracleService_ProcessJournalUsesCurrentPhase(t *testing.T) {
	phases := newMockPhaseRepo()
	phases.data["u1"] = domain.UserPhaseData{
		UserID:         "u1",
		CurrentPhase:   domain.PhaseTransformation,
		PhaseEnteredAt: time.Now().UTC(),
		PhaseResonance: 0.5,
	}
	svc := newTestOracleService(&mockEntryRepo{}, phases, nil, nil)

	result, err := svc.ProcessJournal(context.Background(), JournalInput{
		UserID:  "u1",
		Content: "the fire and flame burn in me tonight",
	})
	if err != nil {
		t.Fatalf("process journal: %v", err)
	}
	if result.Oracle.Phase != domain.PhaseTransformation {
		t.Fatalf("expected agent response for transformation phase, got %s", result.Oracle.Phase)
	}
}

func TestOracleService_InterpretDream(t *testing.T) {
	svc := newTestOracleService(&mockEntryRepo{}, newMockPhaseRepo(), nil, nil)

	reading, err := svc.InterpretDream(context.Background(), "u1", "fire")
	if err != nil {
		t.Fatalf("interpret dream: %v", err)
	}
	if !strings.Contains(reading, "creative force") {
		t.Fatalf("expected fire symbol table reading, got %q", reading)
	}

	if _, err := svc.InterpretDream(context.Background(), "u1", "  "); err == nil {
		t.Fatalf("expected error for empty symbol")
	}
}

func TestOracleService_DailyGuidance(t *testing.T) {
	svc := newTestOracleService(&mockEntryRepo{}, newMockPhaseRepo(), nil, nil)

	guidance, err := svc.DailyGuidance(context.Background(), "u1")
	if err != nil {
		t.Fatalf("daily guidance: %v", err)
	}
	if !strings.Contains(guidance, "Focus for this phase: vision_clarification.") {
		t.Fatalf("expected initiation focus, got %q", guidance)
	}
}

func TestOracleService_Elaborate(t *testing.T) {
	base := JournalResult{
		Entry:  domain.JournalEntry{Content: "the river again"},
		Oracle: domain.OracleResponse{Element: domain.ElementWater, Archetype: "Water-Voice", Message: "base message"},
	}

	svc := newTestOracleService(&mockEntryRepo{}, nil, &llm.MockClient{Response: "elaborated wisdom"}, nil)
	if got := svc.Elaborate(context.Background(), "u1", base); got != "elaborated wisdom" {
		t.Fatalf("expected llm elaboration, got %q", got)
	}

	svc = newTestOracleService(&mockEntryRepo{}, nil, &llm.MockClient{Err: errors.New("llm down")}, nil)
	if got := svc.Elaborate(context.Background(), "u1", base); got != "base message" {
		t.Fatalf("expected base message fallback, got %q", got)
	}

	svc = newTestOracleService(&mockEntryRepo{}, nil, nil, nil)
	if got := svc.Elaborate(context.Background(), "u1", base); got != "base message" {
		t.Fatalf("expected base message without llm, got %q", got)
	}
}
