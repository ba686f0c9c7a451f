package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"spiral-oracle/internal/domain"
	"spiral-oracle/internal/oracle"
)

type mockPhaseRepo struct {
	data    map[string]domain.UserPhaseData
	upserts int
}

func newMockPhaseRepo() *mockPhaseRepo {
	return &mockPhaseRepo{data: make(map[string]domain.UserPhaseData)}
}

func (m *mockPhaseRepo) Get(_ context.Context, userID string) (domain.UserPhaseData, error) {
	d, ok := m.data[userID]
	if !ok {
		return domain.UserPhaseData{}, pgx.ErrNoRows
	}
	return d, nil
}

func (m *mockPhaseRepo) Upsert(_ context.Context, data domain.UserPhaseData) error {
	m.upserts++
	m.data[data.UserID] = data
	return nil
}

func TestPhaseService_GetInitializesNewUser(t *testing.T) {
	repo := newMockPhaseRepo()
	svc := NewPhaseService(zap.NewNop(), repo, oracle.NewGating())

	data, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if data.CurrentPhase != domain.PhaseInitiation {
		t.Fatalf("new user starts in initiation, got %s", data.CurrentPhase)
	}
	if data.PhaseResonance != 0.5 {
		t.Fatalf("initial resonance 0.5, got %v", data.PhaseResonance)
	}
	if repo.upserts != 1 {
		t.Fatalf("expected initial state persisted once, got %d upserts", repo.upserts)
	}
}

func TestPhaseService_TryAdvance(t *testing.T) {
	repo := newMockPhaseRepo()
	repo.data["u1"] = domain.UserPhaseData{
		UserID:         "u1",
		CurrentPhase:   domain.PhaseInitiation,
		PhaseEnteredAt: time.Now().UTC().Add(-5 * 24 * time.Hour),
		PhaseResonance: 0.5,
	}
	svc := NewPhaseService(zap.NewNop(), repo, oracle.NewGating())

	// Señales insuficientes: sin transicion, sin persistencia extra.
	res, err := svc.TryAdvance(context.Background(), "u1", map[string]float64{"vision_clarity": 0.2}, false)
	if err != nil {
		t.Fatalf("try advance: %v", err)
	}
	if res.Transitioned {
		t.Fatalf("expected no transition with weak signals")
	}
	if repo.upserts != 0 {
		t.Fatalf("expected no persistence without transition, got %d", repo.upserts)
	}

	res, err = svc.TryAdvance(context.Background(), "u1", map[string]float64{
		"vision_clarity":   0.9,
		"actions_taken":    2,
		"commitment_level": 0.8,
	}, true)
	if err != nil {
		t.Fatalf("try advance: %v", err)
	}
	if !res.Transitioned || res.To != domain.PhaseExploration {
		t.Fatalf("expected transition to exploration, got %+v", res)
	}
	stored := repo.data["u1"]
	if stored.CurrentPhase != domain.PhaseExploration {
		t.Fatalf("expected persisted phase exploration, got %s", stored.CurrentPhase)
	}
	if len(stored.PhaseHistory) != 1 || !stored.PhaseHistory[0].RitualDone {
		t.Fatalf("expected recorded transition with ritual, got %+v", stored.PhaseHistory)
	}
}

func TestPhaseService_RecordBreakthrough(t *testing.T) {
	repo := newMockPhaseRepo()
	repo.data["u1"] = domain.UserPhaseData{
		UserID:         "u1",
		CurrentPhase:   domain.PhaseChallenge,
		PhaseEnteredAt: time.Now().UTC(),
		PhaseResonance: 0.6,
	}
	svc := NewPhaseService(zap.NewNop(), repo, oracle.NewGating())

	data, err := svc.RecordBreakthrough(context.Background(), "u1", "saw my pattern")
	if err != nil {
		t.Fatalf("record breakthrough: %v", err)
	}
	if math.Abs(data.PhaseResonance-0.7) > 1e-9 {
		t.Fatalf("expected resonance 0.7, got %v", data.PhaseResonance)
	}
	if len(data.Breakthroughs) != 1 || data.Breakthroughs[0].Phase != domain.PhaseChallenge {
		t.Fatalf("unexpected breakthroughs: %+v", data.Breakthroughs)
	}
}

func TestPhaseService_Guidance(t *testing.T) {
	repo := newMockPhaseRepo()
	repo.data["u1"] = domain.UserPhaseData{
		UserID:         "u1",
		CurrentPhase:   domain.PhaseTransformation,
		PhaseEnteredAt: time.Now().UTC(),
		PhaseResonance: 0.5,
	}
	svc := NewPhaseService(zap.NewNop(), repo, oracle.NewGating())

	g, err := svc.Guidance(context.Background(), "u1")
	if err != nil {
		t.Fatalf("guidance: %v", err)
	}
	if g.Energy != "metamorphosis" || g.Focus != "surrender" {
		t.Fatalf("unexpected guidance for transformation: %+v", g)
	}
}
