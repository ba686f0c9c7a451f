package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"spiral-oracle/internal/domain"
)

type mockReflectionRepo struct {
	created []domain.ReflectionMemory
	results []domain.ReflectionMemory
	err     error
}

func (m *mockReflectionRepo) Create(_ context.Context, memory domain.ReflectionMemory) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, memory)
	return nil
}

func (m *mockReflectionRepo) Search(_ context.Context, _ string, _ pgvector.Vector, _ int) ([]domain.ReflectionMemory, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *mockReflectionRepo) ListByUser(_ context.Context, _ string, _ int) ([]domain.ReflectionMemory, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

type fakeEmbedder struct {
	embedding []float32
	err       error
	calls     int
}

func (f *fakeEmbedder) CreateEmbedding(_ context.Context, _ string) ([]float32, error) {
	f.calls++
	return f.embedding, f.err
}

func TestReflectionMemoryService_Remember(t *testing.T) {
	repo := &mockReflectionRepo{}
	emb := &fakeEmbedder{embedding: []float32{0.1, 0.2, 0.3}}
	svc := NewReflectionMemoryService(zap.NewNop(), repo, emb)

	err := svc.Remember(context.Background(), "u1", "the river showed me my own face", domain.ElementWater, 6)
	if err != nil {
		t.Fatalf("remember: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted memory, got %d", len(repo.created))
	}
	got := repo.created[0]
	if got.UserID != "u1" || got.Element != domain.ElementWater || got.Importance != 6 {
		t.Fatalf("unexpected memory: %+v", got)
	}
	if got.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
}

func TestReflectionMemoryService_RememberSkipsEmpty(t *testing.T) {
	repo := &mockReflectionRepo{}
	emb := &fakeEmbedder{embedding: []float32{0.1}}
	svc := NewReflectionMemoryService(zap.NewNop(), repo, emb)

	if err := svc.Remember(context.Background(), "u1", "   ", domain.ElementFire, 5); err != nil {
		t.Fatalf("remember empty: %v", err)
	}
	if emb.calls != 0 || len(repo.created) != 0 {
		t.Fatalf("empty content must not embed nor persist")
	}
}

func TestReflectionMemoryService_RememberEmbeddingError(t *testing.T) {
	repo := &mockReflectionRepo{}
	emb := &fakeEmbedder{err: errors.New("llm down")}
	svc := NewReflectionMemoryService(zap.NewNop(), repo, emb)

	if err := svc.Remember(context.Background(), "u1", "content", domain.ElementAir, 5); err == nil {
		t.Fatalf("expected embedding error to propagate")
	}
	if len(repo.created) != 0 {
		t.Fatalf("failed embedding must not persist")
	}
}

func TestReflectionMemoryService_RecallContext(t *testing.T) {
	repo := &mockReflectionRepo{results: []domain.ReflectionMemory{
		{Content: "I chose stillness over noise"},
		{Content: "The mountain does not hurry"},
	}}
	emb := &fakeEmbedder{embedding: []float32{0.5}}
	svc := NewReflectionMemoryService(zap.NewNop(), repo, emb)

	block := svc.RecallContext(context.Background(), "u1", "stillness")
	if !strings.Contains(block, "Past reflections:") {
		t.Fatalf("expected header in context block, got %q", block)
	}
	if !strings.Contains(block, "stillness over noise") || !strings.Contains(block, "mountain") {
		t.Fatalf("expected memories listed, got %q", block)
	}
}

func TestReflectionMemoryService_RecallContextFailsSilently(t *testing.T) {
	repo := &mockReflectionRepo{err: errors.New("db down")}
	emb := &fakeEmbedder{embedding: []float32{0.5}}
	svc := NewReflectionMemoryService(zap.NewNop(), repo, emb)

	if block := svc.RecallContext(context.Background(), "u1", "anything"); block != "" {
		t.Fatalf("expected empty block on error, got %q", block)
	}
}
