package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"spiral-oracle/internal/domain"
	"spiral-oracle/internal/repository"
)

// embedder es el subset del cliente LLM que necesita la memoria de reflexiones.
type embedder interface {
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// ReflectionMemoryService guarda reflexiones con embedding y recupera las mas
// cercanas semanticamente para enriquecer la guidance.
type ReflectionMemoryService struct {
	logger      *zap.Logger
	reflections repository.ReflectionRepository
	embedder    embedder
}

func NewReflectionMemoryService(logger *zap.Logger, reflections repository.ReflectionRepository, embedder embedder) *ReflectionMemoryService {
	return &ReflectionMemoryService{
		logger:      logger,
		reflections: reflections,
		embedder:    embedder,
	}
}

// Remember embebe el contenido y lo persiste como memoria de reflexion.
func (s *ReflectionMemoryService) Remember(ctx context.Context, userID, content string, element domain.Element, importance int) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	embed, err := s.embedder.CreateEmbedding(ctx, content)
	if err != nil {
		return fmt.Errorf("create embedding: %w", err)
	}

	memory := domain.ReflectionMemory{
		ID:         uuid.New(),
		UserID:     userID,
		Content:    content,
		Embedding:  pgvector.NewVector(embed),
		Element:    element,
		Importance: importance,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.reflections.Create(ctx, memory); err != nil {
		return fmt.Errorf("persist reflection: %w", err)
	}
	return nil
}

// Recall busca las k reflexiones mas cercanas al query.
func (s *ReflectionMemoryService) Recall(ctx context.Context, userID, query string, k int) ([]domain.ReflectionMemory, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	embed, err := s.embedder.CreateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}

	memories, err := s.reflections.Search(ctx, userID, pgvector.NewVector(embed), k)
	if err != nil {
		return nil, fmt.Errorf("search reflections: %w", err)
	}
	return memories, nil
}

// RecallContext arma un bloque de texto con reflexiones pasadas para sumar al
// prompt de elaboracion. Falla en silencio: sin memoria tambien hay respuesta.
func (s *ReflectionMemoryService) RecallContext(ctx context.Context, userID, query string) string {
	memories, err := s.Recall(ctx, userID, query, 5)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("recall reflections failed", zap.Error(err), zap.String("user_id", userID))
		}
		return ""
	}
	if len(memories) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Past reflections:\n")
	for _, m := range memories {
		sb.WriteString("- ")
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}
