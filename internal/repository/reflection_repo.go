package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"spiral-oracle/internal/domain"
)

// ReflectionRepository guarda reflexiones con embedding para busqueda semantica.
type ReflectionRepository interface {
	Create(ctx context.Context, memory domain.ReflectionMemory) error
	Search(ctx context.Context, userID string, queryEmbedding pgvector.Vector, k int) ([]domain.ReflectionMemory, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.ReflectionMemory, error)
}

type PgReflectionRepository struct {
	pool *pgxpool.Pool
}

func NewPgReflectionRepository(pool *pgxpool.Pool) *PgReflectionRepository {
	return &PgReflectionRepository{pool: pool}
}

func (r *PgReflectionRepository) Create(ctx context.Context, memory domain.ReflectionMemory) error {
	importance := memory.Importance
	if importance <= 0 {
		importance = 5
	}
	const query = `
		INSERT INTO reflection_memories (id, user_id, content, embedding, element, importance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		memory.ID,
		memory.UserID,
		memory.Content,
		memory.Embedding,
		memory.Element,
		importance,
		memory.CreatedAt,
	)
	return err
}

func (r *PgReflectionRepository) Search(ctx context.Context, userID string, queryEmbedding pgvector.Vector, k int) ([]domain.ReflectionMemory, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT id, user_id, content, embedding, element, importance, created_at
		FROM reflection_memories
		WHERE user_id = $1
		ORDER BY embedding <=> $2
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, userID, queryEmbedding, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReflections(rows)
}

func (r *PgReflectionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.ReflectionMemory, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
		SELECT id, user_id, content, embedding, element, importance, created_at
		FROM reflection_memories
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReflections(rows)
}

func scanReflections(rows pgxRows) ([]domain.ReflectionMemory, error) {
	var memories []domain.ReflectionMemory
	for rows.Next() {
		var m domain.ReflectionMemory
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.Content,
			&m.Embedding,
			&m.Element,
			&m.Importance,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		memories = append(memories, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return memories, nil
}

// pgxRows es la interfaz minima para escanear filas de pgx y facilitar tests.
type pgxRows interface {
	Next() bool
	Scan(...interface{}) error
	Err() error
	Close()
}
