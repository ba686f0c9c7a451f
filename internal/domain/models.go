package domain

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session agrupa entradas de diario bajo una misma conversacion.
// El engine de scoring usa el ID de sesion como context label.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Intention string    `json:"intention,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// JournalEntry es una entrada de diario ya procesada por el engine.
// Guarda el snapshot de scores para poder reconstruir dashboards sin re-evaluar.
type JournalEntry struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	SessionID       string             `json:"session_id,omitempty"`
	Content         string             `json:"content"`
	Element         Element            `json:"element"`
	AttentionScores map[string]float64 `json:"attention_scores"`
	AttentionMode   string             `json:"attention_mode"`
	LiminalScores   map[string]float64 `json:"liminal_scores"`
	LiminalMode     string             `json:"liminal_mode"`
	Guidance        string             `json:"guidance"`
	CreatedAt       time.Time          `json:"created_at"`
}

// ReflectionMemory guarda una reflexion con su embedding para busqueda semantica.
type ReflectionMemory struct {
	ID         uuid.UUID       `json:"id"`
	UserID     string          `json:"user_id"`
	Content    string          `json:"content"`
	Embedding  pgvector.Vector `json:"embedding"`
	Element    Element         `json:"element"`
	Importance int             `json:"importance"`
	CreatedAt  time.Time       `json:"created_at"`
}
