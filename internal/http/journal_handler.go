package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"spiral-oracle/internal/domain"
	"spiral-oracle/internal/repository"
	"spiral-oracle/internal/service"
)

// JournalHandler maneja sesiones y entradas de diario.
type JournalHandler struct {
	logger     *zap.Logger
	oracleServ *service.OracleService
	sessions   repository.SessionRepository
	metrics    *Metrics
}

// NewJournalHandler crea una instancia de JournalHandler.
func NewJournalHandler(logger *zap.Logger, oracleServ *service.OracleService, sessions repository.SessionRepository, metrics *Metrics) *JournalHandler {
	return &JournalHandler{
		logger:     logger,
		oracleServ: oracleServ,
		sessions:   sessions,
		metrics:    metrics,
	}
}

// CreateSession maneja POST /session.
func (h *JournalHandler) CreateSession(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Intention string `json:"intention"`
		TTLHours  int    `json:"ttl_hours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ttl := time.Duration(req.TTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := time.Now().UTC()
	session := domain.Session{
		ID:        uuid.NewString(),
		UserID:    claims.UserID,
		Intention: req.Intention,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := h.sessions.Create(c.Request.Context(), session); err != nil {
		h.logger.Error("create session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// PostJournal maneja POST /journal.
func (h *JournalHandler) PostJournal(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		SessionID string             `json:"session_id"`
		Content   string             `json:"content" binding:"required"`
		Fields    map[string]float64 `json:"fields"`
		Elaborate bool               `json:"elaborate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid journal request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// El session_id es el context label del scoring: solo sesiones propias
	// y vigentes.
	if req.SessionID != "" {
		session, err := h.sessions.GetByID(c.Request.Context(), req.SessionID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
				return
			}
			h.logger.Error("load session failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load session"})
			return
		}
		if session.UserID != claims.UserID {
			c.JSON(http.StatusForbidden, gin.H{"error": "session does not belong to user"})
			return
		}
		if time.Now().UTC().After(session.ExpiresAt) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session expired"})
			return
		}
	}

	result, err := h.oracleServ.ProcessJournal(c.Request.Context(), service.JournalInput{
		UserID:    claims.UserID,
		SessionID: req.SessionID,
		Content:   req.Content,
		Fields:    req.Fields,
	})
	if err != nil {
		if errors.Is(err, service.ErrJournalRateLimited) {
			h.metrics.RecordJournalRateLimited()
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many journal entries"})
			return
		}
		h.logger.Error("process journal failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process journal"})
		return
	}
	h.metrics.RecordJournalProcessed()

	message := result.Oracle.Message
	if req.Elaborate {
		message = h.oracleServ.Elaborate(c.Request.Context(), claims.UserID, result)
	}
	c.JSON(http.StatusCreated, gin.H{"result": result, "message": message})
}

// ListEntries maneja GET /journal.
func (h *JournalHandler) ListEntries(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	entries, err := h.oracleServ.ListEntries(c.Request.Context(), claims.UserID, limit)
	if err != nil {
		h.logger.Error("list entries failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// ScoreHistory maneja GET /journal/history.
// Expone el ledger en memoria del evaluador pedido via ?scorer=.
func (h *JournalHandler) ScoreHistory(c *gin.Context) {
	if _, ok := GetAuthClaims(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	history := h.oracleServ.History(c.Query("scorer"), limit)
	c.JSON(http.StatusOK, gin.H{"history": history})
}
