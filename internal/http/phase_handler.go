package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spiral-oracle/internal/service"
)

// PhaseHandler maneja la progresion de fases del usuario.
type PhaseHandler struct {
	logger    *zap.Logger
	phaseServ *service.PhaseService
}

// NewPhaseHandler crea una instancia de PhaseHandler.
func NewPhaseHandler(logger *zap.Logger, phaseServ *service.PhaseService) *PhaseHandler {
	return &PhaseHandler{logger: logger, phaseServ: phaseServ}
}

// GetPhase maneja GET /phase.
func (h *PhaseHandler) GetPhase(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	data, err := h.phaseServ.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("get phase failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load phase"})
		return
	}

	guidance, err := h.phaseServ.Guidance(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("phase guidance failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load guidance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"phase": data, "guidance": guidance})
}

// AdvancePhase maneja POST /phase/advance.
func (h *PhaseHandler) AdvancePhase(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Signals    map[string]float64 `json:"signals" binding:"required"`
		RitualDone bool               `json:"ritual_done"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid advance request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.phaseServ.TryAdvance(c.Request.Context(), claims.UserID, req.Signals, req.RitualDone)
	if err != nil {
		h.logger.Error("advance phase failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not advance phase"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// RecordBreakthrough maneja POST /phase/breakthrough.
func (h *PhaseHandler) RecordBreakthrough(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Note string `json:"note" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid breakthrough request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	data, err := h.phaseServ.RecordBreakthrough(c.Request.Context(), claims.UserID, req.Note)
	if err != nil {
		h.logger.Error("record breakthrough failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record breakthrough"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"phase": data})
}
