package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spiral-oracle/internal/service"
)

// OracleHandler maneja las consultas directas al oraculo.
type OracleHandler struct {
	logger     *zap.Logger
	oracleServ *service.OracleService
}

// NewOracleHandler crea una instancia de OracleHandler.
func NewOracleHandler(logger *zap.Logger, oracleServ *service.OracleService) *OracleHandler {
	return &OracleHandler{logger: logger, oracleServ: oracleServ}
}

// DailyGuidance maneja GET /oracle/guidance.
func (h *OracleHandler) DailyGuidance(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	guidance, err := h.oracleServ.DailyGuidance(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("daily guidance failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build guidance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"guidance": guidance})
}

// InterpretDream maneja POST /oracle/dream.
func (h *OracleHandler) InterpretDream(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Symbol string `json:"symbol" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid dream request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	interpretation, err := h.oracleServ.InterpretDream(c.Request.Context(), claims.UserID, req.Symbol)
	if err != nil {
		h.logger.Error("interpret dream failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not interpret symbol"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"symbol": req.Symbol, "interpretation": interpretation})
}
