package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spiral-oracle/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	metrics *Metrics,
	jwtServ *service.JWTService,
	userH *UserHandler,
	journalH *JournalHandler,
	oracleH *OracleHandler,
	phaseH *PhaseHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery, metricas y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), metrics.Middleware(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	// Rutas publicas.
	users := r.Group("/users")
	users.POST("", userH.CreateUser)

	auth := r.Group("/auth")
	auth.POST("/login", userH.Login)
	auth.POST("/refresh", userH.RefreshToken)
	auth.POST("/logout", userH.Logout)

	// Rutas protegidas por JWT.
	protected := r.Group("/")
	protected.Use(JWTAuthMiddleware(jwtServ))

	protected.POST("/session", journalH.CreateSession)
	protected.POST("/journal", journalH.PostJournal)
	protected.GET("/journal", journalH.ListEntries)
	protected.GET("/journal/history", journalH.ScoreHistory)

	oracleGroup := protected.Group("/oracle")
	oracleGroup.GET("/guidance", oracleH.DailyGuidance)
	oracleGroup.POST("/dream", oracleH.InterpretDream)

	phaseGroup := protected.Group("/phase")
	phaseGroup.GET("", phaseH.GetPhase)
	phaseGroup.POST("/advance", phaseH.AdvancePhase)
	phaseGroup.POST("/breakthrough", phaseH.RecordBreakthrough)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
