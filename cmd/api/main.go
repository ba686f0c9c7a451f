package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"time"

	"spiral-oracle/internal/config"
	"spiral-oracle/internal/db"
	apihttp "spiral-oracle/internal/http"
	"spiral-oracle/internal/llm"
	"spiral-oracle/internal/oracle"
	"spiral-oracle/internal/repository"
	"spiral-oracle/internal/scoring"
	"spiral-oracle/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	sessionRepo := repository.NewPgSessionRepository(pool)
	entryRepo := repository.NewPgEntryRepository(pool)
	phaseRepo := repository.NewPgPhaseRepository(pool)
	reflectionRepo := repository.NewPgReflectionRepository(pool)

	var llmClient llm.Client
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMEmbeddingModel, logger)
	} else {
		logger.Warn("llm api key not configured, oracle elaboration disabled")
	}

	window := time.Duration(cfg.JournalRateWindow) * time.Second
	limiter := service.NewJournalRateLimiter(window, cfg.JournalRateLimit)
	tokenStore := service.NewMemoryRefreshTokenStore()
	var memo *service.Memo
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisJournalRateLimiter(redisClient, window, cfg.JournalRateLimit)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
			memo = service.NewMemo(redisClient, logger, "oracle", 24*time.Hour)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMin)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMin)*time.Minute,
		tokenStore,
	)

	phaseSvc := service.NewPhaseService(logger, phaseRepo, oracle.NewGating())
	var reflectionSvc *service.ReflectionMemoryService
	if llmClient != nil {
		reflectionSvc = service.NewReflectionMemoryService(logger, reflectionRepo, llmClient)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	oracleSvc := service.NewOracleService(
		logger,
		scoring.NewAttentionScorer(rng),
		scoring.NewLiminalScorer(rng),
		oracle.NewRegistry(),
		entryRepo,
		phaseSvc,
		reflectionSvc,
		llmClient,
		limiter,
		memo,
	)

	userSvc := service.NewUserService(logger, userRepo)
	metrics := apihttp.NewMetrics()
	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	journalHandler := apihttp.NewJournalHandler(logger, oracleSvc, sessionRepo, metrics)
	oracleHandler := apihttp.NewOracleHandler(logger, oracleSvc)
	phaseHandler := apihttp.NewPhaseHandler(logger, phaseSvc)
	router := apihttp.NewRouter(logger, metrics, jwtSvc, userHandler, journalHandler, oracleHandler, phaseHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
