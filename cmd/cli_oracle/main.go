package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"spiral-oracle/internal/config"
	"spiral-oracle/internal/db"
	"spiral-oracle/internal/domain"
	"spiral-oracle/internal/llm"
	"spiral-oracle/internal/oracle"
	"spiral-oracle/internal/repository"
	"spiral-oracle/internal/scoring"
	"spiral-oracle/internal/service"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	sessionRepo := repository.NewPgSessionRepository(pool)
	entryRepo := repository.NewPgEntryRepository(pool)
	phaseRepo := repository.NewPgPhaseRepository(pool)
	reflectionRepo := repository.NewPgReflectionRepository(pool)

	var llmClient llm.Client
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMEmbeddingModel, log.Default())
	}

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
		nil,
		nil,
	)

	user, err := ensureUser(ctx, pool, userRepo, "cli_oracle@example.com")
	if err != nil {
		log.Fatal(err)
	}

	session := domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Intention: "cli journaling",
		ExpiresAt: time.Now().UTC().Add(24 * time.Hour),
		CreatedAt: time.Now().UTC(),
	}
	if err := sessionRepo.Create(ctx, session); err != nil {
		log.Fatalf("crear sesion: %v", err)
	}

	for {
		fmt.Println("\n===== Spiral Oracle =====")
		fmt.Println("[1] Escribir entrada de diario")
		fmt.Println("[2] Interpretar simbolo de sueño")
		fmt.Println("[3] Ver fase actual y guidance")
		fmt.Println("[4] Registrar breakthrough")
		fmt.Println("[5] Salir")
		fmt.Print("Selecciona una opcion: ")

		line, _ := reader.ReadString('\n')
		switch strings.TrimSpace(line) {
		case "1":
			journalFlow(ctx, reader, oracleSvc, user.ID, session.ID)
		case "2":
			dreamFlow(ctx, reader, oracleSvc, user.ID)
		case "3":
			phaseFlow(ctx, phaseSvc, user.ID)
		case "4":
			breakthroughFlow(ctx, reader, phaseSvc, user.ID)
		case "5":
			os.Exit(0)
		default:
			fmt.Println("Opcion invalida.")
		}
	}
}

func journalFlow(ctx context.Context, reader *bufio.Reader, oracleSvc *service.OracleService, userID, sessionID string) {
	fmt.Println("---- Modo Diario (escribe 'salir' para volver al menu) ----")
	for {
		fmt.Print("Tu > ")
		text, err := reader.ReadString('\n')
		if err != nil {
			fmt.Printf("leer input: %v\n", err)
			return
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if strings.EqualFold(text, "salir") || strings.EqualFold(text, "exit") {
			return
		}

		result, err := oracleSvc.ProcessJournal(ctx, service.JournalInput{
			UserID:    userID,
			SessionID: sessionID,
			Content:   text,
		})
		if err != nil {
			fmt.Printf("error procesando entrada: %v\n", err)
			continue
		}

		message := oracleSvc.Elaborate(ctx, userID, result)
		fmt.Printf("\n[%s | %s] %s\n", result.Oracle.Element, result.Oracle.Archetype, message)
		if result.Oracle.ReflectionPrompt != "" {
			fmt.Printf("Reflexion: %s\n", result.Oracle.ReflectionPrompt)
		}
		fmt.Printf("attention=%s liminal=%s\n", result.Attention.Mode, result.Liminal.Mode)
		fmt.Printf("Guidance: %s\n", result.Attention.Guidance)
	}
}

func dreamFlow(ctx context.Context, reader *bufio.Reader, oracleSvc *service.OracleService, userID string) {
	fmt.Print("Simbolo del sueño: ")
	symbol, _ := reader.ReadString('\n')
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		fmt.Println("Simbolo vacio.")
		return
	}
	interpretation, err := oracleSvc.InterpretDream(ctx, userID, symbol)
	if err != nil {
		fmt.Printf("error interpretando simbolo: %v\n", err)
		return
	}
	fmt.Printf("Interpretacion: %s\n", interpretation)
}

func phaseFlow(ctx context.Context, phaseSvc *service.PhaseService, userID string) {
	data, err := phaseSvc.Get(ctx, userID)
	if err != nil {
		fmt.Printf("error cargando fase: %v\n", err)
		return
	}
	fmt.Printf("Fase actual: %s (vuelta %d, resonancia %.2f)\n", data.CurrentPhase, data.SpiralCount, data.PhaseResonance)

	guidance, err := phaseSvc.Guidance(ctx, userID)
	if err != nil {
		fmt.Printf("error cargando guidance: %v\n", err)
		return
	}
	fmt.Printf("Energia: %s | Foco: %s\n", guidance.Energy, guidance.Focus)
	fmt.Printf("Practicas: %s\n", strings.Join(guidance.Practices, ", "))
}

func breakthroughFlow(ctx context.Context, reader *bufio.Reader, phaseSvc *service.PhaseService, userID string) {
	fmt.Print("Describe el breakthrough: ")
	note, _ := reader.ReadString('\n')
	note = strings.TrimSpace(note)
	if note == "" {
		fmt.Println("Nota vacia.")
		return
	}
	data, err := phaseSvc.RecordBreakthrough(ctx, userID, note)
	if err != nil {
		fmt.Printf("error registrando breakthrough: %v\n", err)
		return
	}
	fmt.Printf("Registrado. Resonancia de fase: %.2f\n", data.PhaseResonance)
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, repo repository.UserRepository, email string) (domain.User, error) {
	const query = `
		SELECT id, email, display_name, created_at
		FROM users
		WHERE email = $1
	`

	var u domain.User
	err := pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.DisplayName, &u.CreatedAt)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}

	u = domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(ctx, u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
