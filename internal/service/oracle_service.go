package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"spiral-oracle/internal/domain"
	"spiral-oracle/internal/llm"
	"spiral-oracle/internal/oracle"
	"spiral-oracle/internal/repository"
	"spiral-oracle/internal/scoring"
)

// OracleService orquesta el flujo de journaling: scoring de la entrada,
// ruteo elemental, respuesta del agente y persistencia.
type OracleService struct {
	logger      *zap.Logger
	attention   *scoring.Engine
	liminal     *scoring.Engine
	registry    *oracle.Registry
	entries     repository.EntryRepository
	phases      *PhaseService
	reflections *ReflectionMemoryService
	llmClient   llm.Client
	limiter     JournalRateLimiter
	memo        *Memo
}

var ErrJournalRateLimited = errors.New("journal rate limited")

func NewOracleService(
	logger *zap.Logger,
	attention *scoring.Engine,
	liminal *scoring.Engine,
	registry *oracle.Registry,
	entries repository.EntryRepository,
	phases *PhaseService,
	reflections *ReflectionMemoryService,
	llmClient llm.Client,
	limiter JournalRateLimiter,
	memo *Memo,
) *OracleService {
	if registry == nil {
		registry = oracle.NewRegistry()
	}
	return &OracleService{
		logger:      logger,
		attention:   attention,
		liminal:     liminal,
		registry:    registry,
		entries:     entries,
		phases:      phases,
		reflections: reflections,
		llmClient:   llmClient,
		limiter:     limiter,
		memo:        memo,
	}
}

// JournalInput es una entrada de diario cruda del usuario.
type JournalInput struct {
	UserID    string
	SessionID string
	Content   string
	Fields    map[string]float64
}

// JournalResult junta todo lo que produce una entrada: scores de ambos
// evaluadores, la respuesta elemental y la entrada persistida.
type JournalResult struct {
	Entry     domain.JournalEntry   `json:"entry"`
	Attention scoring.Result        `json:"attention"`
	Liminal   scoring.Result        `json:"liminal"`
	Oracle    domain.OracleResponse `json:"oracle"`
}

// ProcessJournal evalua la entrada con ambos evaluadores, rutea al agente
// elemental segun la fase actual y persiste el snapshot completo.
func (s *OracleService) ProcessJournal(ctx context.Context, input JournalInput) (JournalResult, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return JournalResult{}, errors.New("empty journal content")
	}

	if s.limiter != nil && !s.limiter.Allow(input.UserID) {
		return JournalResult{}, ErrJournalRateLimited
	}

	contextLabel := input.SessionID
	if contextLabel == "" {
		contextLabel = input.UserID
	}

	scoringInput := scoring.Input{Text: content, Fields: input.Fields}
	attention := s.attention.ScoreAndGuide(scoringInput, contextLabel)
	liminal := s.liminal.ScoreAndGuide(scoringInput, contextLabel)

	userCtx := domain.UserContext{CurrentPhase: domain.PhaseInitiation}
	if s.phases != nil {
		if data, err := s.phases.Get(ctx, input.UserID); err == nil {
			userCtx.CurrentPhase = data.CurrentPhase
		} else if s.logger != nil {
			s.logger.Warn("load phase data failed", zap.Error(err), zap.String("user_id", input.UserID))
		}
	}

	element := oracle.RouteElement(content)
	response := s.registry.Agent(element).Respond(content, userCtx)

	entry := domain.JournalEntry{
		ID:              uuid.NewString(),
		UserID:          input.UserID,
		SessionID:       input.SessionID,
		Content:         content,
		Element:         element,
		AttentionScores: attention.Scores,
		AttentionMode:   attention.Mode,
		LiminalScores:   liminal.Scores,
		LiminalMode:     liminal.Mode,
		Guidance:        attention.Guidance,
		CreatedAt:       time.Now().UTC(),
	}
	if s.entries != nil {
		if err := s.entries.Create(ctx, entry); err != nil {
			return JournalResult{}, fmt.Errorf("persist journal entry: %w", err)
		}
	}

	// La memoria de reflexiones no bloquea la respuesta.
	if s.reflections != nil {
		if err := s.reflections.Remember(ctx, input.UserID, content, element, importanceFor(attention)); err != nil && s.logger != nil {
			s.logger.Warn("remember reflection failed", zap.Error(err), zap.String("user_id", input.UserID))
		}
	}

	return JournalResult{
		Entry:     entry,
		Attention: attention,
		Liminal:   liminal,
		Oracle:    response,
	}, nil
}

// importanceFor gradua la importancia de la memoria segun la profundidad
// observada en la entrada.
func importanceFor(attention scoring.Result) int {
	depth := attention.Scores[scoring.DimDepth]
	switch {
	case depth >= 0.8:
		return 9
	case depth >= 0.5:
		return 6
	default:
		return 3
	}
}

// Elaborate pide al LLM una elaboracion de la respuesta del oraculo usando
// reflexiones pasadas como contexto. Si el LLM falla devuelve el mensaje base.
func (s *OracleService) Elaborate(ctx context.Context, userID string, result JournalResult) string {
	if s.llmClient == nil {
		return result.Oracle.Message
	}

	var memories string
	if s.reflections != nil {
		memories = s.reflections.RecallContext(ctx, userID, result.Entry.Content)
	}

	prompt := buildElaborationPrompt(result, memories)
	response, err := s.llmClient.Generate(ctx, prompt)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("llm elaboration failed", zap.Error(err), zap.String("user_id", userID))
		}
		return result.Oracle.Message
	}
	response = strings.TrimSpace(response)
	if response == "" {
		return result.Oracle.Message
	}
	return response
}

func buildElaborationPrompt(result JournalResult, memories string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are the %s oracle, speaking as %s.\n",
		result.Oracle.Element, result.Oracle.Archetype))
	sb.WriteString(fmt.Sprintf("The seeker wrote: %q\n", result.Entry.Content))
	sb.WriteString(fmt.Sprintf("Their attention mode is %s and liminal mode is %s.\n",
		result.Attention.Mode, result.Liminal.Mode))
	if memories != "" {
		sb.WriteString(memories)
	}
	sb.WriteString("Base guidance: ")
	sb.WriteString(result.Oracle.Message)
	sb.WriteString("\nRespond in two or three sentences, in the oracle's voice, without repeating the base guidance verbatim.")
	return sb.String()
}

// DailyGuidance devuelve la guia del dia para el usuario, memoizada por fecha.
func (s *OracleService) DailyGuidance(ctx context.Context, userID string) (string, error) {
	compute := func() (string, error) {
		userCtx := domain.UserContext{CurrentPhase: domain.PhaseInitiation}
		var guidance domain.PhaseGuidance
		if s.phases != nil {
			data, err := s.phases.Get(ctx, userID)
			if err != nil {
				return "", err
			}
			userCtx.CurrentPhase = data.CurrentPhase
			guidance, err = s.phases.Guidance(ctx, userID)
			if err != nil {
				return "", err
			}
		} else {
			guidance = oracle.NewGating().Guidance(userCtx.CurrentPhase)
		}

		response := s.registry.Agent(bestElementFor(guidance)).Respond("", userCtx)
		return fmt.Sprintf("%s Focus for this phase: %s.", response.Message, guidance.Focus), nil
	}

	if s.memo != nil {
		return s.memo.MemoDaily(userID, compute)
	}
	return compute()
}

// bestElementFor elige el elemento con mayor afinidad para la fase.
func bestElementFor(guidance domain.PhaseGuidance) domain.Element {
	best := domain.ElementAether
	bestScore := 0.0
	for _, el := range domain.AllElements {
		if score := guidance.ElementAffinities[el]; score > bestScore {
			best = el
			bestScore = score
		}
	}
	return best
}

// InterpretDream rutea el simbolo al elemento que mas resuena y delega la
// interpretacion al agente.
func (s *OracleService) InterpretDream(ctx context.Context, userID, symbol string) (string, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return "", errors.New("empty dream symbol")
	}

	userCtx := domain.UserContext{CurrentPhase: domain.PhaseInitiation}
	if s.phases != nil {
		if data, err := s.phases.Get(ctx, userID); err == nil {
			userCtx.CurrentPhase = data.CurrentPhase
		}
	}

	agent := s.registry.Agent(oracle.RouteElement(symbol))
	return agent.InterpretSymbol(symbol, userCtx), nil
}

// ListEntries devuelve las entradas persistidas mas recientes del usuario.
func (s *OracleService) ListEntries(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error) {
	entries, err := s.entries.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	return entries, nil
}

// History expone el ledger de un evaluador para dashboards.
func (s *OracleService) History(scorer string, limit int) []scoring.HistoryEntry {
	switch scorer {
	case "liminal":
		return s.liminal.History(limit)
	default:
		return s.attention.History(limit)
	}
}
