package scoring

import (
	"math/rand"
	"sync"
	"time"
)

// Engine encadena banco de predicados, aggregator de dimensiones, clasificador
// de modo, ledger de historia y selector de guidance. Todo el flujo es
// sincronico y en memoria; ScoreAndGuide nunca devuelve error: un input
// malformado degrada a los defaults neutros de cada dimension.
type Engine struct {
	name       string
	predicates []Predicate
	dimensions []Dimension
	modes      []ModeRule
	guidance   []GuidanceRule

	mu       sync.Mutex
	ledger   *Ledger
	patterns *PatternStore
	rng      *rand.Rand
	now      func() time.Time
}

// Config agrupa las piezas de un scorer concreto. Rand es inyectable para
// tests deterministas; nil usa una semilla por reloj.
type Config struct {
	Name       string
	Predicates []Predicate
	Dimensions []Dimension
	Modes      []ModeRule
	Guidance   []GuidanceRule
	HistoryCap int
	Rand       *rand.Rand
}

// Result es la salida estructurada de una evaluacion.
type Result struct {
	Scores   map[string]float64 `json:"scores"`
	Mode     string             `json:"mode"`
	Guidance string             `json:"guidance"`
}

func NewEngine(cfg Config) *Engine {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		name:       cfg.Name,
		predicates: cfg.Predicates,
		dimensions: cfg.Dimensions,
		modes:      cfg.Modes,
		guidance:   cfg.Guidance,
		ledger:     NewLedger(cfg.HistoryCap),
		patterns:   NewPatternStore(),
		rng:        rng,
		now:        time.Now,
	}
}

// Name identifica la instancia del scorer (attention, liminal).
func (e *Engine) Name() string {
	return e.name
}

// ScoreAndGuide evalua el input, registra el snapshot en el ledger, actualiza
// el patron caracteristico del contexto y selecciona la guidance final.
// El mutex permite compartir una instancia entre requests; el despliegue
// recomendado sigue siendo un scorer por sesion para no mezclar patrones.
func (e *Engine) ScoreAndGuide(in Input, contextLabel string) Result {
	results := evalPredicates(e.predicates, in)
	scores := aggregate(e.dimensions, results)
	mode := classify(e.modes, scores)

	e.mu.Lock()
	e.ledger.Record(HistoryEntry{
		Timestamp:    e.now().UTC(),
		Scores:       snapshot(scores),
		ContextLabel: contextLabel,
		Mode:         mode,
	})
	e.patterns.Observe(contextLabel, scores)
	guidance := selectGuidance(e.guidance, mode, scores, e.rng)
	e.mu.Unlock()

	return Result{Scores: scores, Mode: mode, Guidance: guidance}
}

// History devuelve las ultimas limit evaluaciones, la mas reciente al final.
func (e *Engine) History(limit int) []HistoryEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Query(limit)
}

// Characteristic expone el promedio EMA de una dimension para un contexto.
func (e *Engine) Characteristic(contextLabel, dimension string) (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.patterns.Characteristic(contextLabel, dimension)
}

// snapshot copia los scores para que las entradas del ledger sean inmutables.
func snapshot(scores map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for k, v := range scores {
		out[k] = v
	}
	return out
}
