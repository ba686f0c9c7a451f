package scoring

import "time"

// HistoryEntry es un snapshot inmutable de una evaluacion ya hecha.
type HistoryEntry struct {
	Timestamp    time.Time
	Scores       map[string]float64
	ContextLabel string
	Mode         string
}

// Ledger es un buffer FIFO acotado de evaluaciones pasadas. Al superar la
// capacidad se descarta la entrada mas vieja. No soporta escritores
// concurrentes; el Engine lo protege con su propio mutex.
type Ledger struct {
	cap     int
	entries []HistoryEntry
}

func NewLedger(capacity int) *Ledger {
	if capacity <= 0 {
		capacity = 1
	}
	return &Ledger{cap: capacity}
}

func (l *Ledger) Record(entry HistoryEntry) {
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.cap {
		l.entries = l.entries[len(l.entries)-l.cap:]
	}
}

// Query devuelve hasta limit entradas, la mas reciente al final.
func (l *Ledger) Query(limit int) []HistoryEntry {
	if limit <= 0 || len(l.entries) == 0 {
		return nil
	}
	if limit > len(l.entries) {
		limit = len(l.entries)
	}
	out := make([]HistoryEntry, limit)
	copy(out, l.entries[len(l.entries)-limit:])
	return out
}

func (l *Ledger) Len() int {
	return len(l.entries)
}
