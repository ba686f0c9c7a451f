package scoring

import (
	"fmt"
	"testing"
	"time"
)

func TestLedgerEvictsOldestBeyondCap(t *testing.T) {
	l := NewLedger(5)
	for i := 0; i < 12; i++ {
		l.Record(HistoryEntry{
			Timestamp: time.Unix(int64(i), 0),
			Mode:      fmt.Sprintf("m%d", i),
		})
	}

	if l.Len() != 5 {
		t.Fatalf("expected ledger length 5, got %d", l.Len())
	}

	got := l.Query(5)
	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}
	// Deben quedar las 5 mas recientes, en orden de insercion.
	for i, e := range got {
		want := fmt.Sprintf("m%d", 7+i)
		if e.Mode != want {
			t.Fatalf("entry %d: expected %q, got %q", i, want, e.Mode)
		}
	}
}

func TestLedgerQueryLimits(t *testing.T) {
	l := NewLedger(10)
	if got := l.Query(3); got != nil {
		t.Fatalf("expected nil for empty ledger, got %v", got)
	}

	l.Record(HistoryEntry{Mode: "a"})
	l.Record(HistoryEntry{Mode: "b"})

	if got := l.Query(0); got != nil {
		t.Fatalf("expected nil for limit 0, got %v", got)
	}
	got := l.Query(10)
	if len(got) != 2 || got[1].Mode != "b" {
		t.Fatalf("expected [a b], got %v", got)
	}
}
