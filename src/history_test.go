package src

import (
	"fmt"
	"testing"
)

func TestHistoryEvictsOldestPastCap(t *testing.T) {
	var h History
	for i := 1; i <= 8; i++ {
		h.Add(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
	}
	turns := h.Turns()
	if len(turns) != maxHistoryTurns {
		t.Fatalf("history length = %d, want %d", len(turns), maxHistoryTurns)
	}
	if turns[0].Question != "q4" || turns[len(turns)-1].Question != "q8" {
		t.Fatalf("wrong window: first %q last %q", turns[0].Question, turns[len(turns)-1].Question)
	}
	for i, turn := range turns {
		want := fmt.Sprintf("a%d", i+4)
		if turn.Answer != want {
			t.Errorf("turn %d answer = %q, want %q", i, turn.Answer, want)
		}
	}
}

func TestHistoryClearIsIdempotent(t *testing.T) {
	var h History
	h.Add("q", "a")
	h.Clear()
	h.Clear()
	if h.Len() != 0 {
		t.Fatalf("history not empty after clear: %d turns", h.Len())
	}
}

func TestHistoryTurnsReturnsCopy(t *testing.T) {
	var h History
	h.Add("q", "a")
	turns := h.Turns()
	turns[0].Answer = "mutated"
	if h.Turns()[0].Answer != "a" {
		t.Fatal("caller mutation leaked into history")
	}
}
