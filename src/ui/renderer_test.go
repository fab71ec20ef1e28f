package ui

import (
	"strings"
	"testing"
)

func TestRenderConversationShowsQuestionAndAnswer(t *testing.T) {
	styles := NewStyles()
	conv := Conversation{
		Turns: []QA{{Question: "Who led the league in homers?", Answer: "Aaron Judge hit 58 home runs."}},
	}

	output := RenderConversation(conv, styles, 80)

	if !strings.Contains(output, "You:") {
		t.Errorf("Expected output to contain the question marker")
	}
	if !strings.Contains(output, "Who led the league in homers?") {
		t.Errorf("Expected output to contain the question")
	}
	if !strings.Contains(output, "Statline:") {
		t.Errorf("Expected output to contain the answer marker")
	}
	if !strings.Contains(output, "Aaron Judge hit 58 home runs.") {
		t.Errorf("Expected output to contain the answer")
	}
}

func TestRenderConversationShowsPendingExchange(t *testing.T) {
	styles := NewStyles()
	conv := Conversation{
		Turns:   []QA{{Question: "first question", Answer: "first answer"}},
		Pending: &QA{Question: "second question", Answer: "partial ans"},
	}

	output := RenderConversation(conv, styles, 80)

	for _, want := range []string{"first question", "first answer", "second question", "partial ans"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestRenderConversationShowsError(t *testing.T) {
	styles := NewStyles()
	conv := Conversation{
		Turns: []QA{{Question: "bad question", Err: "anthropic api: status 429: overloaded"}},
	}

	output := RenderConversation(conv, styles, 80)

	if !strings.Contains(output, "anthropic api: status 429: overloaded") {
		t.Errorf("Expected output to contain the error text")
	}
	if !strings.Contains(output, "❌") {
		t.Errorf("Expected output to mark the error")
	}
}

func TestRenderSegmentsGridAndProse(t *testing.T) {
	styles := NewStyles()
	text := "Top sluggers:\n" +
		"[STATGRID]\nHEADER: Player, HR\nROW: Aaron Judge, 58\nROW: Shohei Ohtani, 54\n[/STATGRID]\n" +
		"Quite a race."

	output := RenderSegments(ParseSegments(text, false), styles, 80)

	for _, want := range []string{"Top sluggers:", "Player", "HR", "Aaron Judge", "58", "Shohei Ohtani", "54", "Quite a race."} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
	if strings.Contains(output, "[STATGRID]") || strings.Contains(output, "ROW:") {
		t.Errorf("Expected grid wire tokens to be stripped from rendered output")
	}
}

func TestRenderSegmentsMarksPartialGrid(t *testing.T) {
	styles := NewStyles()
	text := "[STATGRID]\nHEADER: Player, HR\nROW: Aaron Judge, 58"

	output := RenderSegments(ParseSegments(text, true), styles, 80)

	if !strings.Contains(output, "Aaron Judge") {
		t.Errorf("Expected partial grid rows to render")
	}
	if !strings.Contains(output, "…") {
		t.Errorf("Expected streaming marker after a partial grid")
	}
}

func TestRenderGridWithoutLabelsHasNoLabelColumn(t *testing.T) {
	styles := NewStyles()
	g := &Grid{
		Headers: []string{"AVG", "OBP"},
		Rows:    []GridRow{{Values: []string{"0.322", "0.458"}}},
	}

	output := renderGrid(g, styles)

	if !strings.Contains(output, "0.322") || !strings.Contains(output, "0.458") {
		t.Errorf("Expected grid cells to render")
	}
}

func TestRenderGridEmpty(t *testing.T) {
	styles := NewStyles()
	if out := renderGrid(nil, styles); out != "" {
		t.Errorf("renderGrid(nil) = %q; want empty", out)
	}
	if out := renderGrid(&Grid{}, styles); out != "" {
		t.Errorf("renderGrid(empty) = %q; want empty", out)
	}
}

func TestPad(t *testing.T) {
	if got := pad("HR", 5); got != "HR   " {
		t.Errorf("pad(HR, 5) = %q", got)
	}
	if got := pad("longer", 3); got != "longer" {
		t.Errorf("pad(longer, 3) = %q", got)
	}
}

func TestNewStyles(t *testing.T) {
	styles := NewStyles()

	if styles.Accent.GetForeground() == nil {
		t.Errorf("Accent style should have a foreground color")
	}
	if styles.Header.GetPaddingLeft() < 0 {
		t.Errorf("Header style should be initialized")
	}
}
