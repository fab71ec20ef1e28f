package src

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Fixed user-facing messages for soft outcomes. These become the
// recorded answer for their ask without any model call.
const (
	offTopicMessage       = "I'm a baseball stats engine — ask me about player stats, leaders, averages, and more!"
	noDataMessage         = "I don't have the data needed for that question yet. Try asking about 2024 season batting stats!"
	streakSentinelMessage = "I don't have streak data for that query. Try asking about a specific player's streaks in 2024 or 2025."
	noStreakDataMessage   = "I don't have streak data for that player/season. Streak data is available for qualified batters (400+ PA) in 2024-2025."
	noResultsNote         = "No results found."
)

// Sentinels SQL generation may emit in place of a real query.
const (
	offTopicSentinel = "OFF_TOPIC"
	noDataSentinel   = "NO_DATA"
)

// Engine answers baseball questions end to end: route the question,
// generate and execute SQL, escalate sparse streak results, stream a
// narrated answer. One engine holds one conversation.
type Engine struct {
	llm      *ClaudeClient
	store    *Store
	resolver *StreakResolver
	log      *slog.Logger

	mu      sync.Mutex
	history History
}

func NewEngine(llm *ClaudeClient, store *Store, log *slog.Logger) *Engine {
	if log == nil {
		log = nopLogger()
	}
	return &Engine{
		llm:      llm,
		store:    store,
		resolver: NewStreakResolver(store, log),
		log:      log,
	}
}

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Ask answers one question. The returned stream delivers answer text
// incrementally: drain Chunks, then check Err. The exchange is added
// to history only after the stream completes cleanly, so a failed or
// cancelled ask leaves the conversation window untouched. Asks against
// the same engine must be serialized by the caller.
func (e *Engine) Ask(ctx context.Context, question string) (*Stream, error) {
	history := e.History()
	kind, err := e.llm.Route(ctx, question, history)
	if err != nil {
		return nil, err
	}
	e.log.Info("routed question", "kind", kind.String())

	var stream *Stream
	switch kind {
	case RouteExplain:
		stream, err = e.llm.StreamExplanation(ctx, question, history)
	case RouteStreak:
		stream, err = e.askStreak(ctx, question, history)
	default:
		stream, err = e.askSQL(ctx, question, history)
	}
	if err != nil {
		return nil, err
	}
	return e.record(question, stream), nil
}

// ClearHistory resets the conversation window. Safe to call repeatedly
// and while no ask is in flight.
func (e *Engine) ClearHistory() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.history.Clear()
}

// History returns a snapshot of the retained conversation window.
func (e *Engine) History() []Turn {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Turns()
}

func (e *Engine) askSQL(ctx context.Context, question string, history []Turn) (*Stream, error) {
	raw, err := e.llm.GenerateSQL(ctx, question, history)
	if err != nil {
		return nil, err
	}
	sqlText := SanitizeSQL(raw)
	if strings.Contains(sqlText, offTopicSentinel) {
		return fixedMessageStream(offTopicMessage), nil
	}
	if strings.Contains(sqlText, noDataSentinel) {
		return fixedMessageStream(noDataMessage), nil
	}

	res, err := e.store.Query(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	e.log.Info("executed generated query", "rows", len(res.Rows))

	targetsStreaks := strings.Contains(strings.ToLower(sqlText), "streaks")
	if targetsStreaks && res.Empty() {
		if data, ok := e.resolver.Escalate(ctx, sqlText); ok {
			return e.llm.StreamStreaks(ctx, question, data, history)
		}
	}

	results := noResultsNote
	if !res.Empty() {
		results = FormatResultTable(res)
	}
	if targetsStreaks && !res.Empty() {
		return e.llm.StreamStreaks(ctx, question, results, history)
	}
	return e.llm.StreamAnswer(ctx, question, sqlText, results, history)
}

func (e *Engine) askStreak(ctx context.Context, question string, history []Turn) (*Stream, error) {
	raw, err := e.llm.GenerateSQL(ctx, question, history)
	if err != nil {
		return nil, err
	}
	sqlText := SanitizeSQL(raw)
	if strings.Contains(sqlText, offTopicSentinel) || strings.Contains(sqlText, noDataSentinel) {
		return fixedMessageStream(streakSentinelMessage), nil
	}

	res, err := e.store.Query(ctx, sqlText)
	if err != nil {
		return nil, err
	}

	var data string
	switch {
	case res.Empty():
		escalated, ok := e.resolver.Escalate(ctx, sqlText)
		if !ok {
			return fixedMessageStream(noStreakDataMessage), nil
		}
		data = escalated
	case len(res.Rows) == 1:
		// A single segment means no change points were detected;
		// the sensitive tier may still know subtler stretches.
		data = FormatResultTable(res)
		if ann := e.resolver.Annotate(ctx, sqlText); ann != "" {
			data += "\n\n" + ann
		}
	default:
		data = FormatResultTable(res)
	}
	return e.llm.StreamStreaks(ctx, question, data, history)
}

// record wraps a stream so the finished exchange lands in history.
// Chunks are forwarded as they arrive; the full answer is committed
// only when the inner stream ends without error.
func (e *Engine) record(question string, inner *Stream) *Stream {
	out := &Stream{chunks: make(chan string, 16), cancel: inner.cancel}
	go func() {
		defer close(out.chunks)
		var buf strings.Builder
		for chunk := range inner.chunks {
			buf.WriteString(chunk)
			out.chunks <- chunk
		}
		if err := inner.Err(); err != nil {
			out.err = err
			return
		}
		e.mu.Lock()
		e.history.Add(question, buf.String())
		e.mu.Unlock()
	}()
	return out
}

// fixedMessageStream delivers a canned answer through the same stream
// interface as a model call.
func fixedMessageStream(text string) *Stream {
	s := &Stream{chunks: make(chan string, 1), cancel: func() {}}
	s.chunks <- text
	close(s.chunks)
	return s
}

// FormatResultTable renders a result set as the plain pipe-delimited
// table fed into answer generation.
func FormatResultTable(res *QueryResult) string {
	header := strings.Join(res.Columns, " | ")
	lines := make([]string, 0, len(res.Rows)+2)
	lines = append(lines, header, strings.Repeat("-", len(header)))
	for _, row := range res.Rows {
		lines = append(lines, strings.Join(row, " | "))
	}
	return strings.Join(lines, "\n")
}
