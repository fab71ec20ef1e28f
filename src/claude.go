package src

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	anthropicVersion = "2023-06-01"
	defaultBaseURL   = "https://api.anthropic.com"
	messagesPath     = "/v1/messages"

	routeMaxTokens  = 256
	answerMaxTokens = 1024
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-5-20250929"

// ErrMissingAPIKey means no credential was available at client
// construction. Nothing is sent over the network in that case.
var ErrMissingAPIKey = errors.New("ANTHROPIC_API_KEY is not set")

// TransportError is a non-2xx reply from the messages endpoint. The
// response body is preserved verbatim.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("anthropic api: status %d: %s", e.StatusCode, e.Body)
}

// DecodeError is a malformed payload inside an otherwise successful
// reply.
type DecodeError struct {
	Detail string
}

func (e *DecodeError) Error() string {
	return "decode anthropic reply: " + e.Detail
}

// RouteKind is the coarse classification of a question.
type RouteKind int

const (
	RouteSimple RouteKind = iota
	RouteStreak
	RouteExplain
)

func (k RouteKind) String() string {
	switch k {
	case RouteStreak:
		return "streak"
	case RouteExplain:
		return "explain"
	default:
		return "simple"
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	System    string        `json:"system,omitempty"`
	Messages  []chatMessage `json:"messages"`
	Stream    bool          `json:"stream,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

// streamEvent is the subset of SSE payloads that carries answer text.
type streamEvent struct {
	Type  string `json:"type"`
	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
}

// ClaudeClient calls the Anthropic messages API over plain HTTP. It is
// stateless between calls: history is passed in explicitly every time.
type ClaudeClient struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClaudeClient fails fast when the credential is missing so no
// request is ever attempted without one.
func NewClaudeClient(apiKey, model string) (*ClaudeClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	return &ClaudeClient{
		APIKey:     apiKey,
		Model:      model,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{},
	}, nil
}

// Route classifies a question. The reply is inspected for tier
// keywords rather than parsed as strict JSON; anything unrecognized
// falls back to the simple lookup tier.
func (c *ClaudeClient) Route(ctx context.Context, question string, history []Turn) (RouteKind, error) {
	reply, err := c.complete(ctx, RouterPrompt, withHistory(history, question), routeMaxTokens)
	if err != nil {
		return RouteSimple, err
	}
	lower := strings.ToLower(reply)
	switch {
	case strings.Contains(lower, "streak"):
		return RouteStreak, nil
	case strings.Contains(lower, "explain"):
		return RouteExplain, nil
	default:
		return RouteSimple, nil
	}
}

// GenerateSQL asks for a single SQLite query. Callers must run the
// result through SanitizeSQL before use; it may also be one of the
// OFF_TOPIC / NO_DATA sentinels.
func (c *ClaudeClient) GenerateSQL(ctx context.Context, question string, history []Turn) (string, error) {
	return c.complete(ctx, SQLGenerationPrompt, withHistory(history, question), answerMaxTokens)
}

// StreamAnswer narrates SQL results back to the user.
func (c *ClaudeClient) StreamAnswer(ctx context.Context, question, sqlText, results string, history []Turn) (*Stream, error) {
	content := fmt.Sprintf("Question: %s\n\nSQL executed: %s\n\nResults:\n%s", question, sqlText, results)
	return c.stream(ctx, AnswerGenerationPrompt, withHistory(history, content), answerMaxTokens)
}

// StreamStreaks narrates precomputed streak data, including any
// sensitive-fallback annotation appended to it.
func (c *ClaudeClient) StreamStreaks(ctx context.Context, question, streakData string, history []Turn) (*Stream, error) {
	content := fmt.Sprintf("Question: %s\n\nStreak data:\n%s", question, streakData)
	return c.stream(ctx, StreakAnswerPrompt, withHistory(history, content), answerMaxTokens)
}

// StreamExplanation answers a definitional question with no dataset
// involvement.
func (c *ClaudeClient) StreamExplanation(ctx context.Context, question string, history []Turn) (*Stream, error) {
	return c.stream(ctx, ExplainStatPrompt, withHistory(history, question), answerMaxTokens)
}

// withHistory flattens prior turns into alternating user/assistant
// messages ahead of the final user message.
func withHistory(history []Turn, content string) []chatMessage {
	msgs := make([]chatMessage, 0, 2*len(history)+1)
	for _, turn := range history {
		msgs = append(msgs,
			chatMessage{Role: "user", Content: turn.Question},
			chatMessage{Role: "assistant", Content: turn.Answer},
		)
	}
	return append(msgs, chatMessage{Role: "user", Content: content})
}

func (c *ClaudeClient) newRequest(ctx context.Context, payload messagesRequest) (*http.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	return req, nil
}

func (c *ClaudeClient) complete(ctx context.Context, system string, msgs []chatMessage, maxTokens int) (string, error) {
	req, err := c.newRequest(ctx, messagesRequest{
		Model:     c.Model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  msgs,
	})
	if err != nil {
		return "", err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call anthropic: %w", err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return "", err
	}
	var decoded messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", &DecodeError{Detail: err.Error()}
	}
	if len(decoded.Content) == 0 {
		return "", &DecodeError{Detail: "response has no content blocks"}
	}
	if decoded.Content[0].Type != "text" {
		return "", &DecodeError{Detail: "first content block is not text"}
	}
	return strings.TrimSpace(decoded.Content[0].Text), nil
}

// Stream delivers answer text incrementally. Consume Chunks until it
// closes, then check Err. Cancel tears down the underlying request;
// chunks already buffered may still drain afterwards.
type Stream struct {
	chunks chan string
	err    error
	cancel context.CancelFunc
}

func (s *Stream) Chunks() <-chan string {
	return s.chunks
}

// Err reports how the stream ended. Only valid after Chunks closes.
func (s *Stream) Err() error {
	return s.err
}

func (s *Stream) Cancel() {
	s.cancel()
}

func (c *ClaudeClient) stream(ctx context.Context, system string, msgs []chatMessage, maxTokens int) (*Stream, error) {
	ctx, cancel := context.WithCancel(ctx)
	req, err := c.newRequest(ctx, messagesRequest{
		Model:     c.Model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  msgs,
		Stream:    true,
	})
	if err != nil {
		cancel()
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("call anthropic: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		cancel()
		return nil, err
	}

	s := &Stream{chunks: make(chan string, 16), cancel: cancel}
	go func() {
		defer close(s.chunks)
		defer resp.Body.Close()
		defer cancel()
		s.err = readSSE(ctx, resp.Body, s.chunks)
	}()
	return s, nil
}

// readSSE consumes data: frames until [DONE], forwarding the text of
// content_block_delta events. Frames of other types are skipped; a
// frame that fails to decode ends the stream with a DecodeError.
func readSSE(ctx context.Context, r io.Reader, out chan<- string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		payload := strings.TrimPrefix(line, "data: ")
		if payload == "[DONE]" {
			return nil
		}
		var evt streamEvent
		if err := json.Unmarshal([]byte(payload), &evt); err != nil {
			return &DecodeError{Detail: err.Error()}
		}
		if evt.Type != "content_block_delta" || evt.Delta.Text == "" {
			continue
		}
		select {
		case out <- evt.Delta.Text:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("read stream: %w", err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return &TransportError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
