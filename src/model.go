package src

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/statline-ai/statline/src/ui"
)

const welcomeText = "Welcome to Statline! Ask about 2024 MLB batting stats to get started."

// askChunkMsg carries one streamed fragment of an in-flight answer.
type askChunkMsg struct {
	id    string
	chunk string
}

// askDoneMsg is sent once when an in-flight answer finishes, fails, or is
// cancelled.
type askDoneMsg struct {
	id  string
	err error
}

type model struct {
	ctx      context.Context
	engine   *Engine
	dbLabel  string
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	isThinking bool
	thinking   string
	turns      []ui.QA
	question   string
	answer     string
	askID      string
	cancelAsk  context.CancelFunc

	width  int
	height int
	style  ui.Styles

	Program *tea.Program
	mu      sync.Mutex
}

func NewModel(ctx context.Context, engine *Engine, dbLabel string) *model {
	ta := textarea.New()
	ta.Placeholder = "Ask about baseball stats..."
	ta.Focus()
	ta.SetHeight(3)

	st := ui.NewStyles()

	vp := viewport.New(0, 0)
	vp.SetContent(welcomeText)

	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = st.Thinking

	return &model{
		ctx:      ctx,
		engine:   engine,
		dbLabel:  dbLabel,
		textarea: ta,
		viewport: vp,
		spinner:  s,
		style:    st,
	}
}

func (m *model) Init() tea.Cmd { return nil }
