package src

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/statline-ai/statline/src/ui"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.viewHeader())
		footerHeight := lipgloss.Height(m.viewFooter())
		m.width, m.height = msg.Width, msg.Height
		m.textarea.SetWidth(m.width - 2)                                                     // -2 for border
		m.viewport.Width = m.width - 2                                                       // -2 for border
		m.viewport.Height = m.height - headerHeight - footerHeight - m.textarea.Height() - 4 // -4 for subtitle, thinking, borders
		m.renderTranscript()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {

		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.isThinking && m.cancelAsk != nil {
				m.cancelAsk()
			}
			return m, nil

		case "enter":
			question := strings.TrimSpace(m.textarea.Value())
			if question == "" || m.isThinking {
				return m, nil
			}
			m.textarea.Reset()
			if question == "/clear" {
				m.engine.ClearHistory()
				m.turns = nil
				m.viewport.SetContent("Conversation cleared. " + welcomeText)
				return m, nil
			}
			return m, m.startAsk(question)
		}

	case askChunkMsg:
		if msg.id != m.askID {
			return m, nil
		}
		m.answer += msg.chunk
		m.renderTranscript()
		return m, nil

	case askDoneMsg:
		if msg.id != m.askID {
			return m, nil
		}
		m.isThinking = false
		m.thinking = ""
		m.askID = ""
		m.cancelAsk = nil
		qa := ui.QA{Question: m.question, Answer: m.answer}
		if msg.err != nil {
			qa.Answer = ""
			qa.Err = msg.err.Error()
			if errors.Is(msg.err, context.Canceled) {
				qa.Err = "cancelled"
			}
		}
		m.turns = append(m.turns, qa)
		m.question, m.answer = "", ""
		m.renderTranscript()
		return m, nil
	}

	var taCmd, vpCmd tea.Cmd
	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	cmd := tea.Batch(taCmd, vpCmd)

	if m.isThinking {
		var spinnerCmd tea.Cmd
		m.spinner, spinnerCmd = m.spinner.Update(msg)
		cmd = tea.Batch(cmd, spinnerCmd)
	}
	return m, cmd
}

// startAsk launches the engine in a worker goroutine and streams the answer
// back into the update loop via Program.Send. Messages carry the ask id so
// a cancelled ask's stragglers are discarded.
func (m *model) startAsk(question string) tea.Cmd {
	askCtx, cancel := context.WithCancel(m.ctx)
	id := uuid.NewString()

	m.askID = id
	m.cancelAsk = cancel
	m.question = question
	m.answer = ""
	m.isThinking = true
	m.thinking = "checking the box score"
	m.renderTranscript()

	go func() {
		defer cancel()
		stream, err := m.engine.Ask(askCtx, question)
		if err != nil {
			m.send(askDoneMsg{id: id, err: err})
			return
		}
		for chunk := range stream.Chunks() {
			m.send(askChunkMsg{id: id, chunk: chunk})
		}
		m.send(askDoneMsg{id: id, err: stream.Err()})
	}()

	return m.spinner.Tick
}

func (m *model) send(msg tea.Msg) {
	m.mu.Lock()
	p := m.Program
	m.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func (m *model) renderTranscript() {
	conv := ui.Conversation{Turns: m.turns}
	if m.askID != "" {
		conv.Pending = &ui.QA{Question: m.question, Answer: m.answer}
	}
	m.viewport.SetContent(ui.RenderConversation(conv, m.style, m.viewport.Width))
	m.viewport.GotoBottom()
}
