package src

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/statline-ai/statline/src/ui"
)

func (m *model) View() string {
	header := m.viewHeader()
	body := m.viewChat()
	footer := m.viewFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *model) viewHeader() string {
	// By setting and then unsetting the background, we make the spaces in the
	// logo string transparent, so only the characters themselves are colored.
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AD8CFF")).Bold(true).
		Background(lipgloss.Color("#000000")).UnsetBackground()
	subtitle := m.style.Header.Render("Statline AI")
	styledLogo := logoStyle.Render(ui.Logo)

	return lipgloss.JoinVertical(lipgloss.Left, styledLogo, subtitle)
}

func (m *model) viewChat() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.style.Subtitle.Render(fmt.Sprintf("Database: %s", m.dbLabel)),
		m.viewport.View(),
		m.viewThinking(),
		m.textarea.View(),
	)
}

func (m *model) viewThinking() string {
	if !m.isThinking {
		return ""
	}
	return m.style.Thinking.Render(fmt.Sprintf("Statline %s %s", m.spinner.View(), m.thinking))
}

func (m *model) viewFooter() string {
	help := "enter: ask | /clear: reset conversation | ctrl+c: quit"
	if m.isThinking {
		help = "esc: cancel | ctrl+c: quit"
	}
	return m.style.Footer.Render(help)
}
