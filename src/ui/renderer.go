package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const Logo = `
███████╗████████╗ █████╗ ████████╗██╗     ██╗███╗   ██╗███████╗
██╔════╝╚══██╔══╝██╔══██╗╚══██╔══╝██║     ██║████╗  ██║██╔════╝
███████╗   ██║   ███████║   ██║   ██║     ██║██╔██╗ ██║█████╗
╚════██║   ██║   ██╔══██║   ██║   ██║     ██║██║╚██╗██║██╔══╝
███████║   ██║   ██║  ██║   ██║   ███████╗██║██║ ╚████║███████╗
╚══════╝   ╚═╝   ╚═╝  ╚═╝   ╚═╝   ╚══════╝╚═╝╚═╝  ╚═══╝╚══════╝
          B A S E B A L L  ·  S T A T S  ·  A N S W E R E D
`

// RenderConversation renders the full transcript: committed turns first,
// then the in-flight exchange if one is still streaming.
func RenderConversation(c Conversation, st Styles, width int) string {
	var b strings.Builder
	for _, qa := range c.Turns {
		b.WriteString(renderQA(qa, false, st, width))
	}
	if c.Pending != nil {
		b.WriteString(renderQA(*c.Pending, true, st, width))
	}
	return b.String()
}

func renderQA(qa QA, streaming bool, st Styles, width int) string {
	var b strings.Builder
	b.WriteString(st.Accent.Render("You:") + "\n" + qa.Question + "\n\n")
	b.WriteString(st.Thinking.Render("Statline:") + "\n")
	if qa.Err != "" {
		b.WriteString(st.Error.Render(fmt.Sprintf("❌ %s", qa.Err)) + "\n\n")
		return b.String()
	}
	b.WriteString(RenderSegments(ParseSegments(qa.Answer, streaming), st, width))
	b.WriteString("\n")
	return b.String()
}

// RenderSegments renders parsed answer segments: prose wrapped to width,
// grids as aligned tables, the tail of a still-open grid with a subtle
// streaming marker.
func RenderSegments(segs []Segment, st Styles, width int) string {
	var parts []string
	for _, seg := range segs {
		switch seg.Kind {
		case SegmentText:
			text := strings.TrimSpace(seg.Text)
			if width > 0 {
				text = lipgloss.NewStyle().Width(width).Render(text)
			}
			parts = append(parts, text)
		case SegmentGrid:
			parts = append(parts, renderGrid(seg.Grid, st))
		case SegmentPartialGrid:
			marker := st.Subtle.Render("…")
			if grid := renderGrid(seg.Grid, st); grid != "" {
				parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, grid, marker))
			} else {
				parts = append(parts, marker)
			}
		}
	}
	return strings.Join(parts, "\n") + "\n"
}

// renderGrid lays a stat block out as padded columns. When any row has a
// label the label column leads without a header of its own.
func renderGrid(g *Grid, st Styles) string {
	if g == nil || (len(g.Headers) == 0 && len(g.Rows) == 0) {
		return ""
	}

	hasLabels := false
	labelWidth := 0
	for _, r := range g.Rows {
		if r.Label != "" {
			hasLabels = true
		}
		if w := lipgloss.Width(r.Label); w > labelWidth {
			labelWidth = w
		}
	}

	ncols := len(g.Headers)
	for _, r := range g.Rows {
		if len(r.Values) > ncols {
			ncols = len(r.Values)
		}
	}
	widths := make([]int, ncols)
	for i, h := range g.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range g.Rows {
		for i, v := range r.Values {
			if lipgloss.Width(v) > widths[i] {
				widths[i] = lipgloss.Width(v)
			}
		}
	}

	var lines []string
	if len(g.Headers) > 0 {
		cells := make([]string, 0, ncols+1)
		if hasLabels {
			cells = append(cells, pad("", labelWidth))
		}
		for i := 0; i < ncols; i++ {
			h := ""
			if i < len(g.Headers) {
				h = g.Headers[i]
			}
			cells = append(cells, pad(h, widths[i]))
		}
		lines = append(lines, st.GridHeader.Render(strings.Join(cells, "  ")))
	}
	for _, r := range g.Rows {
		cells := make([]string, 0, ncols+1)
		if hasLabels {
			cells = append(cells, st.GridLabel.Render(pad(r.Label, labelWidth)))
		}
		for i := 0; i < ncols; i++ {
			v := ""
			if i < len(r.Values) {
				v = r.Values[i]
			}
			cells = append(cells, pad(v, widths[i]))
		}
		lines = append(lines, strings.Join(cells, "  "))
	}

	return st.GridBox.Render(strings.Join(lines, "\n"))
}

func pad(s string, w int) string {
	if d := w - lipgloss.Width(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
