package ui

import "strings"

// Wire tokens for structured stat blocks embedded in model output.
const (
	gridOpen        = "[STATGRID]"
	gridClose       = "[/STATGRID]"
	gridHeaderToken = "HEADER:"
	gridRowToken    = "ROW:"
)

type SegmentKind int

const (
	// SegmentText is plain prose.
	SegmentText SegmentKind = iota
	// SegmentGrid is a fully terminated stat grid.
	SegmentGrid
	// SegmentPartialGrid is a grid whose closing marker has not
	// arrived yet. Only ever the last segment, and only while the
	// source text is still streaming.
	SegmentPartialGrid
)

// Segment is one classified slice of a streamed answer.
type Segment struct {
	Kind SegmentKind
	Text string
	Grid *Grid
}

// Grid is a parsed stat block: column headers plus rows. A row may
// carry a label (player name, season) in which case the label's
// implicit header column is absent from Headers.
type Grid struct {
	Headers []string
	Rows    []GridRow
}

// GridRow holds one row's optional label and its cell values.
type GridRow struct {
	Label  string
	Values []string
}

// ParseSegments splits model output into prose and stat-grid segments.
// It is a pure function of the full buffer: stream consumers re-parse
// the whole accumulated text on every chunk, and a block that parsed
// as partial in one call upgrades to a complete grid in a later call
// without disturbing any segment before it. When streaming is false an
// unterminated block is kept as plain text.
func ParseSegments(text string, streaming bool) []Segment {
	var segs []Segment
	rest := text
	for {
		open := strings.Index(rest, gridOpen)
		if open < 0 {
			if strings.TrimSpace(rest) != "" {
				segs = append(segs, Segment{Kind: SegmentText, Text: rest})
			}
			return segs
		}
		if before := rest[:open]; strings.TrimSpace(before) != "" {
			segs = append(segs, Segment{Kind: SegmentText, Text: before})
		}
		body := rest[open+len(gridOpen):]
		closeAt := strings.Index(body, gridClose)
		if closeAt < 0 {
			if streaming {
				segs = append(segs, Segment{Kind: SegmentPartialGrid, Text: body, Grid: parseGrid(body)})
			} else {
				segs = append(segs, Segment{Kind: SegmentText, Text: rest})
			}
			return segs
		}
		segs = append(segs, Segment{Kind: SegmentGrid, Grid: parseGrid(body[:closeAt])})
		rest = body[closeAt+len(gridClose):]
	}
}

func parseGrid(body string) *Grid {
	g := &Grid{}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, gridHeaderToken):
			g.Headers = splitGridFields(strings.TrimPrefix(line, gridHeaderToken))
		case strings.HasPrefix(line, gridRowToken):
			fields := splitGridFields(strings.TrimPrefix(line, gridRowToken))
			if len(fields) == 0 {
				continue
			}
			row := GridRow{Values: fields}
			if !leadsNumeric(fields[0]) {
				row.Label, row.Values = fields[0], fields[1:]
			}
			g.Rows = append(g.Rows, row)
		}
	}
	return g
}

func splitGridFields(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// leadsNumeric reports whether a row's first cell reads as data rather
// than a label. Stat cells lead with a digit, a bare decimal point
// (.305), or a minus sign.
func leadsNumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || c == '.' || c == '-'
}
