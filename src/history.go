package src

// maxHistoryTurns bounds how much prior conversation gets replayed
// into every model call.
const maxHistoryTurns = 5

// Turn is one completed question/answer exchange.
type Turn struct {
	Question string
	Answer   string
}

// History is the rolling conversation window for one session, oldest
// turn first. Adding past the cap evicts from the front. Not safe for
// concurrent use on its own; the engine serializes access.
type History struct {
	turns []Turn
}

func (h *History) Add(question, answer string) {
	h.turns = append(h.turns, Turn{Question: question, Answer: answer})
	if len(h.turns) > maxHistoryTurns {
		h.turns = h.turns[len(h.turns)-maxHistoryTurns:]
	}
}

// Turns returns a copy of the retained window, oldest first.
func (h *History) Turns() []Turn {
	out := make([]Turn, len(h.turns))
	copy(out, h.turns)
	return out
}

func (h *History) Clear() {
	h.turns = nil
}

func (h *History) Len() int {
	return len(h.turns)
}
