package ui

// QA is one question/answer exchange as shown in the transcript. Err is
// set instead of Answer when the ask failed.
type QA struct {
	Question string
	Answer   string
	Err      string
}

// Conversation contains all the data required to render the transcript.
// This decouples the renderer from the bubbletea model. Pending, when
// non-nil, is the in-flight exchange whose answer is still streaming.
type Conversation struct {
	Turns   []QA
	Pending *QA
}
