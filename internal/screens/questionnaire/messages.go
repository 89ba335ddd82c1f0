package questionnaire

import "github.com/infinitelife/pulse/internal/engine"

// answerResultMsg is sent when a submitted answer has been processed.
type answerResultMsg struct {
	Snap *engine.Snapshot
	Err  error
}

// prevResultMsg is sent when a step back has been processed.
type prevResultMsg struct {
	Snap *engine.Snapshot
	Err  error
}

// stateLoadedMsg is sent when the stored session has been fetched.
type stateLoadedMsg struct {
	Snap *engine.Snapshot
	Err  error
}
