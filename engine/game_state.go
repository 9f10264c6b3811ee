package engine

// Phase is the session state, GAME_OVER is terminal
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "RUNNING"
	case PhaseGameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}

// EndReason records what ended the session
type EndReason int

const (
	EndReasonNone EndReason = iota
	EndReasonQuit
	EndReasonLivesExhausted
	EndReasonInterrupted
)

// String returns a human-readable reason
func (r EndReason) String() string {
	switch r {
	case EndReasonQuit:
		return "quit"
	case EndReasonLivesExhausted:
		return "lives exhausted"
	case EndReasonInterrupted:
		return "interrupted"
	}
	return "none"
}
