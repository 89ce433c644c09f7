package orchestration

import "errors"

var (
	// ErrAlreadyRunning is returned by Run when the scheduler was already
	// started. A scheduler drives exactly one session.
	ErrAlreadyRunning = errors.New("session already running")

	// ErrNoActiveTurn is returned by SkipTurn outside an active turn.
	ErrNoActiveTurn = errors.New("no active turn")

	// ErrNoOpenCapture is returned by capture commands when no input window
	// is open.
	ErrNoOpenCapture = errors.New("no open capture window")

	// ErrUnknownBranch is returned by SubmitDecision for a branch id that is
	// not part of the configured decision.
	ErrUnknownBranch = errors.New("unknown decision branch")
)

// ConfigError reports invalid session setup. It is surfaced by New before any
// turn runs.
type ConfigError struct {
	Reason string
}

func (e ConfigError) Error() string {
	return "invalid session config: " + e.Reason
}
