package session

import (
	"context"

	"github.com/looplab/fsm"

	"lodestone/internal/config/logger"
)

// FSM states
const (
	Idle    = "idle"
	Loading = "loading"
	Viewing = "viewing"
	Tailing = "tailing"
	Closed  = "closed"
)

// FSM events
const (
	Load   = "load"
	Loaded = "loaded"
	Fail   = "fail"
	Attach = "attach"
	Close  = "close"
)

// FSM callbacks
const (
	OnClosed = "enter_closed"
)

// newSessionFSM creates the lifecycle state machine for a viewing session.
// Switching sources goes back through loading, so inherited parser state
// never leaks between files; entering closed releases the live subscription.
func newSessionFSM(s *Session, log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		Idle,
		fsm.Events{
			{Name: Load, Src: []string{Idle, Viewing, Tailing}, Dst: Loading},
			{Name: Loaded, Src: []string{Loading}, Dst: Viewing},
			{Name: Fail, Src: []string{Loading}, Dst: Idle},
			{Name: Attach, Src: []string{Idle, Viewing}, Dst: Tailing},
			{Name: Close, Src: []string{Idle, Loading, Viewing, Tailing}, Dst: Closed},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("SESSION %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
			OnClosed: func(ctx context.Context, e *fsm.Event) {
				s.release()
			},
		},
	)
}
