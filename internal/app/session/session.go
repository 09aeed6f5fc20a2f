package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/looplab/fsm"

	"lodestone/internal/app/backend"
	"lodestone/internal/app/errors"
	"lodestone/internal/app/gamelog"
	"lodestone/internal/app/logstore"
	"lodestone/internal/config/logger"
)

// Sink receives freshly parsed lines from a live tail. It is called from the
// session's single consumer goroutine, so deliveries arrive in parse order.
type Sink func(lines []gamelog.Line)

// Session is one log-viewing session. It owns the stateful parser
// exclusively; accumulation belongs to the consuming view. Switching sources
// resets the parser so inheritance never leaks between files, and closing
// releases the live subscription on every exit path.
type Session struct {
	client  backend.Client
	probe   Probe
	parser  *gamelog.Parser
	machine *fsm.FSM
	log     logger.Logger

	mu       sync.Mutex
	instance string
	sink     Sink
	cancel   context.CancelFunc
	done     chan struct{}
}

// New creates an idle session
func New(client backend.Client, probe Probe, log logger.Logger) *Session {
	s := &Session{
		client: client,
		probe:  probe,
		parser: gamelog.NewParser(),
		log:    log.WithComponent("SESSION"),
	}

	s.machine = newSessionFSM(s, s.log)

	return s
}

// SetSink registers the consumer for live-tail deliveries
func (s *Session) SetSink(sink Sink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sink = sink
}

// State returns the current lifecycle state
func (s *Session) State() string {
	return s.machine.Current()
}

// ParserState exposes the parser's session state for diagnostics
func (s *Session) ParserState() gamelog.State {
	return s.parser.State()
}

// Open views an instance's game log, picking live-tail mode when its game
// process is running and static mode otherwise. The returned bool reports
// whether the session is tailing.
func (s *Session) Open(ctx context.Context, inst Instance) ([]gamelog.Line, bool, error) {
	if s.probe.Alive(inst) {
		lines, err := s.AttachLive(ctx, inst.Name)

		return lines, err == nil, err
	}

	lines, err := s.LoadStatic(ctx, inst.Name)

	return lines, false, err
}

// LoadStatic fetches the full current log content of an instance and parses
// it in one call. Any previous live subscription is released first.
func (s *Session) LoadStatic(ctx context.Context, instance string) ([]gamelog.Line, error) {
	if s.machine.Current() == Closed {
		return nil, errors.ErrSessionClosed
	}

	s.release()

	if err := s.machine.Event(ctx, Load); err != nil {
		return nil, err
	}

	content, err := s.fetchContent(ctx, instance)
	if err != nil {
		_ = s.machine.Event(ctx, Fail)

		return nil, err
	}

	s.mu.Lock()
	s.instance = instance
	s.mu.Unlock()

	s.parser.Reset(true)
	lines := s.parser.Parse(content)

	if err := s.machine.Event(ctx, Loaded); err != nil {
		return nil, err
	}

	return lines, nil
}

// AttachLive loads the instance's current content, then subscribes to its
// process output stream. Chunks are parsed by a single goroutine in arrival
// order and handed to the sink; the subscription is released exactly once,
// on the next source switch or on Close.
func (s *Session) AttachLive(ctx context.Context, instance string) ([]gamelog.Line, error) {
	lines, err := s.LoadStatic(ctx, instance)
	if err != nil {
		return nil, err
	}

	subCtx, cancel := context.WithCancel(context.Background())

	events, err := s.client.Subscribe(subCtx, backend.EventProcessOutput)
	if err != nil {
		cancel()

		return nil, err
	}

	if err := s.machine.Event(ctx, Attach); err != nil {
		cancel()

		return nil, err
	}

	done := make(chan struct{})

	s.mu.Lock()
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	go s.consume(events, done)

	return lines, nil
}

// Export joins the raw text of the given lines and hands the payload to the
// backend's upload command, returning the published URL
func (s *Session) Export(ctx context.Context, lines []gamelog.Line) (string, error) {
	if len(lines) == 0 {
		return "", errors.ErrNothingToExport
	}

	s.mu.Lock()
	instance := s.instance
	s.mu.Unlock()

	args := backend.UploadLogArgs{Instance: instance, Content: logstore.JoinRaw(lines)}

	raw, err := s.client.Invoke(ctx, backend.CommandUploadLog, args)
	if err != nil {
		return "", err
	}

	var data backend.UploadLogData
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrFailedToReadBackend, err)
	}

	return data.URL, nil
}

// Close ends the session, releasing the subscription if one is active
func (s *Session) Close(ctx context.Context) error {
	if s.machine.Current() == Closed {
		return nil
	}

	return s.machine.Event(ctx, Close)
}

// consume feeds subscribed output chunks through the parser in arrival
// order. Events for other instances are skipped; the loop ends when the
// subscription channel closes.
func (s *Session) consume(events <-chan backend.Event, done chan struct{}) {
	defer close(done)

	for event := range events {
		if event.Name != backend.EventProcessOutput {
			continue
		}

		s.mu.Lock()
		instance := s.instance
		sink := s.sink
		s.mu.Unlock()

		if event.Target != instance {
			continue
		}

		lines := s.parser.Parse(event.Message)

		if sink != nil && len(lines) > 0 {
			sink(lines)
		}
	}
}

// release cancels the live subscription and waits for the consumer
// goroutine to finish, so the parser is never touched concurrently
func (s *Session) release() {
	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.cancel = nil
	s.done = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	if done != nil {
		<-done
	}
}

// fetchContent runs the backend's bulk content command
func (s *Session) fetchContent(ctx context.Context, instance string) (string, error) {
	raw, err := s.client.Invoke(ctx, backend.CommandLogContent, backend.LogContentArgs{Instance: instance})
	if err != nil {
		return "", err
	}

	var data backend.LogContentData
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrFailedToReadBackend, err)
	}

	return data.Content, nil
}
