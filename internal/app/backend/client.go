//go:generate mockgen -source=client.go -destination=client_mock.go -package=backend
package backend

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"lodestone/internal/app/errors"
	"lodestone/internal/config"
	"lodestone/internal/config/logger"
)

// Client talks to the native launcher backend over its unix socket. The
// wire format is line-delimited JSON: invoke requests are answered with
// id-correlated results, subscribed events arrive interleaved on the same
// connection.
type Client interface {
	Connect(socketPath string) error
	Invoke(ctx context.Context, command string, args any) (json.RawMessage, error)
	Subscribe(ctx context.Context, events ...string) (<-chan Event, error)
	Close() error
}

type client struct {
	buffer int
	log    logger.Logger

	nextID atomic.Int64

	mu        sync.Mutex
	conn      net.Conn
	pending   map[int64]chan InvokeResult
	events    chan Event
	subActive bool
	closed    bool
}

// NewClient creates a backend client; Connect must be called before use
func NewClient(cfg *config.Config, log logger.Logger) Client {
	return &client{
		buffer:  cfg.Backend.EventBuffer,
		log:     log.WithComponent("BACKEND"),
		pending: make(map[int64]chan InvokeResult),
	}
}

// Connect dials the backend socket and starts the read loop
func (c *client) Connect(socketPath string) error {
	conn, err := net.DialTimeout("unix", socketPath, config.SocketDialTimeout)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToConnectBackend, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	go c.readLoop(conn)

	return nil
}

// Invoke runs a named backend command and waits for its result
func (c *client) Invoke(ctx context.Context, command string, args any) (json.RawMessage, error) {
	var rawArgs json.RawMessage

	if args != nil {
		data, err := json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrFailedToMarshalMessage, err)
		}

		rawArgs = data
	}

	id := c.nextID.Add(1)
	resultChan := make(chan InvokeResult, 1)

	c.mu.Lock()

	if c.closed || c.conn == nil {
		c.mu.Unlock()

		return nil, errors.ErrBackendClosed
	}

	c.pending[id] = resultChan
	conn := c.conn
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	req := InvokeRequest{Type: MessageInvoke, ID: id, Command: command, Args: rawArgs}
	if err := writeMessage(conn, req); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result, ok := <-resultChan:
		if !ok {
			return nil, errors.ErrBackendClosed
		}

		if result.Error != "" {
			return nil, fmt.Errorf("%w: %s: %s", errors.ErrInvokeFailed, command, result.Error)
		}

		return result.Data, nil
	}
}

// Subscribe requests the named event streams and returns the delivery
// channel. Only one subscription per connection is supported; the channel
// is closed exactly once, when ctx is cancelled or the connection drops.
func (c *client) Subscribe(ctx context.Context, events ...string) (<-chan Event, error) {
	c.mu.Lock()

	if c.closed || c.conn == nil {
		c.mu.Unlock()

		return nil, errors.ErrBackendClosed
	}

	if c.subActive {
		c.mu.Unlock()

		return nil, errors.ErrAlreadySubscribed
	}

	ch := make(chan Event, c.buffer)
	c.events = ch
	c.subActive = true
	conn := c.conn
	c.mu.Unlock()

	req := SubscribeRequest{Type: MessageSubscribe, Events: events}
	if err := writeMessage(conn, req); err != nil {
		c.closeEvents()

		return nil, err
	}

	go func() {
		<-ctx.Done()
		c.closeEvents()
	}()

	return ch, nil
}

// Close shuts down the connection; the read loop then releases all waiters
func (c *client) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn != nil {
		return conn.Close()
	}

	return nil
}

// readLoop dispatches incoming messages until the connection drops
func (c *client) readLoop(conn net.Conn) {
	reader := bufio.NewReader(conn)

	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			break
		}

		c.dispatch(line)
	}

	c.mu.Lock()
	c.closed = true

	for id, ch := range c.pending {
		close(ch)
		delete(c.pending, id)
	}

	c.mu.Unlock()

	c.closeEvents()
}

// dispatch routes one wire message; malformed payloads are dropped with a
// diagnostic trace and never terminate the stream
func (c *client) dispatch(line []byte) {
	var env envelope
	if err := json.Unmarshal(line, &env); err != nil {
		c.log.Debug().Err(err).Msg("Dropping malformed backend message")

		return
	}

	switch env.Type {
	case MessageResult:
		var result InvokeResult
		if err := json.Unmarshal(line, &result); err != nil {
			c.log.Debug().Err(err).Msg("Dropping malformed invoke result")

			return
		}

		c.mu.Lock()
		if ch, ok := c.pending[result.ID]; ok {
			ch <- result
			delete(c.pending, result.ID)
		}
		c.mu.Unlock()
	case MessageEvent:
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			c.log.Debug().Err(err).Msg("Dropping malformed event")

			return
		}

		c.mu.Lock()
		if c.subActive {
			select {
			case c.events <- event:
			default:
				c.log.Debug().Str("event", event.Name).Str("target", event.Target).Msg("Subscriber stalled, dropping event")
			}
		}
		c.mu.Unlock()
	default:
		c.log.Debug().Msgf("Dropping backend message of unknown type '%s'", env.Type)
	}
}

// closeEvents closes the subscription channel at most once
func (c *client) closeEvents() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.subActive {
		c.subActive = false
		close(c.events)
	}
}

// writeMessage marshals a message and writes it as one line
func writeMessage(conn net.Conn, msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToMarshalMessage, err)
	}

	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteBackend, err)
	}

	return nil
}

// FindSocket locates the backend socket for an instance in the given
// directory; with an empty instance exactly one backend must be running
func FindSocket(socketDir, instance string) (string, error) {
	if instance != "" {
		socketPath := filepath.Join(socketDir, config.SocketPrefix+instance+config.SocketSuffix)
		if _, err := os.Stat(socketPath); err == nil {
			return socketPath, nil
		}

		return "", fmt.Errorf("%w: '%s'", errors.ErrInstanceNotFound, instance)
	}

	pattern := filepath.Join(socketDir, config.SocketPrefix+"*"+config.SocketSuffix)

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrBackendSocketSearch, err)
	}

	if len(matches) == 0 {
		return "", errors.ErrNoBackendRunning
	}

	if len(matches) > 1 {
		instances := make([]string, len(matches))
		for i, m := range matches {
			base := filepath.Base(m)
			instances[i] = strings.TrimSuffix(strings.TrimPrefix(base, config.SocketPrefix), config.SocketSuffix)
		}

		return "", fmt.Errorf("%w, specify one of: %v", errors.ErrMultipleBackendsRunning, instances)
	}

	return matches[0], nil
}
