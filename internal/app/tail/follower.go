package tail

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"lodestone/internal/app/errors"
	"lodestone/internal/config/logger"
)

// Follower tails a single log file on disk. It emits the existing content
// as the first chunk, then appended bytes as they arrive, debounced so a
// burst of writes becomes one chunk. Truncation or rotation restarts the
// read from the beginning of the file.
type Follower struct {
	path     string
	debounce time.Duration
	log      logger.Logger

	fsw    *fsnotify.Watcher
	chunks chan string
	notify chan struct{}
	done   chan struct{}

	offset    int64
	closeOnce sync.Once
}

// NewFollower creates a follower for the given file path
func NewFollower(path string, debounce time.Duration, log logger.Logger) *Follower {
	return &Follower{
		path:     filepath.Clean(path),
		debounce: debounce,
		log:      log.WithComponent("TAIL"),
		chunks:   make(chan string),
		notify:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Chunks returns the channel of appended content. It is closed when the
// follower stops.
func (f *Follower) Chunks() <-chan string {
	return f.chunks
}

// Start verifies the file exists, begins watching its directory and spawns
// the read loop. Watching the directory rather than the file keeps the
// follower alive across log rotation.
func (f *Follower) Start(ctx context.Context) error {
	if _, err := os.Stat(f.path); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrLogFileNotFound, f.path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWatchLog, err)
	}

	if err := fsw.Add(filepath.Dir(f.path)); err != nil {
		fsw.Close()

		return fmt.Errorf("%w: %w", errors.ErrFailedToWatchLog, err)
	}

	f.fsw = fsw

	go f.loop(ctx)

	return nil
}

// Close stops the follower. Safe to call more than once.
func (f *Follower) Close() {
	f.closeOnce.Do(func() {
		close(f.done)

		if f.fsw != nil {
			f.fsw.Close()
		}
	})
}

// loop owns all reads and all sends on the chunks channel, so chunk order
// matches write order and the channel closes exactly once
func (f *Follower) loop(ctx context.Context) {
	defer close(f.chunks)

	deb := NewDebouncer(f.debounce, func() {
		select {
		case f.notify <- struct{}{}:
		default:
		}
	})
	defer deb.Stop()

	f.drain(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-f.done:
			return
		case event, ok := <-f.fsw.Events:
			if !ok {
				return
			}

			f.handleEvent(event, deb)
		case err, ok := <-f.fsw.Errors:
			if !ok {
				return
			}

			f.log.Error().Err(err).Msg("Watch error")
		case <-f.notify:
			f.drain(ctx)
		}
	}
}

// handleEvent triggers a debounced read for changes to the followed file
func (f *Follower) handleEvent(event fsnotify.Event, deb Debouncer) {
	if filepath.Clean(event.Name) != f.path {
		return
	}

	if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
		deb.Trigger()
	}
}

// drain reads everything past the current offset and emits it as one chunk
func (f *Follower) drain(ctx context.Context) {
	file, err := os.Open(f.path)
	if err != nil {
		f.log.Debug().Err(err).Msg("Log file unavailable, waiting for it to return")
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return
	}

	if info.Size() < f.offset {
		f.log.Debug().Str("path", f.path).Msg("Log file shrank, rereading from the start")
		f.offset = 0
	}

	if info.Size() == f.offset {
		return
	}

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		f.log.Error().Err(err).Msg("Failed to read appended log content")
		return
	}

	f.offset += int64(len(data))

	if len(data) == 0 {
		return
	}

	select {
	case f.chunks <- string(data):
	case <-ctx.Done():
	case <-f.done:
	}
}
