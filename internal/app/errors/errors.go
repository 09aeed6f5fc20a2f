package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidLogLevel    = errors.New("invalid logging level")
	ErrInvalidStoreSize   = errors.New("store capacity must be positive")
	ErrInvalidDebounce    = errors.New("tail debounce must not be negative")
	ErrInvalidEventBuffer = errors.New("event buffer size must be positive")

	ErrInstanceNotFound        = errors.New("instance not found")
	ErrInstancesFileUnreadable = errors.New("failed to read instances file")
	ErrInstancesFileMalformed  = errors.New("failed to parse instances file")
	ErrNoBackendRunning        = errors.New("no launcher backend running")
	ErrMultipleBackendsRunning = errors.New("multiple launcher backends running")
	ErrBackendSocketSearch     = errors.New("backend socket search failed")
	ErrFailedToConnectBackend  = errors.New("failed to connect to launcher backend")
	ErrFailedToMarshalMessage  = errors.New("failed to marshal message")
	ErrFailedToWriteBackend    = errors.New("failed to write to backend socket")
	ErrFailedToReadBackend     = errors.New("failed to read from backend socket")
	ErrBackendClosed           = errors.New("backend connection closed")
	ErrInvokeFailed            = errors.New("backend command failed")
	ErrAlreadySubscribed       = errors.New("already subscribed to backend events")

	ErrLogFileNotFound  = errors.New("log file not found")
	ErrFailedToOpenLog  = errors.New("failed to open log file")
	ErrFailedToWatchLog = errors.New("failed to watch log file")
	ErrInvalidGlob      = errors.New("invalid glob pattern")

	ErrSessionClosed   = errors.New("session is closed")
	ErrSessionBusy     = errors.New("session already has an active source")
	ErrNothingToExport = errors.New("nothing to export")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
