package backend

import "encoding/json"

// MessageType represents the type of message in the wire protocol
type MessageType string

const (
	// MessageInvoke is sent from client to backend to run a command
	MessageInvoke MessageType = "invoke"
	// MessageResult is sent from backend to client with a command's outcome
	MessageResult MessageType = "result"
	// MessageSubscribe is sent from client to backend to subscribe to events
	MessageSubscribe MessageType = "subscribe"
	// MessageEvent is sent from backend to client with event data
	MessageEvent MessageType = "event"
)

// Commands exposed by the launcher backend
const (
	CommandLogContent = "log_content"
	CommandUploadLog  = "upload_log"
)

// Event streams exposed by the launcher backend
const (
	EventProcessOutput = "process_output"
)

// InvokeRequest asks the backend to run a named command
type InvokeRequest struct {
	Type    MessageType     `json:"type"`
	ID      int64           `json:"id"`
	Command string          `json:"command"`
	Args    json.RawMessage `json:"args,omitempty"`
}

// InvokeResult carries a command's outcome, correlated by request id
type InvokeResult struct {
	Type  MessageType     `json:"type"`
	ID    int64           `json:"id"`
	Error string          `json:"error,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// SubscribeRequest subscribes the connection to named event streams
type SubscribeRequest struct {
	Type   MessageType `json:"type"`
	Events []string    `json:"events"`
}

// Event is one delivery from a subscribed stream. Target identifies the
// instance the event belongs to; consumers filter on their own target.
type Event struct {
	Type    MessageType `json:"type"`
	Name    string      `json:"name"`
	Target  string      `json:"target"`
	Message string      `json:"message"`
}

// LogContentArgs are the arguments for the log_content command
type LogContentArgs struct {
	Instance string `json:"instance"`
}

// LogContentData is the payload returned by log_content
type LogContentData struct {
	Content string `json:"content"`
}

// UploadLogArgs are the arguments for the upload_log command
type UploadLogArgs struct {
	Instance string `json:"instance"`
	Content  string `json:"content"`
}

// UploadLogData is the payload returned by upload_log
type UploadLogData struct {
	URL string `json:"url"`
}

// envelope is used to sniff the type of an incoming message
type envelope struct {
	Type MessageType `json:"type"`
}
