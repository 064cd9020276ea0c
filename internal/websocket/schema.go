package websocket

import (
	"time"

	"github.com/gorilla/websocket"
)

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventSubmission Event = "submission"
	EventError      Event = "error"
)

// SubmissionEvent is broadcast to panel viewers when a respondent completes
// the flow. It is a compact summary, not the full record — the panel listing
// endpoint remains the source of truth.
type SubmissionEvent struct {
	Event         Event  `json:"event"`
	SubmissionID  int64  `json:"submission_id"`
	Institution   string `json:"institution"`
	Cohort        string `json:"cohort"`
	Profile       string `json:"profile"`
	EfficacyBand  string `json:"efficacy_band"`
	EfficacyTotal int    `json:"efficacy_total"`
	CompletedAt   string `json:"completed_at"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

// WriteTyped sends a strongly-typed payload over the WebSocket.
func WriteTyped(conn *websocket.Conn, v interface{}) error {
	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteJSON(v)
}

// WriteError sends a typed ErrorResponse over the WebSocket.
func WriteError(conn *websocket.Conn, errMsg string) error {
	return WriteTyped(conn, ErrorResponse{
		Event: EventError,
		Error: errMsg,
	})
}
