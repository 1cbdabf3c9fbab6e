package websocket

import "github.com/placeready/placeready-backend/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventSummary Event = "summary"
	EventError   Event = "error"
	EventPong    Event = "pong"
)

// SummaryResponse carries a cohort analytics snapshot to the dashboard.
type SummaryResponse struct {
	Event   Event               `json:"event"`
	Summary model.CohortSummary `json:"summary"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
