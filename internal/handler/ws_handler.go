package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	ws "github.com/placeready/placeready-backend/internal/websocket"
	"github.com/placeready/placeready-backend/internal/worker"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams live cohort analytics to the placement-cell dashboard.
type WSHandler struct {
	broadcaster *worker.AnalyticsBroadcaster
	log         zerolog.Logger
	upgrader    websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(broadcaster *worker.AnalyticsBroadcaster, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		broadcaster: broadcaster,
		log:         log.With().Str("component", "ws_handler").Logger(),
		upgrader:    buildUpgrader(allowedOrigins),
	}
}

// AnalyticsStream godoc
// WS /ws/v1/analytics/stream
// Upgrades to WebSocket, sends the current cohort summary immediately, then
// receives interval pushes from the broadcaster until the client disconnects.
func (h *WSHandler) AnalyticsStream(c *gin.Context) {
	raw, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	conn := ws.NewConn(raw)
	defer conn.Close()

	summary, err := h.broadcaster.Snapshot()
	if err != nil {
		conn.WriteError("no analytics available for an empty cohort")
		return
	}
	if err := conn.WriteTyped(ws.SummaryResponse{Event: ws.EventSummary, Summary: summary}); err != nil {
		return
	}

	h.broadcaster.Register(conn)
	defer h.broadcaster.Unregister(conn)

	h.log.Info().Str("remote", conn.RemoteAddr().String()).Msg("Dashboard client connected")

	// Read pump: answers pings and detects disconnects. Replies go through
	// the same write lock the broadcaster uses.
	for {
		var msg ws.RequestEnvelope
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn().Err(err).Msg("Unexpected close")
			} else {
				h.log.Debug().Msg("Connection closed")
			}
			return
		}

		switch msg.Action {
		case ws.ActionPing:
			_ = conn.WriteTyped(ws.PongResponse{Event: ws.EventPong})
		default:
			_ = conn.WriteError("unknown action: " + string(msg.Action))
		}
	}
}
