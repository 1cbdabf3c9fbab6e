package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/placeready/placeready-backend/internal/model"
	"github.com/placeready/placeready-backend/internal/service"
	ws "github.com/placeready/placeready-backend/internal/websocket"
)

// AnalyticsBroadcaster pushes cohort summary snapshots to all connected
// dashboard websockets on a fixed interval. Connections arrive wrapped in
// ws.Conn, whose write lock keeps broadcast frames from interleaving with
// the read pump's replies.
type AnalyticsBroadcaster struct {
	analytics *service.AnalyticsService
	interval  time.Duration
	log       zerolog.Logger

	mu    sync.Mutex
	conns map[*ws.Conn]struct{}
}

// NewAnalyticsBroadcaster creates a broadcaster over the given analytics
// service.
func NewAnalyticsBroadcaster(analytics *service.AnalyticsService, interval time.Duration, log zerolog.Logger) *AnalyticsBroadcaster {
	return &AnalyticsBroadcaster{
		analytics: analytics,
		interval:  interval,
		log:       log.With().Str("component", "analytics_broadcaster").Logger(),
		conns:     make(map[*ws.Conn]struct{}),
	}
}

// Start runs the broadcast loop until ctx is cancelled. Call in a goroutine.
func (b *AnalyticsBroadcaster) Start(ctx context.Context) {
	b.log.Info().Dur("interval", b.interval).Msg("AnalyticsBroadcaster started")

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.log.Info().Msg("Shutdown requested. Closing connections...")
			b.closeAll()
			return
		case <-ticker.C:
			b.broadcast()
		}
	}
}

// Register adds a connection to the broadcast set.
func (b *AnalyticsBroadcaster) Register(conn *ws.Conn) {
	b.mu.Lock()
	b.conns[conn] = struct{}{}
	n := len(b.conns)
	b.mu.Unlock()
	b.log.Debug().Int("connections", n).Msg("Dashboard client connected")
}

// Unregister removes a connection from the broadcast set.
func (b *AnalyticsBroadcaster) Unregister(conn *ws.Conn) {
	b.mu.Lock()
	delete(b.conns, conn)
	n := len(b.conns)
	b.mu.Unlock()
	b.log.Debug().Int("connections", n).Msg("Dashboard client disconnected")
}

// Snapshot returns the current cohort summary.
func (b *AnalyticsBroadcaster) Snapshot() (model.CohortSummary, error) {
	return b.analytics.Summarize()
}

// broadcast sends the current summary to every registered connection,
// dropping connections whose writes fail.
func (b *AnalyticsBroadcaster) broadcast() {
	summary, err := b.analytics.Summarize()
	if err != nil {
		b.log.Warn().Err(err).Msg("Skipping broadcast")
		return
	}

	b.mu.Lock()
	conns := make([]*ws.Conn, 0, len(b.conns))
	for conn := range b.conns {
		conns = append(conns, conn)
	}
	b.mu.Unlock()

	payload := ws.SummaryResponse{Event: ws.EventSummary, Summary: summary}
	for _, conn := range conns {
		if err := conn.WriteTyped(payload); err != nil {
			b.Unregister(conn)
			_ = conn.Close()
		}
	}
}

func (b *AnalyticsBroadcaster) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for conn := range b.conns {
		_ = conn.Close()
		delete(b.conns, conn)
	}
}
