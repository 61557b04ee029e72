package sse

import (
	"log/slog"

	"github.com/mcoot/wordcoach/internal/model"
)

// Broadcaster pushes session events to whoever is watching the session.
// It satisfies session.Publisher.
type Broadcaster struct {
	hubManager *HubManager
	renderer   *Renderer
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		renderer:   NewRenderer(),
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Publish sends event to the session's hub. Sessions nobody watches are skipped.
func (b *Broadcaster) Publish(event model.Event) {
	hub := b.hubManager.GetHub(event.SessionID)
	if hub == nil {
		return
	}

	msg, err := b.renderer.Message(event)
	if err != nil {
		b.logger.Error("sse failed to render event",
			slog.String("session_id", string(event.SessionID)),
			slog.String("event", string(event.Type)),
			slog.Any("error", err))
		return
	}
	hub.Broadcast(msg)
}
