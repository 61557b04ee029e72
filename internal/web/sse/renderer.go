package sse

import (
	"encoding/json"

	"github.com/mcoot/wordcoach/internal/model"
)

// EventData is one named SSE event ready to send
type EventData struct {
	EventName string
	Data      string
}

// Renderer converts session events to SSE payloads
type Renderer struct{}

// NewRenderer creates a new Renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderEvent encodes the event as JSON under its own event name
func (r *Renderer) RenderEvent(event model.Event) (EventData, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return EventData{}, err
	}
	return EventData{EventName: string(event.Type), Data: string(data)}, nil
}

// Message renders the event as a complete SSE frame
func (r *Renderer) Message(event model.Event) ([]byte, error) {
	ed, err := r.RenderEvent(event)
	if err != nil {
		return nil, err
	}
	return formatSSEMessage(ed.EventName, ed.Data), nil
}
