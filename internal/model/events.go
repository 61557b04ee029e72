package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventSessionStarted  EventType = "session_started"
	EventSessionUpdated  EventType = "session_updated"
	EventSessionResolved EventType = "session_resolved"
	EventSessionFailed   EventType = "session_failed"
	EventSessionReset    EventType = "session_reset"
)

// Event describes a change to a session
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	SessionID SessionID `json:"session_id"`
	Session   *Session  `json:"session"`
}
