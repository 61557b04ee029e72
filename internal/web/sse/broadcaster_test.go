package sse

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/testutil"
)

func testEvent(sessionID model.SessionID) model.Event {
	return model.Event{
		Type:      model.EventSessionResolved,
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		SessionID: sessionID,
		Session: &model.Session{
			ID:       sessionID,
			PlayerID: "player1",
			Tiles:    model.NewTiles("AEBCDFG"),
			Word:     "BEAD",
			Phase:    model.PhaseResolved,
			LastResult: &model.ValidationResult{
				IsValidWord: true, CanBeMadeFromTiles: true, IsGrammaticallyCorrect: true,
				Feedback: "Excellent!", Score: 7,
			},
		},
	}
}

func TestRenderer_RenderEvent(t *testing.T) {
	ed, err := NewRenderer().RenderEvent(testEvent("session-1"))
	require.NoError(t, err)

	assert.Equal(t, "session_resolved", ed.EventName)

	var decoded model.Event
	require.NoError(t, json.Unmarshal([]byte(ed.Data), &decoded))
	assert.Equal(t, model.SessionID("session-1"), decoded.SessionID)
	require.NotNil(t, decoded.Session)
	assert.Equal(t, "AEBCDFG", decoded.Session.Tiles.String())
	assert.Equal(t, 7, decoded.Session.LastResult.Score)
	assert.NotContains(t, ed.Data, "\n", "JSON payload must fit on one data line")
}

func TestBroadcaster_Publish(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.Shutdown()
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("session-1")
	client := NewClient(hub, "player1")
	require.True(t, hub.Register(client))
	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	broadcaster.Publish(testEvent("session-1"))

	select {
	case msg := <-client.send:
		s := string(msg)
		assert.True(t, strings.HasPrefix(s, "event: session_resolved\n"))
		assert.Contains(t, s, `"word":"BEAD"`)
	case <-time.After(time.Second):
		t.Fatal("client did not receive message")
	}
}

func TestBroadcaster_PublishWithoutWatchers(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.Shutdown()
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	broadcaster.Publish(testEvent("nobody-watching"))
	assert.Equal(t, 0, manager.HubCount(), "publishing must not create hubs")
}

func TestServeSSE(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.Shutdown()
	hub := manager.GetOrCreateHub("session-1")

	initial, err := NewRenderer().Message(testEvent("session-1"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rr := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		ServeSSE(rr, req, hub, "player1", initial)
		close(done)
	}()

	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	hub.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ServeSSE did not return after hub closed")
	}

	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rr.Header().Get("Cache-Control"))
	assert.Equal(t, "no", rr.Header().Get("X-Accel-Buffering"))

	body := rr.Body.String()
	assert.Contains(t, body, "retry: 3000")
	assert.Contains(t, body, "event: connected\ndata: {\"status\":\"connected\"}")
	assert.Contains(t, body, "event: session_resolved")
}
