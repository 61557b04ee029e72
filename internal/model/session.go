package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// Phase is where a session sits in its submit/validate cycle
type Phase string

const (
	PhaseIdle       Phase = "idle"       // Fresh tiles, nothing typed yet
	PhaseEditing    Phase = "editing"    // Player is composing a word and sentence
	PhaseValidating Phase = "validating" // A judge call is in flight
	PhaseResolved   Phase = "resolved"   // Last play has a result
)

// Session is one player's in-progress game. It is never shared across players
// and cycles indefinitely until deleted.
type Session struct {
	ID         SessionID         `json:"id"`
	PlayerID   PlayerID          `json:"player_id"`
	Tiles      Tiles             `json:"tiles"`
	Word       string            `json:"word"`
	Sentence   string            `json:"sentence"`
	LastResult *ValidationResult `json:"last_result,omitempty"`
	Phase      Phase             `json:"phase"`

	// Generation increases on every submit and every new game. A judge
	// response is only applied if the generation it was issued under is
	// still current.
	Generation uint64 `json:"generation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanSubmit returns true if the session is in a phase that accepts a submission
func (s *Session) CanSubmit() bool {
	return s.Phase == PhaseEditing || s.Phase == PhaseResolved
}

// Request builds the judge request for the current draft
func (s *Session) Request() ValidationRequest {
	return ValidationRequest{
		Word:     s.Word,
		Tiles:    s.Tiles.Clone(),
		Sentence: s.Sentence,
	}
}

// Clone returns a deep copy so callers can't mutate stored state
func (s *Session) Clone() *Session {
	out := *s
	out.Tiles = s.Tiles.Clone()
	if s.LastResult != nil {
		r := *s.LastResult
		out.LastResult = &r
	}
	return &out
}
