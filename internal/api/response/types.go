package response

import (
	"time"

	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/services/auth"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player    Player    `json:"player"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthResponseFromLogin creates an AuthResponse from a login
func AuthResponseFromLogin(l *auth.Login) AuthResponse {
	return AuthResponse{
		Player:    PlayerFromModel(&l.Player),
		Token:     l.Token,
		ExpiresAt: l.ExpiresAt,
	}
}

// Result is a judge verdict
type Result struct {
	IsValidWord            bool   `json:"is_valid_word"`
	CanBeMadeFromTiles     bool   `json:"can_be_made_from_tiles"`
	IsGrammaticallyCorrect bool   `json:"is_grammatically_correct"`
	Passed                 bool   `json:"passed"`
	Feedback               string `json:"feedback"`
	Score                  int    `json:"score"`
}

// ResultFromModel converts a model.ValidationResult; nil stays nil
func ResultFromModel(r *model.ValidationResult) *Result {
	if r == nil {
		return nil
	}
	return &Result{
		IsValidWord:            r.IsValidWord,
		CanBeMadeFromTiles:     r.CanBeMadeFromTiles,
		IsGrammaticallyCorrect: r.IsGrammaticallyCorrect,
		Passed:                 r.Passed(),
		Feedback:               r.Feedback,
		Score:                  r.Score,
	}
}

// Session represents a game session in API responses
type Session struct {
	ID         string    `json:"id"`
	Tiles      []string  `json:"tiles"`
	Word       string    `json:"word"`
	Sentence   string    `json:"sentence"`
	Phase      string    `json:"phase"`
	CanSubmit  bool      `json:"can_submit"`
	LastResult *Result   `json:"last_result"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SessionFromModel converts a model.Session
func SessionFromModel(s *model.Session) Session {
	return Session{
		ID:         string(s.ID),
		Tiles:      s.Tiles.Strings(),
		Word:       s.Word,
		Sentence:   s.Sentence,
		Phase:      string(s.Phase),
		CanSubmit:  s.CanSubmit(),
		LastResult: ResultFromModel(s.LastResult),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// SessionList wraps a list of sessions
type SessionList struct {
	Sessions []Session `json:"sessions"`
}

// SessionListFromModel converts a list of sessions, never returning null
func SessionListFromModel(sessions []*model.Session) SessionList {
	out := make([]Session, len(sessions))
	for i, s := range sessions {
		out[i] = SessionFromModel(s)
	}
	return SessionList{Sessions: out}
}

// Square is one board square
type Square struct {
	Premium string `json:"premium,omitempty"`
	Label   string `json:"label,omitempty"`
}

// Board is the premium-square layout, row-major
type Board struct {
	Size    int        `json:"size"`
	Squares [][]Square `json:"squares"`
}

// BoardFromModel converts model.Board
func BoardFromModel(b model.Board) Board {
	squares := make([][]Square, model.BoardSize)
	for row := range model.BoardSize {
		squares[row] = make([]Square, model.BoardSize)
		for col := range model.BoardSize {
			p := b[row][col]
			squares[row][col] = Square{Premium: string(p), Label: p.Label()}
		}
	}
	return Board{Size: model.BoardSize, Squares: squares}
}
