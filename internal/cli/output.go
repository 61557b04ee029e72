package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Session:
		o.printSession(v)
	case SessionList:
		o.printSessionList(v)
	case Board:
		o.printBoard(v)
	case Clues:
		o.printList("Clues", v.Clues)
	case BalderdashRound:
		o.printBalderdash(v)
	case Scenarios:
		o.printList("Scenarios", v.Scenarios)
	case GrammarErrors:
		o.printf("%s\n", v.TextWithErrors)
	case Summary:
		o.printf("Vocabulary:\n%s\n\nGrammar patterns:\n%s\n", v.VocabularySummary, v.GrammarPatternsSummary)
	case HealthResult:
		o.printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player    Player    `json:"player"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
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

// Session response type
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

// SessionList response type
type SessionList struct {
	Sessions []Session `json:"sessions"`
}

// Square is one board square
type Square struct {
	Premium string `json:"premium,omitempty"`
	Label   string `json:"label,omitempty"`
}

// Board response type
type Board struct {
	Size    int        `json:"size"`
	Squares [][]Square `json:"squares"`
}

// Clues response type
type Clues struct {
	Clues []string `json:"clues"`
}

// BalderdashRound response type
type BalderdashRound struct {
	Word      string   `json:"word"`
	Options   []string `json:"options"`
	RealIndex int      `json:"realIndex"`
}

// Scenarios response type
type Scenarios struct {
	Scenarios []string `json:"scenarios"`
}

// GrammarErrors response type
type GrammarErrors struct {
	TextWithErrors string `json:"textWithErrors"`
}

// Summary response type
type Summary struct {
	VocabularySummary      string `json:"vocabularySummary"`
	GrammarPatternsSummary string `json:"grammarPatternsSummary"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	o.printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	o.printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	o.printf("Token: %s\n", a.Token)
}

func (o *Output) printSession(s Session) {
	o.printf("Session: %s\n", s.ID)
	o.printf("Tiles: %s\n", strings.Join(s.Tiles, " "))
	o.printf("Phase: %s\n", s.Phase)
	if s.Word != "" {
		o.printf("Word: %s\n", s.Word)
	}
	if s.Sentence != "" {
		o.printf("Sentence: %s\n", s.Sentence)
	}

	r := s.LastResult
	if r == nil {
		return
	}
	verdict := "FAILED"
	if r.Passed {
		verdict = "PASSED"
	}
	o.printf("\nResult: %s\n", verdict)
	o.printf("  %s valid word\n", mark(r.IsValidWord))
	o.printf("  %s made from tiles\n", mark(r.CanBeMadeFromTiles))
	o.printf("  %s grammatically correct\n", mark(r.IsGrammaticallyCorrect))
	o.printf("Feedback: %s\n", r.Feedback)
	o.printf("Score: %d\n", r.Score)
}

func (o *Output) printSessionList(l SessionList) {
	if len(l.Sessions) == 0 {
		o.printf("No sessions\n")
		return
	}
	for _, s := range l.Sessions {
		o.printf("%s  %s  %s\n", s.ID, strings.Join(s.Tiles, ""), s.Phase)
	}
}

func (o *Output) printBoard(b Board) {
	if b.Size == 0 || len(b.Squares) == 0 {
		return
	}

	// Print column headers
	o.printf("    ")
	for col := range b.Size {
		o.printf("%3d", col)
	}
	o.printf("\n")

	for row := range b.Size {
		o.printf("%3d ", row)
		for col := range b.Size {
			switch p := b.Squares[row][col].Premium; p {
			case "":
				o.printf("  .")
			case "star":
				o.printf("  *")
			default:
				o.printf("%3s", strings.ToUpper(p))
			}
		}
		o.printf("\n")
	}
}

func (o *Output) printBalderdash(r BalderdashRound) {
	o.printf("Word: %s\n", r.Word)
	for i, opt := range r.Options {
		o.printf("  %d. %s\n", i+1, opt)
	}
}

func (o *Output) printList(title string, items []string) {
	o.printf("%s:\n", title)
	for i, item := range items {
		o.printf("  %d. %s\n", i+1, item)
	}
}

func mark(ok bool) string {
	if ok {
		return "[x]"
	}
	return "[ ]"
}
