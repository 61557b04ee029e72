package model

import "strings"

// ValidationRequest is what gets sent to a judge for one play
type ValidationRequest struct {
	Word     string `json:"word"`
	Tiles    Tiles  `json:"tiles"`
	Sentence string `json:"sentence"`
}

// Validate checks the submission precondition: both word and sentence present
func (r ValidationRequest) Validate() error {
	if strings.TrimSpace(r.Word) == "" || strings.TrimSpace(r.Sentence) == "" {
		return ErrInvalidRequest
	}
	return nil
}

// ValidationResult is a judge's verdict on one play. Never modified once produced.
type ValidationResult struct {
	IsValidWord            bool   `json:"isValidWord"`
	CanBeMadeFromTiles     bool   `json:"canBeMadeFromTiles"`
	IsGrammaticallyCorrect bool   `json:"isGrammaticallyCorrect"`
	Feedback               string `json:"feedback"`
	Score                  int    `json:"score"`
}

// Passed reports whether the word is real, buildable from the tiles and used correctly
func (r *ValidationResult) Passed() bool {
	return r.IsValidWord && r.CanBeMadeFromTiles && r.IsGrammaticallyCorrect
}
