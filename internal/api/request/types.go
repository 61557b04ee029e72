package request

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DraftRequest sets the word and sentence being composed
type DraftRequest struct {
	Word     string `json:"word"`
	Sentence string `json:"sentence"`
}

// SubmitRequest optionally replaces the draft before submitting it
type SubmitRequest struct {
	Word     *string `json:"word,omitempty"`
	Sentence *string `json:"sentence,omitempty"`
}

// HasDraft reports whether the body carries a draft to apply first
func (r SubmitRequest) HasDraft() bool {
	return r.Word != nil || r.Sentence != nil
}

// ArticulateRequest asks for clues for a word
type ArticulateRequest struct {
	Word    string `json:"word"`
	Context string `json:"context"`
}

// BalderdashRequest asks for a definitions round
type BalderdashRequest struct {
	Word               string `json:"word"`
	Context            string `json:"context"`
	NumFakeDefinitions int    `json:"num_fake_definitions,omitempty"`
}

// RolePlayRequest asks for role-play scenarios
type RolePlayRequest struct {
	Context      string `json:"context"`
	Goal         string `json:"goal"`
	Level        string `json:"level"`
	UploadedText string `json:"uploaded_text,omitempty"`
}

// GrammarRequest asks for text rewritten with mistakes
type GrammarRequest struct {
	Text       string `json:"text"`
	ErrorCount int    `json:"error_count,omitempty"`
}

// SummaryRequest asks for a document summary
type SummaryRequest struct {
	DocumentText string `json:"document_text"`
	LearningGoal string `json:"learning_goal,omitempty"`
}
