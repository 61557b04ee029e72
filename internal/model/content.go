package model

// Request and response shapes for the coaching games. Each pair is the
// contract of one prompt flow.

// ArticulateCluesRequest asks for clues describing Word in the setting of ContextText
type ArticulateCluesRequest struct {
	Word        string `json:"word"`
	ContextText string `json:"contextText"`
}

// ArticulateClues is a list of clues that never say the word itself
type ArticulateClues struct {
	Clues []string `json:"clues"`
}

// BalderdashRequest asks for one real and NumFakeDefinitions fake definitions of Word
type BalderdashRequest struct {
	Word               string `json:"word"`
	Context            string `json:"context"`
	NumFakeDefinitions int    `json:"numFakeDefinitions"`
}

// BalderdashDefinitions is the raw generated content
type BalderdashDefinitions struct {
	RealDefinition  string   `json:"realDefinition"`
	FakeDefinitions []string `json:"fakeDefinitions"`
}

// BalderdashRound is a playable round: all definitions shuffled together
type BalderdashRound struct {
	Word      string   `json:"word"`
	Options   []string `json:"options"`
	RealIndex int      `json:"realIndex"`
}

// IsReal reports whether the option at index is the real definition
func (r *BalderdashRound) IsReal(index int) bool {
	return index == r.RealIndex
}

// Proficiency levels accepted for role-play generation
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// RolePlayRequest describes the situation a learner wants to practise
type RolePlayRequest struct {
	Context      string `json:"context"`
	Goal         string `json:"goal"`
	Level        string `json:"level"`
	UploadedText string `json:"uploadedText,omitempty"`
}

// RolePlayScenarios is a set of scenario descriptions
type RolePlayScenarios struct {
	Scenarios []string `json:"scenarios"`
}

// Error count bounds for grammar puzzles
const (
	MinGrammarErrors     = 1
	MaxGrammarErrors     = 10
	DefaultGrammarErrors = 3
)

// GrammarErrorsRequest asks for Text rewritten with ErrorCount mistakes
type GrammarErrorsRequest struct {
	Text       string `json:"text"`
	ErrorCount int    `json:"errorCount"`
}

// GrammarErrors is the rewritten text
type GrammarErrors struct {
	TextWithErrors string `json:"textWithErrors"`
}

// SummaryRequest asks for the vocabulary and grammar highlights of a document
type SummaryRequest struct {
	DocumentText string `json:"documentText"`
	LearningGoal string `json:"learningGoal,omitempty"`
}

// DocumentSummary holds the two summaries
type DocumentSummary struct {
	VocabularySummary      string `json:"vocabularySummary"`
	GrammarPatternsSummary string `json:"grammarPatternsSummary"`
}
