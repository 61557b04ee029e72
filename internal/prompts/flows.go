package prompts

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"google.golang.org/genai"

	"github.com/mcoot/wordcoach/internal/llm"
	"github.com/mcoot/wordcoach/internal/model"
)

// Flow names in the catalogue
const (
	ValidateWord          = "validateWord"
	ArticulateClues       = "articulateClues"
	BalderdashDefinitions = "balderdashDefinitions"
	RolePlayScenarios     = "rolePlayScenarios"
	GrammaticalErrors     = "grammaticalErrors"
	SummarizeDocument     = "summarizeDocument"
)

// Flows holds every flow the application runs
type Flows struct {
	ValidateWord          *Flow[model.ValidationRequest, model.ValidationResult]
	ArticulateClues       *Flow[model.ArticulateCluesRequest, model.ArticulateClues]
	BalderdashDefinitions *Flow[model.BalderdashRequest, model.BalderdashDefinitions]
	RolePlayScenarios     *Flow[model.RolePlayRequest, model.RolePlayScenarios]
	GrammaticalErrors     *Flow[model.GrammarErrorsRequest, model.GrammarErrors]
	SummarizeDocument     *Flow[model.SummaryRequest, model.DocumentSummary]
}

// New builds all flows from the default catalogue
func New(client llm.Client) (*Flows, error) {
	return NewFromCatalogue(DefaultCatalogue(), client)
}

// NewFromCatalogue builds all flows from the given catalogue
func NewFromCatalogue(c Catalogue, client llm.Client) (*Flows, error) {
	var (
		f   Flows
		err error
	)
	if f.ValidateWord, err = NewFlow(c, ValidateWord, validationSchema, client, checkValidation); err != nil {
		return nil, err
	}
	if f.ArticulateClues, err = NewFlow(c, ArticulateClues, cluesSchema, client, checkClues); err != nil {
		return nil, err
	}
	if f.BalderdashDefinitions, err = NewFlow(c, BalderdashDefinitions, balderdashSchema, client, checkBalderdash); err != nil {
		return nil, err
	}
	if f.RolePlayScenarios, err = NewFlow(c, RolePlayScenarios, scenariosSchema, client, checkScenarios); err != nil {
		return nil, err
	}
	if f.GrammaticalErrors, err = NewFlow(c, GrammaticalErrors, grammarSchema, client, checkGrammar); err != nil {
		return nil, err
	}
	if f.SummarizeDocument, err = NewFlow(c, SummarizeDocument, summarySchema, client, checkSummary); err != nil {
		return nil, err
	}
	return &f, nil
}

func str(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: desc}
}

func boolean(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeBoolean, Description: desc}
}

func strList(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Description: desc, Items: &genai.Schema{Type: genai.TypeString}}
}

func object(props map[string]*genai.Schema, required ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
}

// The score is not asked of the model; judges compute it from letter values.
var validationSchema = object(map[string]*genai.Schema{
	"isValidWord":            boolean("Whether the word is a valid English word."),
	"canBeMadeFromTiles":     boolean("Whether the word can be formed from the given tiles."),
	"isGrammaticallyCorrect": boolean("Whether the sentence is grammatically correct."),
	"feedback":               str("Feedback on the word and sentence."),
}, "isValidWord", "canBeMadeFromTiles", "isGrammaticallyCorrect", "feedback")

var cluesSchema = object(map[string]*genai.Schema{
	"clues": strList("Clues that help guess the word without saying it."),
}, "clues")

var balderdashSchema = object(map[string]*genai.Schema{
	"realDefinition":  str("The actual meaning of the word."),
	"fakeDefinitions": strList("Plausible but incorrect meanings."),
}, "realDefinition", "fakeDefinitions")

var scenariosSchema = object(map[string]*genai.Schema{
	"scenarios": strList("Role-play scenarios."),
}, "scenarios")

var grammarSchema = object(map[string]*genai.Schema{
	"textWithErrors": str("The text with grammatical errors inserted."),
}, "textWithErrors")

var summarySchema = object(map[string]*genai.Schema{
	"vocabularySummary":      str("Key vocabulary with examples."),
	"grammarPatternsSummary": str("Key grammar patterns with examples."),
}, "vocabularySummary", "grammarPatternsSummary")

func checkValidation(_ model.ValidationRequest, out *model.ValidationResult) error {
	if strings.TrimSpace(out.Feedback) == "" {
		return fmt.Errorf("empty feedback")
	}
	return nil
}

func checkClues(_ model.ArticulateCluesRequest, out *model.ArticulateClues) error {
	out.Clues = nonEmpty(out.Clues)
	if len(out.Clues) == 0 {
		return fmt.Errorf("no clues")
	}
	return nil
}

func checkBalderdash(in model.BalderdashRequest, out *model.BalderdashDefinitions) error {
	if strings.TrimSpace(out.RealDefinition) == "" {
		return fmt.Errorf("empty real definition")
	}
	fakes := nonEmpty(out.FakeDefinitions)
	if len(fakes) != in.NumFakeDefinitions {
		return fmt.Errorf("asked for %d fake definitions, got %d", in.NumFakeDefinitions, len(fakes))
	}
	out.FakeDefinitions = fakes
	return nil
}

func checkScenarios(_ model.RolePlayRequest, out *model.RolePlayScenarios) error {
	out.Scenarios = nonEmpty(out.Scenarios)
	if len(out.Scenarios) == 0 {
		return fmt.Errorf("no scenarios")
	}
	return nil
}

func checkGrammar(_ model.GrammarErrorsRequest, out *model.GrammarErrors) error {
	if strings.TrimSpace(out.TextWithErrors) == "" {
		return fmt.Errorf("empty text")
	}
	return nil
}

func checkSummary(_ model.SummaryRequest, out *model.DocumentSummary) error {
	if strings.TrimSpace(out.VocabularySummary) == "" || strings.TrimSpace(out.GrammarPatternsSummary) == "" {
		return fmt.Errorf("empty summary")
	}
	return nil
}

// nonEmpty trims each item and drops the blank ones
func nonEmpty(items []string) []string {
	return lo.Compact(lo.Map(items, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}
