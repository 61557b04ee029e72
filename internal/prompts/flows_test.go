package prompts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordcoach/internal/llm/llmtest"
	"github.com/mcoot/wordcoach/internal/model"
)

type FlowsSuite struct {
	suite.Suite
	client *llmtest.Fake
	flows  *Flows
	ctx    context.Context
}

func TestFlowsSuite(t *testing.T) {
	suite.Run(t, new(FlowsSuite))
}

func (s *FlowsSuite) SetupTest() {
	s.client = llmtest.New()
	flows, err := New(s.client)
	s.Require().NoError(err)
	s.flows = flows
	s.ctx = context.Background()
}

func (s *FlowsSuite) TestCatalogueHasEveryFlow() {
	c := DefaultCatalogue()
	for _, name := range []string{
		ValidateWord, ArticulateClues, BalderdashDefinitions,
		RolePlayScenarios, GrammaticalErrors, SummarizeDocument,
	} {
		s.Contains(c, name)
		s.NotEmpty(c[name].Template, name)
	}
}

func (s *FlowsSuite) TestMissingCatalogueEntry() {
	_, err := NewFromCatalogue(Catalogue{}, s.client)
	s.ErrorContains(err, "not in catalogue")
}

func (s *FlowsSuite) TestBadCatalogueYAML() {
	_, err := LoadCatalogue([]byte("validateWord: [unterminated"))
	s.Error(err)
}

func (s *FlowsSuite) TestValidateWordPrompt() {
	prompt, err := s.flows.ValidateWord.Render(model.ValidationRequest{
		Word:     "BEAD",
		Tiles:    model.NewTiles("AEBCDFG"),
		Sentence: "She wore a bead.",
	})
	s.Require().NoError(err)

	s.Contains(prompt, "Word played: BEAD")
	s.Contains(prompt, "Available tiles: AEBCDFG")
	s.Contains(prompt, "Sentence provided: She wore a bead.")
	s.Contains(prompt, "Sorry, 'BEAD' is not a valid English word.")
}

func (s *FlowsSuite) TestValidateWordRun() {
	s.client.QueueJSON(`{"isValidWord":true,"canBeMadeFromTiles":true,"isGrammaticallyCorrect":false,"feedback":"Missing article."}`)

	res, err := s.flows.ValidateWord.Run(s.ctx, model.ValidationRequest{Word: "BEAD", Tiles: model.NewTiles("AEBCDFG"), Sentence: "She wore bead."})
	s.Require().NoError(err)

	s.True(res.IsValidWord)
	s.True(res.CanBeMadeFromTiles)
	s.False(res.IsGrammaticallyCorrect)
	s.Equal("Missing article.", res.Feedback)

	calls := s.client.Calls()
	s.Require().Len(calls, 1)
	s.ElementsMatch([]string{"isValidWord", "canBeMadeFromTiles", "isGrammaticallyCorrect", "feedback"}, calls[0].Schema.Required)
}

func (s *FlowsSuite) TestMissingRequiredField() {
	s.client.QueueJSON(`{"isValidWord":true,"canBeMadeFromTiles":true,"feedback":"ok"}`)

	_, err := s.flows.ValidateWord.Run(s.ctx, model.ValidationRequest{Word: "A", Sentence: "B"})
	s.ErrorIs(err, ErrMalformedOutput)
	s.ErrorContains(err, "isGrammaticallyCorrect")
}

func (s *FlowsSuite) TestNotJSON() {
	s.client.QueueJSON(`Sure! Here is your answer`)

	_, err := s.flows.GrammaticalErrors.Run(s.ctx, model.GrammarErrorsRequest{Text: "x", ErrorCount: 1})
	s.ErrorIs(err, ErrMalformedOutput)
}

func (s *FlowsSuite) TestWrongFieldType() {
	s.client.QueueJSON(`{"clues":"just one string"}`)

	_, err := s.flows.ArticulateClues.Run(s.ctx, model.ArticulateCluesRequest{Word: "w", ContextText: "c"})
	s.ErrorIs(err, ErrMalformedOutput)
}

func (s *FlowsSuite) TestClientErrorIsWrapped() {
	boom := errors.New("boom")
	s.client.QueueError(boom)

	_, err := s.flows.SummarizeDocument.Run(s.ctx, model.SummaryRequest{DocumentText: "doc"})
	s.ErrorIs(err, boom)
	s.ErrorContains(err, SummarizeDocument)
}

func (s *FlowsSuite) TestArticulateDropsBlankClues() {
	s.client.QueueJSON(`{"clues":["Found in a necklace", "  ", "Small and round"]}`)

	res, err := s.flows.ArticulateClues.Run(s.ctx, model.ArticulateCluesRequest{Word: "bead", ContextText: "jewellery"})
	s.Require().NoError(err)
	s.Equal([]string{"Found in a necklace", "Small and round"}, res.Clues)
}

func (s *FlowsSuite) TestBalderdashPromptAndCount() {
	req := model.BalderdashRequest{Word: "quire", Context: "bookbinding", NumFakeDefinitions: 2}

	prompt, err := s.flows.BalderdashDefinitions.Render(req)
	s.Require().NoError(err)
	s.Contains(prompt, "exactly 2 fake definitions")

	s.client.QueueJSON(`{"realDefinition":"Twenty-four sheets of paper.","fakeDefinitions":["A choir stall."]}`)
	_, err = s.flows.BalderdashDefinitions.Run(s.ctx, req)
	s.ErrorIs(err, ErrMalformedOutput)

	s.client.QueueJSON(`{"realDefinition":"Twenty-four sheets of paper.","fakeDefinitions":["A choir stall.","A small lute."]}`)
	res, err := s.flows.BalderdashDefinitions.Run(s.ctx, req)
	s.Require().NoError(err)
	s.Len(res.FakeDefinitions, 2)
}

func (s *FlowsSuite) TestRolePlayOptionalText() {
	req := model.RolePlayRequest{Context: "airport", Goal: "check in", Level: model.LevelBeginner}

	prompt, err := s.flows.RolePlayScenarios.Render(req)
	s.Require().NoError(err)
	s.NotContains(prompt, "Reference text")

	req.UploadedText = "boarding pass, gate, luggage"
	prompt, err = s.flows.RolePlayScenarios.Render(req)
	s.Require().NoError(err)
	s.Contains(prompt, "Reference text")
	s.Contains(prompt, "boarding pass, gate, luggage")
}

func (s *FlowsSuite) TestGrammarPromptHasCount() {
	prompt, err := s.flows.GrammaticalErrors.Render(model.GrammarErrorsRequest{Text: "I am here.", ErrorCount: 4})
	s.Require().NoError(err)
	s.Contains(prompt, "exactly 4 grammatical errors")
	s.Contains(prompt, "Text: I am here.")
}

func (s *FlowsSuite) TestSummaryLearningGoal() {
	prompt, err := s.flows.SummarizeDocument.Render(model.SummaryRequest{DocumentText: "doc"})
	s.Require().NoError(err)
	s.NotContains(prompt, "Learning goal")

	prompt, err = s.flows.SummarizeDocument.Render(model.SummaryRequest{DocumentText: "doc", LearningGoal: "phrasal verbs"})
	s.Require().NoError(err)
	s.Contains(prompt, "Learning goal: phrasal verbs")
}

func (s *FlowsSuite) TestSummaryRejectsEmptyParts() {
	s.client.QueueJSON(`{"vocabularySummary":"words","grammarPatternsSummary":""}`)

	_, err := s.flows.SummarizeDocument.Run(s.ctx, model.SummaryRequest{DocumentText: "doc"})
	s.ErrorIs(err, ErrMalformedOutput)
}
