package coach

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordcoach/internal/dependencies/mocks"
	"github.com/mcoot/wordcoach/internal/llm/llmtest"
	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/prompts"
	"github.com/mcoot/wordcoach/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	client  *llmtest.Fake
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.client = llmtest.New()
	s.random = mocks.NewMockRandom()
	flows, err := prompts.New(s.client)
	s.Require().NoError(err)
	s.service = New(flows, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestArticulateClues() {
	s.client.QueueJSON(`{"clues":["Threaded on a string","Often glass"]}`)

	res, err := s.service.ArticulateClues(s.ctx, model.ArticulateCluesRequest{Word: "bead", ContextText: "jewellery"})
	s.Require().NoError(err)
	s.Equal([]string{"Threaded on a string", "Often glass"}, res.Clues)
}

func (s *ServiceSuite) TestArticulateRequiresBoth() {
	_, err := s.service.ArticulateClues(s.ctx, model.ArticulateCluesRequest{Word: "bead"})
	s.ErrorIs(err, model.ErrInvalidInput)
	s.Empty(s.client.Calls())
}

func (s *ServiceSuite) TestBalderdashShufflesOptions() {
	s.client.QueueJSON(`{"realDefinition":"real","fakeDefinitions":["fake1","fake2","fake3"]}`)
	// Shuffle steps for 4 options: i=3 j=0, i=2 j=2, i=1 j=0
	s.random.QueueIntn(0, 2, 0)

	round, err := s.service.Balderdash(s.ctx, model.BalderdashRequest{Word: "quire"})
	s.Require().NoError(err)

	// [0 1 2 3] -> [3 1 2 0] -> [3 1 2 0] -> [1 3 2 0]
	s.Equal([]string{"fake1", "fake3", "fake2", "real"}, round.Options)
	s.Equal(3, round.RealIndex)
	s.True(round.IsReal(3))
	s.Equal("quire", round.Word)
}

func (s *ServiceSuite) TestBalderdashDefaultsFakeCount() {
	s.client.QueueJSON(`{"realDefinition":"real","fakeDefinitions":["a","b","c"]}`)

	_, err := s.service.Balderdash(s.ctx, model.BalderdashRequest{Word: "quire"})
	s.Require().NoError(err)

	calls := s.client.Calls()
	s.Require().Len(calls, 1)
	s.Contains(calls[0].Prompt, "exactly 3 fake definitions")
}

func (s *ServiceSuite) TestBalderdashFakeCountBounds() {
	_, err := s.service.Balderdash(s.ctx, model.BalderdashRequest{Word: "quire", NumFakeDefinitions: 7})
	s.ErrorIs(err, model.ErrInvalidInput)
	_, err = s.service.Balderdash(s.ctx, model.BalderdashRequest{Word: "quire", NumFakeDefinitions: -1})
	s.ErrorIs(err, model.ErrInvalidInput)
	_, err = s.service.Balderdash(s.ctx, model.BalderdashRequest{NumFakeDefinitions: 2})
	s.ErrorIs(err, model.ErrInvalidInput)
}

func (s *ServiceSuite) TestBalderdashWrongCountFromModel() {
	s.client.QueueJSON(`{"realDefinition":"real","fakeDefinitions":["a"]}`)

	_, err := s.service.Balderdash(s.ctx, model.BalderdashRequest{Word: "quire", NumFakeDefinitions: 2})
	s.ErrorIs(err, model.ErrGenerationUnavailable)
	s.ErrorIs(err, prompts.ErrMalformedOutput)
}

func (s *ServiceSuite) TestRolePlayLevel() {
	_, err := s.service.RolePlay(s.ctx, model.RolePlayRequest{Context: "cafe", Goal: "order", Level: "expert"})
	s.ErrorIs(err, model.ErrInvalidInput)

	s.client.QueueJSON(`{"scenarios":["Ordering a flat white"]}`)
	res, err := s.service.RolePlay(s.ctx, model.RolePlayRequest{Context: "cafe", Goal: "order", Level: "Beginner"})
	s.Require().NoError(err)
	s.Equal([]string{"Ordering a flat white"}, res.Scenarios)
	s.Contains(s.client.Calls()[0].Prompt, "Proficiency level: beginner")
}

func (s *ServiceSuite) TestRolePlayRequiresFields() {
	_, err := s.service.RolePlay(s.ctx, model.RolePlayRequest{Context: "cafe", Level: "beginner"})
	s.ErrorIs(err, model.ErrInvalidInput)
}

func (s *ServiceSuite) TestGrammarErrorsDefaultsAndBounds() {
	s.client.QueueJSON(`{"textWithErrors":"He go to school."}`)
	res, err := s.service.GrammarErrors(s.ctx, model.GrammarErrorsRequest{Text: "He goes to school."})
	s.Require().NoError(err)
	s.Equal("He go to school.", res.TextWithErrors)
	s.Contains(s.client.Calls()[0].Prompt, "exactly 3 grammatical errors")

	_, err = s.service.GrammarErrors(s.ctx, model.GrammarErrorsRequest{Text: "x", ErrorCount: 11})
	s.ErrorIs(err, model.ErrInvalidInput)
	_, err = s.service.GrammarErrors(s.ctx, model.GrammarErrorsRequest{Text: "  "})
	s.ErrorIs(err, model.ErrInvalidInput)
}

func (s *ServiceSuite) TestSummarize() {
	s.client.QueueJSON(`{"vocabularySummary":"words","grammarPatternsSummary":"patterns"}`)

	res, err := s.service.Summarize(s.ctx, model.SummaryRequest{DocumentText: "A document."})
	s.Require().NoError(err)
	s.Equal("words", res.VocabularySummary)
	s.Equal("patterns", res.GrammarPatternsSummary)
}

func (s *ServiceSuite) TestSummarizeRequiresText() {
	_, err := s.service.Summarize(s.ctx, model.SummaryRequest{LearningGoal: "idioms"})
	s.ErrorIs(err, model.ErrInvalidInput)
}

func (s *ServiceSuite) TestModelFailure() {
	s.client.QueueError(errors.New("quota exceeded"))

	_, err := s.service.Summarize(s.ctx, model.SummaryRequest{DocumentText: "doc"})
	s.ErrorIs(err, model.ErrGenerationUnavailable)
}
