// Package coach runs the language-learning games that are pure content
// generation: Articulate clues, Balderdash, role-play, grammar puzzles and
// document summaries.
package coach

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/wordcoach/internal/dependencies/random"
	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/prompts"
)

// Balderdash fake definition bounds
const (
	MinFakeDefinitions     = 1
	MaxFakeDefinitions     = 6
	DefaultFakeDefinitions = 3
)

var levels = []string{model.LevelBeginner, model.LevelIntermediate, model.LevelAdvanced}

// Service validates coaching requests and runs their prompt flows
type Service struct {
	flows  *prompts.Flows
	random random.Random
	logger *slog.Logger
}

// New creates a coach Service
func New(flows *prompts.Flows, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		flows:  flows,
		random: random,
		logger: logger,
	}
}

// ArticulateClues generates clues for a word in a context
func (s *Service) ArticulateClues(ctx context.Context, req model.ArticulateCluesRequest) (*model.ArticulateClues, error) {
	req.Word = strings.TrimSpace(req.Word)
	req.ContextText = strings.TrimSpace(req.ContextText)
	if req.Word == "" || req.ContextText == "" {
		return nil, invalid("word and context are required")
	}
	return run(ctx, s, s.flows.ArticulateClues, req)
}

// Balderdash generates a round: the real definition hidden among fakes
func (s *Service) Balderdash(ctx context.Context, req model.BalderdashRequest) (*model.BalderdashRound, error) {
	req.Word = strings.TrimSpace(req.Word)
	req.Context = strings.TrimSpace(req.Context)
	if req.Word == "" {
		return nil, invalid("word is required")
	}
	if req.NumFakeDefinitions == 0 {
		req.NumFakeDefinitions = DefaultFakeDefinitions
	}
	if req.NumFakeDefinitions < MinFakeDefinitions || req.NumFakeDefinitions > MaxFakeDefinitions {
		return nil, invalid(fmt.Sprintf("number of fake definitions must be between %d and %d", MinFakeDefinitions, MaxFakeDefinitions))
	}

	defs, err := run(ctx, s, s.flows.BalderdashDefinitions, req)
	if err != nil {
		return nil, err
	}

	options := append([]string{defs.RealDefinition}, defs.FakeDefinitions...)
	order := s.permutation(len(options))
	round := &model.BalderdashRound{
		Word:    req.Word,
		Options: lo.Map(order, func(i int, _ int) string { return options[i] }),
	}
	round.RealIndex = lo.IndexOf(order, 0)
	return round, nil
}

// RolePlay generates conversation scenarios
func (s *Service) RolePlay(ctx context.Context, req model.RolePlayRequest) (*model.RolePlayScenarios, error) {
	req.Context = strings.TrimSpace(req.Context)
	req.Goal = strings.TrimSpace(req.Goal)
	req.Level = strings.ToLower(strings.TrimSpace(req.Level))
	if req.Context == "" || req.Goal == "" || req.Level == "" {
		return nil, invalid("context, goal and level are required")
	}
	if !lo.Contains(levels, req.Level) {
		return nil, invalid(fmt.Sprintf("level must be one of %s", strings.Join(levels, ", ")))
	}
	return run(ctx, s, s.flows.RolePlayScenarios, req)
}

// GrammarErrors rewrites a text with a number of grammar mistakes for the
// learner to find
func (s *Service) GrammarErrors(ctx context.Context, req model.GrammarErrorsRequest) (*model.GrammarErrors, error) {
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return nil, invalid("text is required")
	}
	if req.ErrorCount == 0 {
		req.ErrorCount = model.DefaultGrammarErrors
	}
	if req.ErrorCount < model.MinGrammarErrors || req.ErrorCount > model.MaxGrammarErrors {
		return nil, invalid(fmt.Sprintf("error count must be between %d and %d", model.MinGrammarErrors, model.MaxGrammarErrors))
	}
	return run(ctx, s, s.flows.GrammaticalErrors, req)
}

// Summarize extracts vocabulary and grammar highlights from a document
func (s *Service) Summarize(ctx context.Context, req model.SummaryRequest) (*model.DocumentSummary, error) {
	req.DocumentText = strings.TrimSpace(req.DocumentText)
	req.LearningGoal = strings.TrimSpace(req.LearningGoal)
	if req.DocumentText == "" {
		return nil, invalid("document text is required")
	}
	return run(ctx, s, s.flows.SummarizeDocument, req)
}

// permutation returns a uniformly shuffled [0, n)
func (s *Service) permutation(n int) []int {
	order := lo.Range(n)
	for i := n - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

func run[In, Out any](ctx context.Context, s *Service, flow *prompts.Flow[In, Out], in In) (*Out, error) {
	out, err := flow.Run(ctx, in)
	if err != nil {
		s.logger.Warn("generation failed",
			slog.String("flow", flow.Name()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", model.ErrGenerationUnavailable, err)
	}
	s.logger.Info("generation succeeded", slog.String("flow", flow.Name()))
	return out, nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", model.ErrInvalidInput, msg)
}
