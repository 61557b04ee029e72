package judge

import (
	"context"
	"log/slog"
	"time"

	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/prompts"
	"github.com/mcoot/wordcoach/internal/services/scoring"
)

// LLM judges plays by asking a language model through the validateWord flow
type LLM struct {
	flow    *prompts.Flow[model.ValidationRequest, model.ValidationResult]
	scoring *scoring.Service
	logger  *slog.Logger
}

// NewLLM creates a model-backed judge
func NewLLM(flows *prompts.Flows, scoring *scoring.Service, logger *slog.Logger) *LLM {
	return &LLM{
		flow:    flows.ValidateWord,
		scoring: scoring,
		logger:  logger,
	}
}

// Ensure LLM implements Judge
var _ Judge = (*LLM)(nil)

// Judge runs the flow once. The model decides the three checks and the
// feedback; the score is computed locally from letter values.
func (j *LLM) Judge(ctx context.Context, req model.ValidationRequest) (*model.ValidationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := j.flow.Run(ctx, req)
	if err != nil {
		j.logger.Warn("llm judge failed",
			slog.String("word", req.Word),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	res.Score = 0
	if res.Passed() {
		res.Score = j.scoring.ScoreWord(req.Word, len(req.Tiles))
	}

	j.logger.Info("llm judge verdict",
		slog.String("word", req.Word),
		slog.Bool("passed", res.Passed()),
		slog.Int("score", res.Score),
		slog.Duration("duration", time.Since(start)),
	)
	return res, nil
}
