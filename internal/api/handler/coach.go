package handler

import (
	"context"
	"net/http"

	"github.com/mcoot/wordcoach/internal/api/apierr"
	"github.com/mcoot/wordcoach/internal/api/request"
	"github.com/mcoot/wordcoach/internal/api/response"
	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/services/coach"
)

// CoachHandler serves the coaching games. coach may be nil when no language
// model is configured, in which case every route answers 503.
type CoachHandler struct {
	coach *coach.Service
}

// NewCoachHandler creates a new coach handler
func NewCoachHandler(coach *coach.Service) *CoachHandler {
	return &CoachHandler{coach: coach}
}

// serve decodes In, maps it with build, runs it and writes the result
func serve[In, Req, Out any](
	h *CoachHandler,
	w http.ResponseWriter,
	r *http.Request,
	build func(In) Req,
	call func(*coach.Service, context.Context, Req) (*Out, error),
) {
	if h.coach == nil {
		WriteError(w, apierr.NewCoachUnavailableError())
		return
	}

	var in In
	if err := decode(r, &in, false); err != nil {
		WriteError(w, err)
		return
	}

	out, err := call(h.coach, r.Context(), build(in))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, out)
}

// Articulate handles POST /api/v1/coach/articulate
func (h *CoachHandler) Articulate(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, func(in request.ArticulateRequest) model.ArticulateCluesRequest {
		return model.ArticulateCluesRequest{Word: in.Word, ContextText: in.Context}
	}, (*coach.Service).ArticulateClues)
}

// Balderdash handles POST /api/v1/coach/balderdash
func (h *CoachHandler) Balderdash(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, func(in request.BalderdashRequest) model.BalderdashRequest {
		return model.BalderdashRequest{Word: in.Word, Context: in.Context, NumFakeDefinitions: in.NumFakeDefinitions}
	}, (*coach.Service).Balderdash)
}

// RolePlay handles POST /api/v1/coach/role-play
func (h *CoachHandler) RolePlay(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, func(in request.RolePlayRequest) model.RolePlayRequest {
		return model.RolePlayRequest{Context: in.Context, Goal: in.Goal, Level: in.Level, UploadedText: in.UploadedText}
	}, (*coach.Service).RolePlay)
}

// Grammar handles POST /api/v1/coach/grammar
func (h *CoachHandler) Grammar(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, func(in request.GrammarRequest) model.GrammarErrorsRequest {
		return model.GrammarErrorsRequest{Text: in.Text, ErrorCount: in.ErrorCount}
	}, (*coach.Service).GrammarErrors)
}

// Summary handles POST /api/v1/coach/summary
func (h *CoachHandler) Summary(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, func(in request.SummaryRequest) model.SummaryRequest {
		return model.SummaryRequest{DocumentText: in.DocumentText, LearningGoal: in.LearningGoal}
	}, (*coach.Service).Summarize)
}
