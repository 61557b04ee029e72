package handler

import (
	"net/http"

	"github.com/mcoot/wordcoach/internal/api/response"
	"github.com/mcoot/wordcoach/internal/model"
)

// Board handles GET /api/v1/board
func Board(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.BoardFromModel(model.StandardBoard()))
}

// Health handles GET /api/v1/health
func Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
