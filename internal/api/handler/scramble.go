package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Rishivarshney100/kuchbhi/internal/api/middleware"
	"github.com/Rishivarshney100/kuchbhi/internal/api/request"
	"github.com/Rishivarshney100/kuchbhi/internal/api/response"
	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/services/scramble"
)

// ScrambleHandler handles word scramble session endpoints
type ScrambleHandler struct {
	controller *scramble.Controller
}

// NewScrambleHandler creates a new word scramble handler
func NewScrambleHandler(controller *scramble.Controller) *ScrambleHandler {
	return &ScrambleHandler{
		controller: controller,
	}
}

// Start handles POST /api/v1/games/scramble/sessions
func (h *ScrambleHandler) Start(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PlayerFromContext(r.Context())
	if !ok {
		WriteError(w, NewUnauthorizedError())
		return
	}

	var req request.StartScrambleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.controller.Start(r.Context(), p.ID, req.Difficulty)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ScrambleSessionFromModel(session))
}

// Get handles GET /api/v1/games/scramble/sessions/{id}
func (h *ScrambleHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.Get(model.SessionID(mux.Vars(r)["id"]))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScrambleSessionFromModel(session))
}

// Guess handles POST /api/v1/games/scramble/sessions/{id}/guess
func (h *ScrambleHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	outcome, err := h.controller.Guess(r.Context(), model.SessionID(mux.Vars(r)["id"]), req.Guess)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessResultFromOutcome(outcome))
}

// Abandon handles DELETE /api/v1/games/scramble/sessions/{id}
func (h *ScrambleHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Abandon(model.SessionID(mux.Vars(r)["id"])); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
