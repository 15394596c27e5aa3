package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Rishivarshney100/kuchbhi/internal/api/middleware"
	"github.com/Rishivarshney100/kuchbhi/internal/api/request"
	"github.com/Rishivarshney100/kuchbhi/internal/api/response"
	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/services/hanoi"
	"github.com/Rishivarshney100/kuchbhi/internal/services/scoring"
)

// HanoiHandler handles Tower of Hanoi session endpoints
type HanoiHandler struct {
	controller *hanoi.Controller
}

// NewHanoiHandler creates a new Tower of Hanoi handler
func NewHanoiHandler(controller *hanoi.Controller) *HanoiHandler {
	return &HanoiHandler{
		controller: controller,
	}
}

// Start handles POST /api/v1/games/hanoi/sessions
func (h *HanoiHandler) Start(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PlayerFromContext(r.Context())
	if !ok {
		WriteError(w, NewUnauthorizedError())
		return
	}

	var req request.StartHanoiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.controller.Start(r.Context(), p.ID, hanoi.Config{
		Disks:  req.Disks,
		Policy: scoring.HanoiPolicy(req.Policy),
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.HanoiSessionFromModel(session))
}

// Get handles GET /api/v1/games/hanoi/sessions/{id}
func (h *HanoiHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.Get(model.SessionID(mux.Vars(r)["id"]))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HanoiSessionFromModel(session))
}

// Move handles POST /api/v1/games/hanoi/sessions/{id}/move
func (h *HanoiHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.controller.Move(r.Context(), model.SessionID(mux.Vars(r)["id"]), req.From, req.To)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HanoiSessionFromModel(session))
}

// Abandon handles DELETE /api/v1/games/hanoi/sessions/{id}
func (h *HanoiHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Abandon(model.SessionID(mux.Vars(r)["id"])); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
