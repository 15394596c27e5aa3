package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Rishivarshney100/kuchbhi/internal/api/middleware"
	"github.com/Rishivarshney100/kuchbhi/internal/api/request"
	"github.com/Rishivarshney100/kuchbhi/internal/api/response"
	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/services/quiz"
)

// QuizHandler handles quiz session endpoints
type QuizHandler struct {
	controller *quiz.Controller
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(controller *quiz.Controller) *QuizHandler {
	return &QuizHandler{
		controller: controller,
	}
}

// Start handles POST /api/v1/games/quiz/sessions
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PlayerFromContext(r.Context())
	if !ok {
		WriteError(w, NewUnauthorizedError())
		return
	}

	var req request.StartQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.controller.Start(r.Context(), p.ID, req.Topic, req.Difficulty)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.QuizSessionFromModel(session))
}

// Get handles GET /api/v1/games/quiz/sessions/{id}
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.Get(model.SessionID(mux.Vars(r)["id"]))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.QuizSessionFromModel(session))
}

// Answer handles POST /api/v1/games/quiz/sessions/{id}/answer
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req request.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	outcome, err := h.controller.Answer(r.Context(), model.SessionID(mux.Vars(r)["id"]), req.Option)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AnswerResultFromOutcome(outcome))
}

// Abandon handles DELETE /api/v1/games/quiz/sessions/{id}
func (h *QuizHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Abandon(model.SessionID(mux.Vars(r)["id"])); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
