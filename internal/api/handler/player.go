package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Rishivarshney100/kuchbhi/internal/api/middleware"
	"github.com/Rishivarshney100/kuchbhi/internal/api/request"
	"github.com/Rishivarshney100/kuchbhi/internal/api/response"
	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/services/player"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	playerService *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService *player.Service) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// Register handles POST /api/v1/players
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	p, err := h.playerService.Register(r.Context(), player.RegisterParams{
		Name:         req.Name,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Age:          req.Age,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(p))
}

// GetMe handles GET /api/v1/players/me
func (h *PlayerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PlayerFromContext(r.Context())
	if !ok {
		WriteError(w, NewUnauthorizedError())
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	p, err := h.playerService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}
