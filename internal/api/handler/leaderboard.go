package handler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Rishivarshney100/kuchbhi/internal/api/response"
	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/services/leaderboard"
)

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	leaderboardService *leaderboard.Service

	// shareURL is the portal address encoded into share codes
	shareURL string
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *leaderboard.Service, shareURL string) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
		shareURL:           shareURL,
	}
}

// GetAll handles GET /api/v1/leaderboard
func (h *LeaderboardHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	boards, err := h.leaderboardService.All(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make(map[string]response.Leaderboard, len(boards))
	for game, board := range boards {
		out[string(game)] = response.LeaderboardFromModel(game, board)
	}
	response.JSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/leaderboard/{game}
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	game, err := model.ParseGameKey(mux.Vars(r)["game"])
	if err != nil {
		WriteError(w, err)
		return
	}

	board, err := h.leaderboardService.Top(r.Context(), game)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(game, board))
}

// ShareQR handles GET /api/v1/leaderboard/{game}/qr
func (h *LeaderboardHandler) ShareQR(w http.ResponseWriter, r *http.Request) {
	game, err := model.ParseGameKey(mux.Vars(r)["game"])
	if err != nil {
		WriteError(w, err)
		return
	}

	url := fmt.Sprintf("%s/leaderboard/%s", h.shareURL, game)
	png, err := h.leaderboardService.ShareQR(url)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.PNG(w, png)
}
