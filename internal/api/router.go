// Package api exposes the portal over HTTP: registration, game sessions,
// and the shared leaderboard.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Rishivarshney100/kuchbhi/internal/api/handler"
	"github.com/Rishivarshney100/kuchbhi/internal/api/middleware"
	"github.com/Rishivarshney100/kuchbhi/internal/factory"
	basemiddleware "github.com/Rishivarshney100/kuchbhi/internal/middleware"
)

// NewRouter creates a new API router with all routes configured
func NewRouter(app *factory.App, logger *slog.Logger) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(app.PlayerService)
	leaderboardHandler := handler.NewLeaderboardHandler(app.LeaderboardService, app.ShareURL)
	quizHandler := handler.NewQuizHandler(app.QuizController)
	hanoiHandler := handler.NewHanoiHandler(app.HanoiController)
	scrambleHandler := handler.NewScrambleHandler(app.ScrambleController)

	// Create middleware
	identityMiddleware := middleware.Identity(app.PlayerService)
	loggingMiddleware := basemiddleware.Logging(logger)
	recoveryMiddleware := middleware.Recovery(logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes (registration needs no prior identity). The /me route
	// must be registered before the {id} wildcard so it is not captured as
	// a lookup for a player literally named "me".
	api.HandleFunc("/players", playerHandler.Register).Methods(http.MethodPost)
	api.Handle("/players/me", identityMiddleware(http.HandlerFunc(playerHandler.GetMe))).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)

	// Leaderboard routes (public)
	api.HandleFunc("/leaderboard", leaderboardHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard/{game}", leaderboardHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard/{game}/qr", leaderboardHandler.ShareQR).Methods(http.MethodGet)

	// Game session routes (all require a player identity)
	games := api.PathPrefix("/games").Subrouter()
	games.Use(identityMiddleware)

	games.HandleFunc("/quiz/sessions", quizHandler.Start).Methods(http.MethodPost)
	games.HandleFunc("/quiz/sessions/{id}", quizHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/quiz/sessions/{id}", quizHandler.Abandon).Methods(http.MethodDelete)
	games.HandleFunc("/quiz/sessions/{id}/answer", quizHandler.Answer).Methods(http.MethodPost)

	games.HandleFunc("/hanoi/sessions", hanoiHandler.Start).Methods(http.MethodPost)
	games.HandleFunc("/hanoi/sessions/{id}", hanoiHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/hanoi/sessions/{id}", hanoiHandler.Abandon).Methods(http.MethodDelete)
	games.HandleFunc("/hanoi/sessions/{id}/move", hanoiHandler.Move).Methods(http.MethodPost)

	games.HandleFunc("/scramble/sessions", scrambleHandler.Start).Methods(http.MethodPost)
	games.HandleFunc("/scramble/sessions/{id}", scrambleHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/scramble/sessions/{id}", scrambleHandler.Abandon).Methods(http.MethodDelete)
	games.HandleFunc("/scramble/sessions/{id}/guess", scrambleHandler.Guess).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
