// Package factory wires the application's services and their dependencies
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/Rishivarshney100/kuchbhi/internal/dependencies/clock"
	"github.com/Rishivarshney100/kuchbhi/internal/dependencies/random"
	"github.com/Rishivarshney100/kuchbhi/internal/dependencies/timer"
	"github.com/Rishivarshney100/kuchbhi/internal/services/generator"
	"github.com/Rishivarshney100/kuchbhi/internal/services/hanoi"
	"github.com/Rishivarshney100/kuchbhi/internal/services/leaderboard"
	"github.com/Rishivarshney100/kuchbhi/internal/services/player"
	"github.com/Rishivarshney100/kuchbhi/internal/services/quiz"
	"github.com/Rishivarshney100/kuchbhi/internal/services/scoring"
	"github.com/Rishivarshney100/kuchbhi/internal/services/scramble"
	"github.com/Rishivarshney100/kuchbhi/internal/storage"
	"github.com/Rishivarshney100/kuchbhi/internal/storage/memory"
	redisstorage "github.com/Rishivarshney100/kuchbhi/internal/storage/redis"
	"github.com/Rishivarshney100/kuchbhi/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.PlayerStore

	// External dependencies
	Clock     clock.Clock
	Random    random.Random
	Scheduler timer.Scheduler
	Generator *generator.Client

	// ShareURL is the portal address encoded into leaderboard share codes
	ShareURL string

	// Services
	Reconciler         *scoring.Reconciler
	PlayerService      *player.Service
	LeaderboardService *leaderboard.Service
	QuizController     *quiz.Controller
	HanoiController    *hanoi.Controller
	ScrambleController *scramble.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger

	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string

	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config

	// SQLitePath is the database file path (required if StorageType is "sqlite")
	SQLitePath string

	// GeneratorConfig holds generation API settings; a zero value runs on
	// the built-in fallback content only
	GeneratorConfig generator.Config

	// ShareURL is the portal address encoded into leaderboard share codes
	// (optional)
	ShareURL string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.PlayerStore
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}

	clk := clock.New()
	rnd := random.New()
	scheduler := timer.New()
	gen := generator.New(cfg.GeneratorConfig, logger)

	return newWithDependencies(store, clk, rnd, scheduler, gen, cfg.ShareURL, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.PlayerStore,
	clk clock.Clock,
	rnd random.Random,
	scheduler timer.Scheduler,
	gen *generator.Client,
	shareURL string,
	logger *slog.Logger,
) *App {
	reconciler := scoring.NewReconciler(store, logger)
	playerService := player.New(store, clk, logger)
	leaderboardService := leaderboard.New(store, logger)
	quizController := quiz.NewController(gen, reconciler, scheduler, rnd, logger)
	hanoiController := hanoi.NewController(reconciler, rnd, logger)
	scrambleController := scramble.NewController(gen, reconciler, scheduler, rnd, logger)

	return &App{
		Store:              store,
		ShareURL:           shareURL,
		Clock:              clk,
		Random:             rnd,
		Scheduler:          scheduler,
		Generator:          gen,
		Reconciler:         reconciler,
		PlayerService:      playerService,
		LeaderboardService: leaderboardService,
		QuizController:     quizController,
		HanoiController:    hanoiController,
		ScrambleController: scrambleController,
	}
}
