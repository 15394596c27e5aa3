package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Rishivarshney100/kuchbhi/internal/api"
	"github.com/Rishivarshney100/kuchbhi/internal/factory"
	"github.com/Rishivarshney100/kuchbhi/internal/services/generator"
	redisstorage "github.com/Rishivarshney100/kuchbhi/internal/storage/redis"
)

type config struct {
	bind         string
	port         int
	storage      string
	redisURL     string
	sqlitePath   string
	geminiAPIKey string
	geminiModel  string
	shareURL     string
	verbose      bool
}

func (c *config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	switch c.storage {
	case factory.StorageTypeMemory, factory.StorageTypeRedis, factory.StorageTypeSQLite:
	default:
		return fmt.Errorf("invalid storage backend: %s", c.storage)
	}
	if c.storage == factory.StorageTypeRedis && c.redisURL == "" {
		return errors.New("--redis-url is required with --storage redis")
	}
	if c.storage == factory.StorageTypeSQLite && c.sqlitePath == "" {
		return errors.New("--sqlite-path is required with --storage sqlite")
	}
	return nil
}

func newCmd(cfg *config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("KUCHBHI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "server",
		Short:         "A casual gaming portal with a quiz, Tower of Hanoi and word scramble sharing one leaderboard.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: KUCHBHI_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: KUCHBHI_PORT)")
	fs.StringVar(&cfg.storage, "storage", factory.StorageTypeMemory, "storage backend: memory, redis or sqlite (env: KUCHBHI_STORAGE)")
	fs.StringVar(&cfg.redisURL, "redis-url", "", "redis connection URL (env: KUCHBHI_REDIS_URL)")
	fs.StringVar(&cfg.sqlitePath, "sqlite-path", "", "sqlite database file path (env: KUCHBHI_SQLITE_PATH)")
	fs.StringVar(&cfg.geminiAPIKey, "gemini-api-key", "", "generation API key; empty serves built-in content (env: KUCHBHI_GEMINI_API_KEY)")
	fs.StringVar(&cfg.geminiModel, "gemini-model", "", "generation model name (env: KUCHBHI_GEMINI_MODEL)")
	fs.StringVar(&cfg.shareURL, "share-url", "http://localhost:8080", "public portal URL encoded into leaderboard share codes (env: KUCHBHI_SHARE_URL)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "debug-level logging (env: KUCHBHI_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	return cmd
}

func run(ctx context.Context, cfg *config) error {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	generatorCfg := generator.DefaultConfig()
	generatorCfg.APIKey = cfg.geminiAPIKey
	if cfg.geminiModel != "" {
		generatorCfg.Model = cfg.geminiModel
	}

	factoryCfg := factory.Config{
		Logger:          logger,
		StorageType:     cfg.storage,
		SQLitePath:      cfg.sqlitePath,
		GeneratorConfig: generatorCfg,
		ShareURL:        cfg.shareURL,
	}
	if cfg.storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.redisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer func() { _ = app.Store.Close() }()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := app.Store.Ping(pingCtx); err != nil {
		return fmt.Errorf("storage backend unreachable: %w", err)
	}

	router := api.NewRouter(app, logger)

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.bind
	serverConfig.Port = cfg.port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return server.Shutdown(context.Background())
	}
}

func main() {
	cfg := &config{}
	if err := newCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
