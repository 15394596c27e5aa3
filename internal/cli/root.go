// Package cli is a command-line client for the casual gaming portal API
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "kuchbhi",
		Short: "CLI client for the casual gaming portal API",
		Long: `kuchbhi is a CLI client for the casual gaming portal JSON API.

It supports player registration, playing the technical quiz, the Tower of
Hanoi and the word scramble, and viewing the shared leaderboard. The player
identity from registration is saved locally and replayed on later commands.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load the saved player id if not provided via flag/env
			if err := cfg.LoadPlayerID(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.PlayerID)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: KUCHBHI_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerID, "player-id", cfg.PlayerID, "Player id (env: KUCHBHI_PLAYER_ID)")
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerIDFile, "player-id-file", cfg.PlayerIDFile, "Player id file path (env: KUCHBHI_PLAYER_ID_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newQuizCmd())
	rootCmd.AddCommand(newHanoiCmd())
	rootCmd.AddCommand(newScrambleCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
