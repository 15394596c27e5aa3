package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	var game string
	var qrFile string

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the shared leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if qrFile != "" {
				if game == "" {
					return fmt.Errorf("--game is required with --qr")
				}
				png, err := client.GetRaw(fmt.Sprintf("/api/v1/leaderboard/%s/qr", game))
				if err != nil {
					return err
				}
				if err := os.WriteFile(qrFile, png, 0644); err != nil {
					return fmt.Errorf("failed to write QR image: %w", err)
				}
				out.PrintMessage(fmt.Sprintf("Share code saved to %s", qrFile))
				return nil
			}

			if game != "" {
				var board Leaderboard
				if err := client.Get("/api/v1/leaderboard/"+game, &board); err != nil {
					return err
				}
				out.Print(board)
				return nil
			}

			var boards AllLeaderboards
			if err := client.Get("/api/v1/leaderboard", &boards); err != nil {
				return err
			}
			out.Print(boards)
			return nil
		},
	}

	cmd.Flags().StringVar(&game, "game", "", "Limit to one game (technicalQuiz, towerOfHanoi, wordScramble)")
	cmd.Flags().StringVar(&qrFile, "qr", "", "Save a shareable QR code PNG to this file (requires --game)")

	return cmd
}
