package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScrambleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Word scramble commands",
	}

	cmd.AddCommand(newScrambleStartCmd())
	cmd.AddCommand(newScrambleShowCmd())
	cmd.AddCommand(newScrambleGuessCmd())
	cmd.AddCommand(newScrambleAbandonCmd())

	return cmd
}

func newScrambleStartCmd() *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a word scramble session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"difficulty": difficulty}
			var result ScrambleSession

			if err := client.Post("/api/v1/games/scramble/sessions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "easy", "Difficulty: easy, medium, hard")

	return cmd
}

func newScrambleShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show a word scramble session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ScrambleSession

			if err := client.Get("/api/v1/games/scramble/sessions/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newScrambleGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <session-id> <word>",
		Short: "Guess the current scrambled word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GuessResult
			path := fmt.Sprintf("/api/v1/games/scramble/sessions/%s/guess", args[0])
			if err := client.Post(path, map[string]string{"guess": args[1]}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newScrambleAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <session-id>",
		Short: "Abandon a word scramble session without saving a score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/games/scramble/sessions/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session abandoned")
			return nil
		},
	}
}
