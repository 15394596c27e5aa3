package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Technical quiz commands",
	}

	cmd.AddCommand(newQuizStartCmd())
	cmd.AddCommand(newQuizShowCmd())
	cmd.AddCommand(newQuizAnswerCmd())
	cmd.AddCommand(newQuizAbandonCmd())

	return cmd
}

func newQuizStartCmd() *cobra.Command {
	var topic, difficulty string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a quiz session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"topic": topic, "difficulty": difficulty}
			var result QuizSession

			if err := client.Post("/api/v1/games/quiz/sessions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Quiz topic (required)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "easy", "Difficulty: easy, medium, hard")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}

func newQuizShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show a quiz session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result QuizSession

			if err := client.Get("/api/v1/games/quiz/sessions/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newQuizAnswerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "answer <session-id> <option>",
		Short: "Answer the current question by option index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			option, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("option must be a number: %w", err)
			}

			var result AnswerResult
			path := fmt.Sprintf("/api/v1/games/quiz/sessions/%s/answer", args[0])
			if err := client.Post(path, map[string]int{"option": option}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newQuizAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <session-id>",
		Short: "Abandon a quiz session without saving a score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/games/quiz/sessions/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session abandoned")
			return nil
		},
	}
}
