package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newHanoiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hanoi",
		Short: "Tower of Hanoi commands",
	}

	cmd.AddCommand(newHanoiStartCmd())
	cmd.AddCommand(newHanoiShowCmd())
	cmd.AddCommand(newHanoiMoveCmd())
	cmd.AddCommand(newHanoiAbandonCmd())

	return cmd
}

func newHanoiStartCmd() *cobra.Command {
	var disks int
	var policy string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a Tower of Hanoi session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if disks != 0 {
				req["disks"] = disks
			}
			if policy != "" {
				req["policy"] = policy
			}

			var result HanoiSession
			if err := client.Post("/api/v1/games/hanoi/sessions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&disks, "disks", 0, "Number of disks, 3-7 (default 3)")
	cmd.Flags().StringVar(&policy, "policy", "", "Scoring policy: ratio (default) or penalty")

	return cmd
}

func newHanoiShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show a Tower of Hanoi session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HanoiSession

			if err := client.Get("/api/v1/games/hanoi/sessions/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newHanoiMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <session-id> <from-rod> <to-rod>",
		Short: "Move the top disk between rods (0, 1, 2)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("from-rod must be a number: %w", err)
			}
			to, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("to-rod must be a number: %w", err)
			}

			var result HanoiSession
			path := fmt.Sprintf("/api/v1/games/hanoi/sessions/%s/move", args[0])
			if err := client.Post(path, map[string]int{"from": from, "to": to}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newHanoiAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <session-id>",
		Short: "Abandon a Tower of Hanoi session without saving a score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/games/hanoi/sessions/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session abandoned")
			return nil
		},
	}
}
