package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())
	cmd.AddCommand(newPlayerMeCmd())
	cmd.AddCommand(newPlayerGetCmd())

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	var name, email, mobile string
	var age int

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new player and save the identity locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":         name,
				"email":        email,
				"mobileNumber": mobile,
				"age":          age,
			}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			// Save the identity for later commands
			if err := cfg.SavePlayerID(result.ID); err != nil {
				return fmt.Errorf("failed to save player id: %w", err)
			}
			client.SetPlayerID(result.ID)

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&mobile, "mobile", "", "10-digit mobile number (required)")
	cmd.Flags().IntVar(&age, "age", 0, "Age (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("mobile")
	_ = cmd.MarkFlagRequired("age")

	return cmd
}

func newPlayerMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the currently saved player",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get("/api/v1/players/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <player-id>",
		Short: "Show a player by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
