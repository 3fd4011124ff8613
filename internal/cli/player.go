package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management and action commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())
	cmd.AddCommand(newPlayerLoginCmd())
	cmd.AddCommand(newPlayerMeCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerSleepCmd())
	cmd.AddCommand(newPlayerWorkoutCmd())
	cmd.AddCommand(newPlayerWakeupCmd())
	cmd.AddCommand(newPlayerAttackCmd())
	cmd.AddCommand(newPlayerMoveCmd())

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	var name, secret string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"playerName": name,
				"secretKey":  secret,
			}
			var result AuthResult

			if err := client.Post("/api/v1/players/register", req, &result); err != nil {
				return err
			}

			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&secret, "secret", "", "Secret key (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("secret")

	return cmd
}

func newPlayerLoginCmd() *cobra.Command {
	var name, secret string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login as an existing player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"playerName": name,
				"secretKey":  secret,
			}
			var result AuthResult

			if err := client.Post("/api/v1/players/login", req, &result); err != nil {
				return err
			}

			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&secret, "secret", "", "Secret key (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("secret")

	return cmd
}

func newPlayerMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated player",
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
		Use:   "get <name>",
		Short: "Look up a player by name",
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

func newPlayerSleepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sleep",
		Short: "Go to sleep and recover stamina",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Post("/api/v1/players/me/sleep", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerWorkoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workout",
		Short: "Train to gain strength at the cost of stamina",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Post("/api/v1/players/me/workout", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerWakeupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wakeup",
		Short: "Wake up from sleep",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Post("/api/v1/players/me/wakeup", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerAttackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attack <target>",
		Short: "Attack another player by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"target": args[0]}
			var result AttackResult

			if err := client.Post("/api/v1/players/me/attack", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <location-id>",
		Short: "Move to another location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"locationId": args[0]}
			var result Player

			if err := client.Post("/api/v1/players/me/move", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
