package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())
	cmd.AddCommand(newPlayerLoginCmd())
	cmd.AddCommand(newPlayerUpdateCmd())

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new player account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"username": user,
				"password": pass,
			}
			var result Envelope

			if err := client.Post("/player/register", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newPlayerLoginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login with existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			q.Set("username", user)
			q.Set("password", pass)

			var result LoginResult
			if err := client.Get("/player/login?"+q.Encode(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newPlayerUpdateCmd() *cobra.Command {
	var user string
	var games, score int

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Add to a player's games-played and score counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("games") || !cmd.Flags().Changed("score") {
				return fmt.Errorf("--games and --score are required")
			}

			req := map[string]any{
				"username":            user,
				"add_to_games_played": games,
				"add_to_score":        score,
			}
			var result Envelope

			if err := client.Put("/player/update", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().IntVar(&games, "games", 0, "Games played delta (required)")
	cmd.Flags().IntVar(&score, "score", 0, "Score delta (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
