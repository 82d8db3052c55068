package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newUtilsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "utils",
		Short: "Utility commands",
	}

	cmd.AddCommand(newUtilsGetCmd())
	cmd.AddCommand(newUtilsWelcomeCmd())

	return cmd
}

func newUtilsGetCmd() *cobra.Command {
	var docType, user string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List stored players or prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			q.Set("type", docType)
			if user != "" {
				q.Set("username", user)
			}
			path := "/utils/get?" + q.Encode()

			out := NewOutput(cfg.Output)

			switch docType {
			case "player":
				var result PlayerList
				if err := client.Get(path, &result); err != nil {
					return err
				}
				out.Print(result)
			case "prompt":
				var result PromptList
				if err := client.Get(path, &result); err != nil {
					return err
				}
				out.Print(result)
			default:
				return fmt.Errorf("--type must be 'player' or 'prompt'")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&docType, "type", "", "Document type: player, prompt (required)")
	cmd.Flags().StringVar(&user, "user", "", "Filter prompts by owner username")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newUtilsWelcomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "welcome",
		Short: "Fetch the welcome message",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Envelope
			if err := client.Get("/utils/welcome", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult
			if err := client.Get("/health", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
