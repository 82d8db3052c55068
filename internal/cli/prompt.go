package cli

import (
	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Prompt management commands",
	}

	cmd.AddCommand(newPromptCreateCmd())
	cmd.AddCommand(newPromptDeleteCmd())
	cmd.AddCommand(newPromptModerateCmd())

	return cmd
}

func newPromptCreateCmd() *cobra.Command {
	var user, text string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Submit a new prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"username": user,
				"text":     text,
			}
			var result CreatePromptResult

			if err := client.Post("/prompt/create", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&text, "text", "", "Prompt text (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newPromptDeleteCmd() *cobra.Command {
	var user, id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"username":  user,
				"prompt_id": id,
			}
			var result Envelope

			if err := client.Post("/prompt/delete", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&id, "id", "", "Prompt ID (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newPromptModerateCmd() *cobra.Command {
	var user, id string

	cmd := &cobra.Command{
		Use:   "moderate",
		Short: "Run content-safety moderation on a prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"username":  user,
				"prompt_id": id,
			}
			var result Envelope

			if err := client.Post("/prompt/moderate", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&id, "id", "", "Prompt ID (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
