package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"notes-copilot/internal/app"
	"notes-copilot/pkg/llmprovider"
)

func (r *runner) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the text-generation backend and TickTick setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app.App) error {
				out := cmd.OutOrStdout()
				p := a.Manager.Provider()

				connErr := a.Manager.CheckConnection(ctx)
				if connErr != nil {
					fmt.Fprintf(out, "  ✗ %s (%s): %v\n", p.Name(), p.Model(), connErr)
				} else {
					fmt.Fprintf(out, "  ✓ %s (%s)\n", p.Name(), p.Model())
				}

				switch {
				case !a.Config.TickTick.Enabled:
					fmt.Fprintln(out, "  - ticktick: disabled")
				case a.Credentials.AccessToken() == "":
					fmt.Fprintln(out, "  ✗ ticktick: not connected, run: copilot auth url")
				default:
					fmt.Fprintln(out, "  ✓ ticktick: connected")
				}

				return connErr
			})
		},
	}
}

func (r *runner) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [prompt...]",
		Short: "Send a prompt and print the complete answer",
		Long:  "Send a prompt to the configured backend. Without arguments the prompt is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			if prompt == "" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read prompt: %w", err)
				}
				prompt = strings.TrimSpace(string(data))
			}
			if prompt == "" {
				return errors.New("empty prompt")
			}

			return r.withApp(cmd, func(ctx context.Context, a *app.App) error {
				resp, err := a.Manager.Generate(ctx, &llmprovider.Request{Prompt: prompt})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
				return nil
			})
		},
	}
}
