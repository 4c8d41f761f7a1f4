package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"notes-copilot/internal/app"
	"notes-copilot/internal/middleware"
)

func (r *runner) authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Connect TickTick and issue API tokens",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "url",
		Short: "Print the TickTick authorization URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app.App) error {
				authURL, _, err := a.Authenticator.AuthCodeURL()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "Open this URL, approve access, then run: copilot auth exchange <code>")
				fmt.Fprintln(out, authURL)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "exchange <code>",
		Short: "Exchange an authorization code for tokens and store them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Authenticator.ExchangeCode(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "TickTick connected.")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Forget stored TickTick tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app.App) error {
				a.Credentials.ClearAccessToken()
				if err := a.CredentialStore.Delete(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "TickTick tokens removed.")
				return nil
			})
		},
	})

	var (
		subject string
		ttl     time.Duration
	)
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app.App) error {
				secret := a.Config.Auth.JWTSecret
				if secret == "" {
					return errors.New("auth.jwt_secret is not set")
				}
				token, err := middleware.GenerateToken([]byte(secret), subject, ttl)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), token)
				return nil
			})
		},
	}
	tokenCmd.Flags().StringVar(&subject, "subject", "cli", "Token subject")
	tokenCmd.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "Token lifetime")
	cmd.AddCommand(tokenCmd)

	return cmd
}
