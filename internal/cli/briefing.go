package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"notes-copilot/internal/app"
)

func (r *runner) briefingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "briefing",
		Short: "Write briefings into the vault",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "daily",
		Short: "Create today's briefing from recent daily notes and tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app.App) error {
				res, err := a.BriefingUC.CreateDailyBriefing(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d notes, %d tasks)\n", res.Path, res.Notes, res.Tasks)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "monthly",
		Short: "Create one summary per month of daily notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app.App) error {
				results, err := a.BriefingUC.CreateMonthlySummary(ctx)
				for _, res := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d notes)\n", res.Path, res.Notes)
				}
				return err
			})
		},
	})

	return cmd
}

func (r *runner) organizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "organize <path>",
		Short: "Rewrite a vault document in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app.App) error {
				res, err := a.BriefingUC.OrganizeText(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Organized %s\n", res.Path)
				return nil
			})
		},
	}
}
