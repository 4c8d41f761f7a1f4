package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"notes-copilot/internal/app"
)

func (r *runner) tasksCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show overdue, due soon, in-progress and recently completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app.App) error {
				b, err := a.TaskUC.GetRelevantTasks(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if asJSON {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					return enc.Encode(b)
				}
				if b.Total() == 0 {
					fmt.Fprintln(out, "No relevant tasks.")
					return nil
				}
				fmt.Fprint(out, a.TaskUC.FormatBriefing(b))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print buckets as JSON")
	return cmd
}
