package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"notes-copilot/config"
	"notes-copilot/internal/app"
	"notes-copilot/pkg/log"
)

// Loader builds the application for one command run.
type Loader func(ctx context.Context) (*app.App, error)

type runner struct {
	load Loader
}

// NewRootCmd builds the command tree. load is called lazily by commands
// that need the application.
func NewRootCmd(version string, load Loader) *cobra.Command {
	r := &runner{load: load}

	rootCmd := &cobra.Command{
		Use:   "copilot",
		Short: "notes-copilot - briefings from your notes and TickTick tasks",
		Long: `copilot sends prompts to the configured text-generation backend (Ollama or
OpenAI), classifies TickTick tasks and writes briefings into the notes vault.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.AddCommand(r.checkCmd())
	rootCmd.AddCommand(r.generateCmd())
	rootCmd.AddCommand(r.tasksCmd())
	rootCmd.AddCommand(r.briefingCmd())
	rootCmd.AddCommand(r.organizeCmd())
	rootCmd.AddCommand(r.authCmd())
	rootCmd.AddCommand(versionCmd(version))

	return rootCmd
}

// Execute runs the CLI with configuration from config.Load.
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd(version, loadFromConfig)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func loadFromConfig(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	return app.New(ctx, cfg, logger)
}

// withApp loads the application, runs fn and releases it.
func (r *runner) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := r.load(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func versionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "copilot %s\n", version)
		},
	}
}
