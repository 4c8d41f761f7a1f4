// Package app builds the dependency graph shared by the HTTP server and
// the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/99designs/keyring"

	"notes-copilot/config"
	"notes-copilot/internal/briefing"
	briefingUC "notes-copilot/internal/briefing/usecase"
	"notes-copilot/internal/credential"
	"notes-copilot/internal/task"
	tickTickRepo "notes-copilot/internal/task/repository/ticktick"
	taskUC "notes-copilot/internal/task/usecase"
	"notes-copilot/internal/vault"
	vaultFS "notes-copilot/internal/vault/fs"
	vaultSQLite "notes-copilot/internal/vault/sqlite"
	"notes-copilot/pkg/httpclient"
	"notes-copilot/pkg/llmprovider"
	"notes-copilot/pkg/log"
	"notes-copilot/pkg/notify"
	"notes-copilot/pkg/ticktick"
)

// App holds every long-lived component.
type App struct {
	Config *config.Config
	Logger log.Logger

	Credentials     *ticktick.Credentials
	CredentialStore *credential.Store
	Authenticator   *ticktick.Authenticator
	Notifier        notify.Notifier

	Manager    *llmprovider.Manager
	Vault      vault.Store
	TaskUC     task.UseCase
	BriefingUC briefing.UseCase

	closers []func() error
}

// New wires the application from cfg.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: l}

	a.Notifier = newNotifier(cfg.Telegram, l)

	if err := a.setupCredentials(ctx); err != nil {
		return nil, err
	}
	a.setupTasks()

	provider, err := llmprovider.New(cfg.LLM, l)
	if err != nil {
		return nil, fmt.Errorf("llm provider: %w", err)
	}
	a.Manager = llmprovider.NewManager(provider, &llmprovider.Config{Timeout: cfg.LLM.Timeout}, l)
	l.Infof(ctx, "LLM provider: %s (%s)", provider.Name(), provider.Model())

	if err := a.setupVault(); err != nil {
		return nil, err
	}

	a.BriefingUC = briefingUC.New(l, a.Vault, a.TaskUC, a.Manager, a.Notifier, briefing.Options{
		DailyNotesFolder: cfg.Vault.DailyNotesFolder,
		OutputFolder:     cfg.Vault.OutputFolder,
		MonthlyFolder:    cfg.Vault.MonthlyFolder,
		DaysToAnalyze:    cfg.Briefing.DaysToAnalyze,
	})

	return a, nil
}

// Close releases resources opened by New.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

func newNotifier(cfg config.TelegramConfig, l log.Logger) notify.Notifier {
	n := notify.Multi{notify.NewLog(l)}
	if cfg.BotToken != "" && cfg.ChatID != 0 {
		n = append(n, notify.NewTelegramBot(cfg.BotToken, cfg.ChatID))
	}
	return n
}

// setupCredentials loads persisted tokens, seeding from config on first
// run. An unavailable keyring degrades to memory-only storage.
func (a *App) setupCredentials(ctx context.Context) error {
	store, err := credential.Open(a.Config.Credentials)
	if err != nil {
		a.Logger.Warn(ctx, "keyring unavailable, tokens will not survive restarts", "error", err.Error())
		store = credential.New(keyring.NewArrayKeyring(nil))
	}
	a.CredentialStore = store

	tokens, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}
	if tokens.AccessToken == "" && tokens.RefreshToken == "" {
		tokens = ticktick.Tokens{
			AccessToken:  a.Config.TickTick.AccessToken,
			RefreshToken: a.Config.TickTick.RefreshToken,
		}
	}
	a.Credentials = ticktick.NewCredentials(tokens)
	a.Authenticator = ticktick.NewAuthenticator(a.oauthConfig(), a.Credentials, store, nil, a.Logger)
	return nil
}

func (a *App) oauthConfig() ticktick.OAuthConfig {
	tt := a.Config.TickTick
	return ticktick.OAuthConfig{
		ClientID:     tt.ClientID,
		ClientSecret: tt.ClientSecret,
		AuthURL:      tt.AuthURL,
		TokenURL:     tt.TokenURL,
		RedirectURI:  tt.RedirectURI,
		Scope:        tt.Scope,
		Timeout:      tt.Timeout,
	}
}

func (a *App) setupTasks() {
	tt := a.Config.TickTick
	refresher := ticktick.NewRefresher(a.oauthConfig(), a.Credentials, a.CredentialStore, a.Notifier, a.Logger)

	client := httpclient.New(httpclient.Config{
		HTTPClient:  &http.Client{Timeout: tt.Timeout},
		MaxAttempts: tt.RetryAttempts,
		BaseDelay:   tt.RetryDelay,
		Limiter:     httpclient.NewRateLimiter(tt.RateLimitPerMin),
		Refresher:   refresher,
		Logger:      a.Logger,
		Name:        "ticktick",
	})

	repo := tickTickRepo.New(tickTickRepo.NewClient(tt.APIURL, a.Credentials, client), a.Logger)
	a.TaskUC = taskUC.New(a.Logger, repo, a.Credentials, tt.Enabled)
}

func (a *App) setupVault() error {
	switch a.Config.Vault.Backend {
	case "sqlite":
		store, err := vaultSQLite.New(a.Config.Vault.SQLitePath, a.Logger)
		if err != nil {
			return fmt.Errorf("vault: %w", err)
		}
		a.Vault = store
		a.closers = append(a.closers, store.Close)
	default:
		a.Vault = vaultFS.NewDir(a.Config.Vault.Dir, a.Logger)
	}
	return nil
}
