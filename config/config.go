package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Auth       AuthConfig
	CORS       CORSConfig

	// Text generation
	LLM LLMConfig

	// Task service
	TickTick    TickTickConfig
	Credentials CredentialsConfig

	// Notes and briefings
	Vault    VaultConfig
	Briefing BriefingConfig

	// Notifications
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AuthConfig configures bearer-token auth on the /api routes.
type AuthConfig struct {
	JWTSecret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LLMConfig selects and configures the text-generation backend.
type LLMConfig struct {
	// Provider is "ollama" or "openai".
	Provider      string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
	Ollama        OllamaConfig
	OpenAI        OpenAIConfig
}

type OllamaConfig struct {
	Host  string
	Model string
}

type OpenAIConfig struct {
	Host   string
	Model  string
	APIKey string
}

// TickTickConfig configures the task-service integration and its OAuth app.
type TickTickConfig struct {
	Enabled         bool
	ClientID        string
	ClientSecret    string
	AccessToken     string
	RefreshToken    string
	APIURL          string
	AuthURL         string
	TokenURL        string
	RedirectURI     string
	Scope           string
	RateLimitPerMin int
	RetryAttempts   int
	RetryDelay      time.Duration
	Timeout         time.Duration
}

// CredentialsConfig selects where refreshed tokens are persisted.
type CredentialsConfig struct {
	// Backend is a keyring backend name ("file", "keychain", "secret-service",
	// "wincred", "pass") or "" for the platform default.
	Backend     string
	ServiceName string
	FileDir     string
	Password    string
}

type VaultConfig struct {
	// Backend is "fs" or "sqlite".
	Backend          string
	Dir              string
	SQLitePath       string
	DailyNotesFolder string
	OutputFolder     string
	MonthlyFolder    string
}

type BriefingConfig struct {
	DaysToAnalyze int
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/notes-copilot/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/notes-copilot/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Auth.JWTSecret = expandEnvVar(viper.GetString("auth.jwt_secret"))
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	// LLM
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(viper.GetString("llm.provider")))
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetDuration("llm.retry_delay")
	cfg.LLM.Ollama.Host = viper.GetString("llm.ollama.host")
	cfg.LLM.Ollama.Model = viper.GetString("llm.ollama.model")
	cfg.LLM.OpenAI.Host = viper.GetString("llm.openai.host")
	cfg.LLM.OpenAI.Model = viper.GetString("llm.openai.model")
	cfg.LLM.OpenAI.APIKey = expandEnvVar(viper.GetString("llm.openai.api_key"))
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.LLM.OpenAI.APIKey = key
	}

	// TickTick
	cfg.TickTick.Enabled = viper.GetBool("ticktick.enabled")
	cfg.TickTick.ClientID = expandEnvVar(viper.GetString("ticktick.client_id"))
	cfg.TickTick.ClientSecret = expandEnvVar(viper.GetString("ticktick.client_secret"))
	cfg.TickTick.AccessToken = expandEnvVar(viper.GetString("ticktick.access_token"))
	cfg.TickTick.RefreshToken = expandEnvVar(viper.GetString("ticktick.refresh_token"))
	cfg.TickTick.APIURL = viper.GetString("ticktick.api_url")
	cfg.TickTick.AuthURL = viper.GetString("ticktick.auth_url")
	cfg.TickTick.TokenURL = viper.GetString("ticktick.token_url")
	cfg.TickTick.RedirectURI = viper.GetString("ticktick.redirect_uri")
	cfg.TickTick.Scope = viper.GetString("ticktick.scope")
	cfg.TickTick.RateLimitPerMin = viper.GetInt("ticktick.rate_limit_per_min")
	cfg.TickTick.RetryAttempts = viper.GetInt("ticktick.retry_attempts")
	cfg.TickTick.RetryDelay = viper.GetDuration("ticktick.retry_delay")
	cfg.TickTick.Timeout = viper.GetDuration("ticktick.timeout")

	cfg.Credentials.Backend = viper.GetString("credentials.backend")
	cfg.Credentials.ServiceName = viper.GetString("credentials.service_name")
	cfg.Credentials.FileDir = expandHome(viper.GetString("credentials.file_dir"))
	cfg.Credentials.Password = expandEnvVar(viper.GetString("credentials.password"))

	// Vault
	cfg.Vault.Backend = viper.GetString("vault.backend")
	cfg.Vault.Dir = expandHome(viper.GetString("vault.dir"))
	cfg.Vault.SQLitePath = expandHome(viper.GetString("vault.sqlite_path"))
	cfg.Vault.DailyNotesFolder = viper.GetString("vault.daily_notes_folder")
	cfg.Vault.OutputFolder = viper.GetString("vault.output_folder")
	cfg.Vault.MonthlyFolder = viper.GetString("vault.monthly_folder")
	cfg.Briefing.DaysToAnalyze = viper.GetInt("briefing.days_to_analyze")

	// Telegram
	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings no component could start with.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "ollama", "openai":
	default:
		return fmt.Errorf("llm.provider: unknown provider %q (want ollama or openai)", c.LLM.Provider)
	}

	switch c.Vault.Backend {
	case "fs", "sqlite":
	default:
		return fmt.Errorf("vault.backend: unknown backend %q (want fs or sqlite)", c.Vault.Backend)
	}

	if c.TickTick.Enabled && c.TickTick.ClientID == "" {
		return fmt.Errorf("ticktick.client_id is required when ticktick.enabled is true")
	}

	if c.Briefing.DaysToAnalyze <= 0 {
		return fmt.Errorf("briefing.days_to_analyze must be positive")
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "*")

	// LLM defaults
	viper.SetDefault("llm.provider", "ollama")
	viper.SetDefault("llm.timeout", "120s")
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.ollama.host", "http://localhost:11434")
	viper.SetDefault("llm.ollama.model", "llama3:latest")
	viper.SetDefault("llm.openai.host", "https://api.openai.com")
	viper.SetDefault("llm.openai.model", "gpt-3.5-turbo")

	// TickTick defaults
	viper.SetDefault("ticktick.enabled", false)
	viper.SetDefault("ticktick.api_url", "https://api.ticktick.com/open/v1")
	viper.SetDefault("ticktick.auth_url", "https://ticktick.com/oauth/authorize")
	viper.SetDefault("ticktick.token_url", "https://ticktick.com/oauth/token")
	viper.SetDefault("ticktick.redirect_uri", "http://localhost:8080/oauth/ticktick/callback")
	viper.SetDefault("ticktick.scope", "tasks:read")
	viper.SetDefault("ticktick.rate_limit_per_min", 60)
	viper.SetDefault("ticktick.retry_attempts", 3)
	viper.SetDefault("ticktick.retry_delay", "1s")
	viper.SetDefault("ticktick.timeout", "30s")

	viper.SetDefault("credentials.service_name", "notes-copilot")
	viper.SetDefault("credentials.file_dir", "~/.notes-copilot/keyring")

	// Vault defaults
	viper.SetDefault("vault.backend", "fs")
	viper.SetDefault("vault.dir", ".")
	viper.SetDefault("vault.sqlite_path", "notes-copilot.db")
	viper.SetDefault("vault.daily_notes_folder", "Daily Notes")
	viper.SetDefault("vault.output_folder", "AI Generated")
	viper.SetDefault("vault.monthly_folder", "AI Generated/Monthly")
	viper.SetDefault("briefing.days_to_analyze", 30)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// expandHome replaces a leading "~" with the user's home directory. The
// value is returned unchanged when the home directory is unknown.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// splitList splits a comma-separated value since viper does not parse
// arrays from env reliably.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
