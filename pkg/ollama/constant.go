package ollama

const (
	// DefaultHost is the local Ollama daemon.
	DefaultHost = "http://localhost:11434"

	// DefaultModel is used when no model is configured.
	DefaultModel = "llama3:latest"

	generatePath = "/api/generate"
	versionPath  = "/api/version"

	providerName = "ollama"
)
