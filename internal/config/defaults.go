package config

// Environment variables honored as fallback defaults for the
// corresponding config fields.
const (
	EnvAPIKey  = "CURSOR_API_KEY"
	EnvBaseURL = "CURSOR_BASE_URL"
)

// Built-in literals used when neither a flag, an environment variable,
// nor a config file provides a value. The base URL matches the default
// listen address of a local Cursor-To-OpenAI-Nexus gateway.
const (
	DefaultAPIKey  = "sk-cursor-api-key"
	DefaultBaseURL = "http://localhost:3010/v1"
	DefaultModel   = "claude-3.7-sonnet-thinking"
	DefaultPrompt  = "Explain quantum computing in simple terms."
)

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		APIKey:  DefaultAPIKey,
		BaseURL: DefaultBaseURL,
		Model:   DefaultModel,
		Prompt:  DefaultPrompt,
	}
}
