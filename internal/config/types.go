package config

// Config is the top-level cursorchat configuration, corresponding to .cursorchat.yml.
type Config struct {
	APIKey  string `yaml:"api_key" koanf:"api_key"`
	BaseURL string `yaml:"base_url" koanf:"base_url"`
	Model   string `yaml:"model" koanf:"model"`
	Prompt  string `yaml:"prompt" koanf:"prompt"`
}
