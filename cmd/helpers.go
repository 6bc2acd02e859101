package cmd

import (
	"fmt"

	"github.com/cursornexus/cursorchat/internal/config"
	"github.com/cursornexus/cursorchat/internal/llm"
)

// loadConfig loads the config file, applies flag overrides, and validates
// the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newClientFromConfig builds the gateway client for the resolved config.
func newClientFromConfig(cfg *config.Config) llm.Client {
	return llm.NewGatewayClient(cfg.APIKey, cfg.BaseURL)
}
