package config

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
)

// ConfigFileName is the default config file written by the wizard.
const ConfigFileName = ".cursorchat.yml"

// wellKnownModels are the models a Cursor-To-OpenAI-Nexus gateway
// typically advertises, offered as wizard choices.
var wellKnownModels = []string{
	"claude-3.7-sonnet-thinking",
	"claude-3.7-sonnet",
	"claude-3.5-sonnet",
	"gpt-4o",
	"other (enter manually)",
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .cursorchat.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to cursorchat! Let's configure your gateway connection.")
	fmt.Println()

	// 1. Gateway base URL.
	baseURLPrompt := promptui.Prompt{
		Label:   "Gateway base URL",
		Default: DefaultBaseURL,
	}
	baseURL, err := baseURLPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base URL: %w", err)
	}

	// 2. API key. Defaults to the environment variable so the key does
	// not have to be retyped (or stored in the file at all).
	keyDefault := os.Getenv(EnvAPIKey)
	if keyDefault == "" {
		keyDefault = DefaultAPIKey
	}
	apiKeyPrompt := promptui.Prompt{
		Label:   "API key",
		Default: keyDefault,
		Mask:    '*',
	}
	apiKey, err := apiKeyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("API key: %w", err)
	}

	// 3. Model selection.
	modelSelect := promptui.Select{
		Label: "Select model",
		Items: wellKnownModels,
	}
	idx, model, err := modelSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("model selection: %w", err)
	}
	if idx == len(wellKnownModels)-1 {
		customPrompt := promptui.Prompt{
			Label:   "Model identifier",
			Default: DefaultModel,
		}
		model, err = customPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("model identifier: %w", err)
		}
	}

	// 4. Default prompt for `cursorchat chat` without --prompt.
	promptPrompt := promptui.Prompt{
		Label:   "Default prompt",
		Default: DefaultPrompt,
	}
	defaultPrompt, err := promptPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("default prompt: %w", err)
	}

	cfg := &Config{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   model,
		Prompt:  defaultPrompt,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(ConfigFileName); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", ConfigFileName)
	fmt.Printf("Try it out: cursorchat chat --prompt \"%s\"\n", defaultPrompt)

	return cfg, nil
}
