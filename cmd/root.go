package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	apiKey  string
	baseURL string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cursorchat",
	Short: "Command-line client for Cursor-To-OpenAI-Nexus gateways",
	Long: `cursorchat talks to a Cursor-To-OpenAI-Nexus gateway, or any other
OpenAI-compatible chat-completion endpoint. It sends a single prompt and
prints the reply, either as one block with token usage or streamed
token-by-token as the model generates it.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".cursorchat.yml", "config file path")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key for the gateway (default $CURSOR_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "base URL of the gateway (default $CURSOR_BASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
