package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/cursornexus/cursorchat/internal/chat"
	"github.com/cursornexus/cursorchat/internal/progress"
)

var chatCmd = &cobra.Command{
	Use:   "chat [prompt]",
	Short: "Send a single prompt to the gateway and print the reply",
	Long: `Sends one chat-completion request and prints the result. By default the
full response is printed along with token usage; with --stream the reply is
printed incrementally as the model generates it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().String("model", "", "model to use for the completion")
	chatCmd.Flags().String("prompt", "", "prompt to send to the model")
	chatCmd.Flags().Bool("stream", false, "stream the response as it is generated")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	model, _ := cmd.Flags().GetString("model")
	prompt, _ := cmd.Flags().GetString("prompt")
	stream, _ := cmd.Flags().GetBool("stream")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		prompt = args[0]
	}
	if model == "" {
		model = cfg.Model
	}
	if prompt == "" {
		prompt = cfg.Prompt
	}

	// The spinner only makes sense while waiting for a blocking call;
	// streamed output is its own feedback.
	var reporter progress.Reporter = &progress.QuietReporter{}
	if !stream {
		reporter = progress.NewReporter()
	}

	runner := chat.NewRunner(newClientFromConfig(cfg), os.Stdout, os.Stderr, reporter)
	return runner.Run(ctx, chat.Options{
		Model:   model,
		Prompt:  prompt,
		Stream:  stream,
		Verbose: verbose,
	})
}
