package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models the gateway advertises",
	Args:  cobra.NoArgs,
	RunE:  runModels,
}

func init() {
	modelsCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	models, err := newClientFromConfig(cfg).ListModels(ctx)
	if err != nil {
		return fmt.Errorf("listing models: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(models)
	}

	if len(models) == 0 {
		fmt.Println("The gateway advertises no models.")
		return nil
	}

	fmt.Printf("Found %d models:\n\n", len(models))
	for _, m := range models {
		owner := ""
		if m.OwnedBy != "" {
			owner = fmt.Sprintf(" (%s)", m.OwnedBy)
		}
		fmt.Printf("  %s%s\n", m.ID, owner)
	}
	return nil
}
