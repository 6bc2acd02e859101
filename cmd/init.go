package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cursornexus/cursorchat/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize cursorchat configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the gateway connection and generates a .cursorchat.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
