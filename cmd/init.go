package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/deepdive/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize deepdive configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the tutorials and writes a .deepdive.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
