package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elisdimitrova/psysite/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a site configuration with an interactive wizard",
	Long:  `Asks for the author's details, contact channels and form delivery settings and writes them to the config file (.psysite.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.RunWizard(cfgFile); err != nil {
			return err
		}
		fmt.Println("Run `psysite serve` to preview the site.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
