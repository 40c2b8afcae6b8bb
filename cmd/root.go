package cmd

import (
	"employeehub/config"

	"github.com/spf13/cobra"
)

var cfg config.Config

// rootCmd runs the HTTP server when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "employeehub",
	Short: "Employee records API with salary prediction and natural-language search",
	Long: `Employee Hub serves CRUD endpoints for the employees table, a salary
prediction model and a natural-language search backed by a local LLM.

Configuration is read from the environment and from a .env file in the
working directory.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.GetConfig()
	},
	RunE: runServe,
}

// Execute is called by main.main.
func Execute() error {
	return rootCmd.Execute()
}
