package commands

import (
	"github.com/spf13/cobra"
)

var configPath string

// NewRootCmd builds the webhub command tree. Without a sub-command it serves.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "webhub",
		Short: "Public API aggregator web app",
		Long: `WebHub renders current weather, random recipes, stock quotes with a
one-year chart and random Wikipedia articles from public APIs.

Examples:
  webhub                          # serve with config/config.yaml
  webhub serve --config prod.yaml
  webhub quote apple              # one lookup, printed as JSON`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config/config.yaml", "config file path")

	rootCmd.AddCommand(newServeCmd(), newQuoteCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
