package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"WebHub/internal/di"
	"WebHub/pkg/config"
)

func newQuoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote <query...>",
		Short: "Look up one stock and print the view-model as JSON",
		Long: `Runs symbol search, quote and chart once for the joined arguments.
A failed lookup still prints the view-model, with "error" set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runQuote,
	}
}

func runQuote(cmd *cobra.Command, args []string) (err error) {
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	q, err := di.InitializeQuote(cfg)
	if err != nil {
		return fmt.Errorf("quote initialization failed: %w", err)
	}
	defer func() {
		if cerr := q.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	vm := q.Lookup.Lookup(cmd.Context(), strings.Join(args, " "))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(vm)
}
