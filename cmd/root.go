package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aerolens/flighteval/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "flighteval",
	Short: "Accuracy evaluation for LLM flight-information extraction",
	Long:  "Runs a ground-truth dataset through an extraction provider, compares each field with tolerance-aware rules, and reports precision/recall/F1 with review flags.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
