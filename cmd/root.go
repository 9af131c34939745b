package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "corpnorm",
	Short: "Company name resolution engine",
	Long:  "Normalizes messy company names, finds official websites via domain guessing and web search, classifies industries, and optionally enriches records with a reasoning model.",
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
