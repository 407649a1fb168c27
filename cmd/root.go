package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/people-search/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "people-search",
	Short: "Search people across employee-data vendors",
	Long:  "Searches CoreSignal and Exa for profiles matching a name and optional company, normalizing vendor responses into one unified profile shape.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Local .env keys are picked up by viper's AutomaticEnv.
		_ = godotenv.Load()

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
