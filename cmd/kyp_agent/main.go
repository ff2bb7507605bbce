// Package main provides the entry point for the KYP analysis tool.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/kyp-analysis/internal/config"
	"github.com/jonathan/kyp-analysis/internal/observability"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "kyp_agent",
	Short:         "KYP Analysis Tool",
	Long:          "KYP Analysis Tool documents a Know Your Product suitability analysis and exports it as a formatted Word (.docx) report.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configFile string
	settings   = viper.New()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: ./kyp.yaml if present)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "Log format (json or console)")

	_ = settings.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = settings.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// loadConfig resolves configuration from flags, KYP_* variables and the config file.
func loadConfig() (*config.Config, error) {
	return config.Load(settings, configFile)
}

// newLogger builds the process logger on stderr.
func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	return observability.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
