// Package main provides the entry point for the lead scoring CLI and server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/leadscore/internal/config"
	"github.com/jonathan/leadscore/internal/llm"
	"github.com/jonathan/leadscore/internal/scoring"
)

var rootCmd = &cobra.Command{
	Use:   "leadscore",
	Short: "Freelance lead qualification scorer",
	Long:  "leadscore scores marketplace job postings across seven dimensions, classifies them with the recommendation filter, and prices the promising ones.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadAppConfig loads the optional config file and fills defaults.
func loadAppConfig() (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	return cfg.MergeWithDefaults(config.Config{
		ListenAddr: ":8080",
	}), nil
}

// buildEngine constructs the scoring engine, attaching the LLM scorer when an
// API key is available and external scoring was requested. The returned
// cleanup func is safe to call unconditionally.
func buildEngine(ctx context.Context, cfg config.Config) (*scoring.Engine, func(), error) {
	cleanup := func() {}

	if !cfg.UseExternal {
		return scoring.NewEngine(), cleanup, nil
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil, fmt.Errorf("external scoring requested but no API key configured (set GEMINI_API_KEY)")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	cleanup = func() { _ = client.Close() }

	engine := scoring.NewEngine(scoring.WithExternalScorer(scoring.NewLLMScorer(client)))
	return engine, cleanup, nil
}
