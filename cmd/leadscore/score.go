package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/leadscore/internal/config"
	"github.com/jonathan/leadscore/internal/ingestion"
	"github.com/jonathan/leadscore/internal/observability"
	"github.com/jonathan/leadscore/internal/pricing"
	"github.com/jonathan/leadscore/internal/recommend"
	"github.com/jonathan/leadscore/internal/types"
)

var (
	scoreJobFile   string
	scoreJobURL    string
	scoreSettings  string
	scoreVerbose   bool
	scoreExternal  bool
	scoreWithPrice bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single job posting",
	Long:  "Score one job posting from a JSON file or URL, print its breakdown and recommendation, and optionally a pricing proposal.",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to a job posting JSON file")
	scoreCmd.Flags().StringVarP(&scoreJobURL, "url", "u", "", "URL to fetch the posting from")
	scoreCmd.Flags().StringVarP(&scoreSettings, "settings", "s", "", "Path to a settings JSON file")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed enrichment diagnostics")
	scoreCmd.Flags().BoolVar(&scoreExternal, "external", false, "Use the LLM scorer (falls back to rules on failure)")
	scoreCmd.Flags().BoolVar(&scoreWithPrice, "proposal", false, "Print a pricing proposal for the posting")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	cfg.UseExternal = cfg.UseExternal || scoreExternal

	settingsPath := scoreSettings
	if settingsPath == "" {
		settingsPath = cfg.Settings
	}
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return err
	}

	if scoreJobFile == "" && scoreJobURL == "" {
		return fmt.Errorf("either --job or --url must be provided")
	}
	if scoreJobFile != "" && scoreJobURL != "" {
		return fmt.Errorf("--job and --url are mutually exclusive; provide only one")
	}

	var job types.JobPosting
	if scoreJobFile != "" {
		data, err := os.ReadFile(scoreJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		if err := json.Unmarshal(data, &job); err != nil {
			return fmt.Errorf("failed to parse job JSON: %w", err)
		}
		if job.ID == "" {
			return fmt.Errorf("job posting requires an id")
		}
	} else {
		text, err := ingestion.FetchDescription(cmd.Context(), scoreJobURL)
		if err != nil {
			return err
		}
		job = types.JobPosting{
			ID:          scoreJobURL,
			Title:       scoreJobURL,
			Description: text,
		}
	}

	engine, cleanup, err := buildEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ingestion.Normalize(&job)
	engine.Score(cmd.Context(), &job, settings)
	decision := recommend.Apply(&job, settings)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScoreBreakdown(&job)
	if scoreVerbose {
		printer.PrintEnrichment(job.Enrichment)
	}
	printer.PrintDecision(&job, decision)

	if scoreWithPrice {
		proposal, err := pricing.BuildProposal(&job, pricing.DefaultConfig())
		if err != nil {
			return fmt.Errorf("failed to build proposal: %w", err)
		}
		out, err := json.MarshalIndent(proposal, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal proposal: %w", err)
		}
		fmt.Println(string(out))
	}

	return nil
}
