package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/leadscore/internal/config"
	"github.com/jonathan/leadscore/internal/db"
	"github.com/jonathan/leadscore/internal/ingestion"
	"github.com/jonathan/leadscore/internal/observability"
	"github.com/jonathan/leadscore/internal/pipeline"
	"github.com/jonathan/leadscore/internal/recommend"
	"github.com/jonathan/leadscore/internal/types"
)

var (
	batchJobsFile    string
	batchSettings    string
	batchConcurrency int
	batchVerbose     bool
	batchExternal    bool
	batchPersist     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a batch of job postings",
	Long:  "Score every posting in a JSON export, classify each one, and optionally persist the results to PostgreSQL.",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchJobsFile, "jobs", "j", "", "Path to a JSON array of job postings (required)")
	batchCmd.Flags().StringVarP(&batchSettings, "settings", "s", "", "Path to a settings JSON file")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 0, "Worker count (default from config)")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print a decision trace per posting")
	batchCmd.Flags().BoolVar(&batchExternal, "external", false, "Use the LLM scorer (falls back to rules on failure)")
	batchCmd.Flags().BoolVar(&batchPersist, "persist", false, "Persist scored postings to DATABASE_URL")

	batchCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	cfg.UseExternal = cfg.UseExternal || batchExternal
	if batchConcurrency > 0 {
		cfg.Concurrency = batchConcurrency
	}

	settingsPath := batchSettings
	if settingsPath == "" {
		settingsPath = cfg.Settings
	}
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return err
	}

	jobs, err := ingestion.LoadJobsFile(batchJobsFile)
	if err != nil {
		return err
	}

	engine, cleanup, err := buildEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := pipeline.Options{Concurrency: cfg.Concurrency}

	var database *db.DB
	var runID uuid.UUID
	if batchPersist {
		databaseURL := cfg.DatabaseURL
		if databaseURL == "" {
			databaseURL = os.Getenv("DATABASE_URL")
		}
		if databaseURL == "" {
			return fmt.Errorf("--persist requires DATABASE_URL")
		}
		database, err = db.Connect(cmd.Context(), databaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		opts.Store = database

		runID, err = database.CreateRun(cmd.Context(), batchJobsFile, len(jobs))
		if err != nil {
			return err
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	opts.OnScored = func(job *types.JobPosting, decision recommend.Decision) {
		if batchVerbose {
			printer.PrintScoreBreakdown(job)
			printer.PrintDecision(job, decision)
			return
		}
		marker := " "
		if decision.Classification == types.Recommended {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s %6.1f  %s\n", marker, job.Score.Total, job.Title)
	}

	runner := pipeline.NewRunner(engine, settings)
	summary, err := runner.Run(cmd.Context(), jobs, opts)
	if database != nil {
		status := "completed"
		if err != nil {
			status = "failed"
		}
		if completeErr := database.CompleteRun(cmd.Context(), runID, status, summary.Recommended); completeErr != nil {
			log.Printf("warning: failed to record run completion: %v", completeErr)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\nScored %d postings: %d recommended, %d hard-excluded\n",
		summary.Scored, summary.Recommended, summary.Excluded)
	return nil
}
