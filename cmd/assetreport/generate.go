package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/assetreport/internal/config"
	"github.com/nao1215/assetreport/internal/database"
	applog "github.com/nao1215/assetreport/internal/log"
	"github.com/nao1215/assetreport/internal/model"
	"github.com/nao1215/assetreport/internal/pipeline"
	"github.com/nao1215/assetreport/internal/verify"
)

// runGenerateCmd executes the root command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runGenerate(ctx, cfg, cmd.OutOrStdout(), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger on stderr based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	return applog.NewLogger(os.Stderr, verbose)
}

// buildConfig creates a Config from cobra command flags.
// Flags given explicitly take precedence over the config file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if err := applyConfigFile(cfg); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("output") {
		cfg.OutputFile, err = cmd.Flags().GetString("output")
		if err != nil {
			return nil, err
		}
	}

	cfg.Record, err = cmd.Flags().GetBool("record")
	if err != nil {
		return nil, err
	}

	cfg.Verify, err = cmd.Flags().GetBool("verify")
	if err != nil {
		return nil, err
	}

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}
	if dbDir != "" {
		cfg.DBDir = dbDir
	}

	return cfg, nil
}

// applyConfigFile loads cfg.ConfigFilePath, if set, and applies it to cfg.
// The config file is never searched for.
func applyConfigFile(cfg *config.Config) error {
	if cfg.ConfigFilePath == "" {
		return nil
	}

	file, err := config.LoadConfigFile(cfg.ConfigFilePath)
	if errors.Is(err, config.ErrConfigNotFound) {
		return fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", cfg.ConfigFilePath, err)
	}

	file.Apply(cfg)
	return nil
}

// runGenerate builds the report, writes it to cfg.OutputFile and prints the
// confirmation line to out. Verification and recording run afterwards when
// enabled.
func runGenerate(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewAssembleStep(),
		pipeline.NewWriteStep(),
		pipeline.NewConfirmStep(out),
	)
	if cfg.Verify {
		p.AddStep(pipeline.NewVerifyStep(verify.New(verify.WithLogger(logger))))
	}
	if cfg.Record {
		p.AddStep(pipeline.NewRecordStep(
			&historyRecorder{dbDir: cfg.DBDir, logger: logger},
			pipeline.WithRecordLogger(logger),
		))
	}

	run := pipeline.NewRun(model.ProjectReport(), cfg.Layout, cfg.OutputFile)
	if err := p.Execute(ctx, run); err != nil {
		return err
	}

	logger.Debug("report written",
		"path", absPath(run.OutputPath),
		"sections", run.Builder.SectionCount(),
		"pages", run.Builder.PageCount(),
		"steps", run.Completed,
	)

	if run.Verification != nil {
		fmt.Fprintf(out, "Verified: %d pages, %d sections in order\n",
			run.Verification.Pages, len(run.Verification.Headings))
	}
	return nil
}

// historyRecorder opens the history database only when a record is saved,
// so a failing database never prevents the report from being written.
type historyRecorder struct {
	dbDir  string
	logger *slog.Logger
}

// SaveGeneration saves rec to the history database.
func (r *historyRecorder) SaveGeneration(ctx context.Context, rec *model.GenerationRecord) error {
	db, err := database.Open(r.dbDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	r.logger.Debug("database opened", "path", db.Path())
	return db.SaveGeneration(ctx, rec)
}

// absPath returns the absolute form of path, or path itself if it cannot
// be resolved.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
