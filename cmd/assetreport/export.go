package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/assetreport/internal/config"
	"github.com/nao1215/assetreport/internal/model"
	"github.com/nao1215/assetreport/internal/report"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the report in another format",
		Long: `Export renders the same report content as Markdown, JSON or plain text.
The section order and text are identical to the PDF.

Examples:
  # Print the report as Markdown
  assetreport export

  # Write JSON to a file
  assetreport export --format json -o report.json

  # Plain text for the terminal
  assetreport export -f text`,
		Args: cobra.NoArgs,
		RunE: runExportCmd,
	}

	cmd.Flags().StringP("format", "f", string(report.FormatMarkdown),
		"Output format: markdown, json, text or pdf")
	cmd.Flags().StringP("output", "o", "",
		"Write to the specified file path instead of stdout (creates directories if needed)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path, used for the pdf format layout")

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, _ []string) error {
	formatName, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	cfg := config.NewConfig()
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if err := applyConfigFile(cfg); err != nil {
		return err
	}
	if err := cfg.Layout.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(getVerboseFlag(cmd))

	if outputPath == "" {
		return exportReport(cmd.OutOrStdout(), format, cfg.Layout)
	}

	if err := writeExportFile(outputPath, format, cfg.Layout); err != nil {
		return err
	}
	logger.Debug("report exported", "path", absPath(outputPath), "format", format)
	fmt.Fprintf(cmd.OutOrStdout(), "Report exported: %s\n", outputPath)
	return nil
}

// exportReport renders the project report to w.
func exportReport(w io.Writer, format report.Format, layout config.Layout) error {
	if _, err := report.NewWriter(format, w, layout).Write(model.ProjectReport()); err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}
	return nil
}

// writeExportFile renders the project report to a new file at path.
func writeExportFile(path string, format report.Format, layout config.Layout) (err error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	return exportReport(f, format, layout)
}
