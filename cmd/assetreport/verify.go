package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/assetreport/internal/config"
	"github.com/nao1215/assetreport/internal/model"
	"github.com/nao1215/assetreport/internal/verify"
)

// NewVerifyCmd creates the verify command.
func NewVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [file]",
		Short: "Check a generated report file",
		Long: `Verify checks that a report file is a well-formed PDF and that its seven
section headings appear in the expected order.

If no file is given, the default report file in the current directory is
checked.

Examples:
  assetreport verify
  assetreport verify out/report.pdf`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVerifyCmd,
	}
}

// runVerifyCmd executes the verify command.
func runVerifyCmd(cmd *cobra.Command, args []string) error {
	path := config.DefaultOutputFile
	if len(args) == 1 {
		path = args[0]
	}

	logger := setupLogger(getVerboseFlag(cmd))
	headings := model.ProjectReport().Headings()

	result, err := verify.New(verify.WithLogger(logger)).Verify(cmd.Context(), path, headings)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: OK\n", result.Path)
	fmt.Fprintf(out, "  PDF version: %s\n", result.Version)
	fmt.Fprintf(out, "  Pages:       %d\n", result.Pages)
	fmt.Fprintf(out, "  Size:        %d bytes\n", result.Size)
	fmt.Fprintf(out, "  Sections:    %d/%d headings in order\n", len(result.Headings), len(headings))
	if result.Metadata.Title != "" {
		fmt.Fprintf(out, "  Title:       %s\n", result.Metadata.Title)
	}
	if result.Metadata.Author != "" {
		fmt.Fprintf(out, "  Author:      %s\n", result.Metadata.Author)
	}
	return nil
}
