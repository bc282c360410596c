package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/assetreport/internal/config"
)

// NewRootCmd creates the root command for assetreport.
// Running it without a subcommand generates the report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assetreport",
		Short: "Generate the Military Asset Management System project report",
		Long: `assetreport writes the Military Asset Management System project report as a
PDF file. The report has a fixed title and seven fixed sections: project
overview, tech stack, data models, RBAC, API logging, setup instructions and
sample API endpoints.

With no arguments the report is written to
` + config.DefaultOutputFile + `
in the current directory and a single confirmation line is printed.

Examples:
  # Generate the report
  assetreport

  # Write to a different path and check the result
  assetreport -o out/report.pdf --verify

  # Use a layout from a config file
  assetreport -c .assetreport.yaml

  # Keep a record of the generation in the history database
  assetreport --record`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerateCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("output", "o", config.DefaultOutputFile,
		"Output file path for the PDF report")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (only read when given)")
	cmd.Flags().Bool("record", false,
		"Save a record of the generated file to the history database")
	cmd.Flags().Bool("verify", false,
		"Verify the written file (structure, page count, section headings)")
	cmd.Flags().String("db-dir", "",
		"History database directory (default: XDG data directory)")

	// Add subcommands
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewVerifyCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
