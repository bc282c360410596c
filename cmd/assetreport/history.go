package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/spf13/cobra"

	"github.com/nao1215/assetreport/internal/config"
	"github.com/nao1215/assetreport/internal/database"
	"github.com/nao1215/assetreport/internal/model"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded report generations",
		Long: `History lists report files written with --record, newest first, as a
Markdown table.

Because the report content is fixed, every generation with the same layout
has the same digest. A different digest means the layout or the program
version changed.

Examples:
  assetreport history
  assetreport history --limit 5`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit,
		"Maximum number of records to show (0 for all)")
	cmd.Flags().String("db-dir", "",
		"History database directory (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	if limit < 0 {
		return errors.New("--limit must not be negative")
	}

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	out := cmd.OutOrStdout()

	// Reading history never creates the database.
	if _, err := os.Stat(filepath.Join(dbDir, database.FileName)); os.IsNotExist(err) {
		fmt.Fprintln(out, "No generations recorded yet.")
		fmt.Fprintln(out, "Use 'assetreport --record' to record one.")
		return nil
	}

	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	records, err := db.ListGenerations(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No generations recorded yet.")
		return nil
	}

	return writeHistoryTable(out, records)
}

// writeHistoryTable writes records as a Markdown table.
func writeHistoryTable(w io.Writer, records []*model.GenerationRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.FormatInt(rec.ID, 10),
			rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Path,
			strconv.FormatInt(rec.Size, 10),
			strconv.Itoa(rec.Pages),
			rec.ShortDigest(),
		})
	}

	return markdown.NewMarkdown(w).
		Table(markdown.TableSet{
			Header: []string{"ID", "Created", "Path", "Size", "Pages", "Digest"},
			Rows:   rows,
			Alignment: []markdown.TableAlignment{
				markdown.AlignRight, markdown.AlignDefault, markdown.AlignDefault,
				markdown.AlignRight, markdown.AlignRight, markdown.AlignDefault,
			},
		}).
		Build()
}
