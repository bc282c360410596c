package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/assetreport/internal/model"
	"github.com/nao1215/assetreport/internal/report"
	"github.com/nao1215/assetreport/internal/verify"
)

// runExport executes the export command and returns its stdout.
func runExport(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"export"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

// TestNewExportCmd tests the export command creation.
func TestNewExportCmd(t *testing.T) {
	t.Parallel()

	cmd := NewExportCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "export" {
			t.Errorf("expected use 'export', got %q", cmd.Use)
		}
	})

	t.Run("defaults to markdown", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("format")
		if flag == nil {
			t.Fatal("expected format flag")
		}
		if flag.DefValue != "markdown" {
			t.Errorf("expected default 'markdown', got %q", flag.DefValue)
		}
	})
}

// TestRunExportCmd tests rendering in each format.
func TestRunExportCmd(t *testing.T) {
	t.Parallel()

	headings := model.ProjectReport().Headings()

	t.Run("markdown to stdout keeps heading order", func(t *testing.T) {
		t.Parallel()

		stdout, err := runExport(t)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := verify.CheckHeadings(stdout, headings); err != nil {
			t.Errorf("unexpected heading problem: %v", err)
		}
		if !strings.HasPrefix(stdout, "# "+model.DocumentTitle) {
			t.Errorf("expected document title first, got %q", stdout[:40])
		}
	})

	t.Run("text keeps heading order", func(t *testing.T) {
		t.Parallel()

		stdout, err := runExport(t, "--format", "text")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := verify.CheckHeadings(stdout, headings); err != nil {
			t.Errorf("unexpected heading problem: %v", err)
		}
	})

	t.Run("json is valid", func(t *testing.T) {
		t.Parallel()

		stdout, err := runExport(t, "-f", "json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var doc struct {
			Title    string `json:"title"`
			Sections []struct {
				Heading string `json:"heading"`
			} `json:"sections"`
		}
		if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
			t.Fatalf("expected valid JSON: %v", err)
		}
		if len(doc.Sections) != len(headings) {
			t.Fatalf("expected %d sections, got %d", len(headings), len(doc.Sections))
		}
		for i, s := range doc.Sections {
			if s.Heading != headings[i] {
				t.Errorf("section %d: expected %q, got %q", i, headings[i], s.Heading)
			}
		}
	})

	t.Run("writes to a file in a new directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "report.md")
		stdout, err := runExport(t, "-o", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout != "Report exported: "+path+"\n" {
			t.Errorf("unexpected stdout %q", stdout)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read export: %v", err)
		}
		if err := verify.CheckHeadings(string(content), headings); err != nil {
			t.Errorf("unexpected heading problem: %v", err)
		}
	})

	t.Run("pdf format writes a PDF", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.pdf")
		if _, err := runExport(t, "-f", "pdf", "-o", path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read export: %v", err)
		}
		if err := verify.CheckMagic(data); err != nil {
			t.Errorf("expected PDF: %v", err)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := runExport(t, "-f", "docx")
		if !errors.Is(err, report.ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})
}
