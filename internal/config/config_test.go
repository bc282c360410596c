package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
// The layout defaults are part of the report's appearance, so a change here
// changes every generated file.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default OutputFile is the fixed report name", func(t *testing.T) {
		t.Parallel()
		if cfg.OutputFile != "Military_Asset_Management_Project_Report.pdf" {
			t.Errorf("unexpected OutputFile %q", cfg.OutputFile)
		}
	})

	t.Run("default page is A4 portrait in millimetres", func(t *testing.T) {
		t.Parallel()
		if cfg.Layout.PageSize != "A4" || cfg.Layout.Orientation != "P" || cfg.Layout.Unit != "mm" {
			t.Errorf("unexpected page %s/%s/%s", cfg.Layout.PageSize, cfg.Layout.Orientation, cfg.Layout.Unit)
		}
	})

	t.Run("default margins", func(t *testing.T) {
		t.Parallel()
		if cfg.Layout.Margin != 10 {
			t.Errorf("expected Margin 10, got %v", cfg.Layout.Margin)
		}
		if cfg.Layout.PageBreakMargin != 15 {
			t.Errorf("expected PageBreakMargin 15, got %v", cfg.Layout.PageBreakMargin)
		}
	})

	t.Run("recording and verification are off", func(t *testing.T) {
		t.Parallel()
		if cfg.Record || cfg.Verify || cfg.Verbose {
			t.Error("expected Record, Verify and Verbose to be false")
		}
	})

	t.Run("DBDir is the XDG data directory", func(t *testing.T) {
		t.Parallel()
		if cfg.DBDir != XDGDataDir() {
			t.Errorf("expected DBDir %q, got %q", XDGDataDir(), cfg.DBDir)
		}
	})

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr error
	}{
		{
			name:    "empty output",
			modify:  func(c *Config) { c.OutputFile = "" },
			wantErr: ErrEmptyOutput,
		},
		{
			name:    "unknown page size",
			modify:  func(c *Config) { c.Layout.PageSize = "B5" },
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "unknown orientation",
			modify:  func(c *Config) { c.Layout.Orientation = "X" },
			wantErr: ErrInvalidOrientation,
		},
		{
			name:    "unknown unit",
			modify:  func(c *Config) { c.Layout.Unit = "px" },
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "negative margin",
			modify:  func(c *Config) { c.Layout.Margin = -1 },
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "negative page break margin",
			modify:  func(c *Config) { c.Layout.PageBreakMargin = -0.5 },
			wantErr: ErrInvalidPageBreak,
		},
		{
			name:    "landscape letter in inches is valid",
			modify:  func(c *Config) { c.Layout.PageSize, c.Layout.Orientation, c.Layout.Unit = "Letter", "L", "in" },
			wantErr: nil,
		},
		{
			name:    "zero margins are valid",
			modify:  func(c *Config) { c.Layout.Margin, c.Layout.PageBreakMargin = 0, 0 },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.assetreport.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `output: reports/out.pdf
layout:
  pageSize: Letter
  orientation: L
  margin: 0
  pageBreakMargin: 20
metadata:
  author: "Logistics Cell"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cf.Output != "reports/out.pdf" {
			t.Errorf("expected output, got %q", cf.Output)
		}
		if cf.Layout.PageSize != "Letter" || cf.Layout.Orientation != "L" {
			t.Errorf("unexpected layout %+v", cf.Layout)
		}
		if cf.Layout.Margin == nil || *cf.Layout.Margin != 0 {
			t.Error("expected explicit zero margin to be kept")
		}
		if cf.Layout.PageBreakMargin == nil || *cf.Layout.PageBreakMargin != 20 {
			t.Error("expected page break margin 20")
		}
		if cf.Metadata.Author != "Logistics Cell" {
			t.Errorf("unexpected author %q", cf.Metadata.Author)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("empty file yields empty config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(configPath, nil, 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Output != "" || cf.Layout.Margin != nil {
			t.Errorf("expected zero File, got %+v", cf)
		}
	})
}

// TestFileApply tests merging a config file onto defaults.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("empty file keeps defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		(&File{}).Apply(cfg)

		if cfg.OutputFile != DefaultOutputFile {
			t.Errorf("expected default output, got %q", cfg.OutputFile)
		}
		if cfg.Layout != DefaultLayout() {
			t.Errorf("expected default layout, got %+v", cfg.Layout)
		}
	})

	t.Run("set fields override defaults", func(t *testing.T) {
		t.Parallel()

		zero := 0.0
		cfg := NewConfig()
		f := &File{
			Output: "custom.pdf",
			Layout: LayoutFile{PageSize: "A5", Margin: &zero},
			Metadata: MetadataFile{
				Subject: "Design review",
			},
		}
		f.Apply(cfg)

		if cfg.OutputFile != "custom.pdf" {
			t.Errorf("expected custom.pdf, got %q", cfg.OutputFile)
		}
		if cfg.Layout.PageSize != "A5" {
			t.Errorf("expected A5, got %q", cfg.Layout.PageSize)
		}
		if cfg.Layout.Margin != 0 {
			t.Errorf("expected margin 0, got %v", cfg.Layout.Margin)
		}
		if cfg.Layout.PageBreakMargin != DefaultPageBreakMargin {
			t.Errorf("expected default page break margin, got %v", cfg.Layout.PageBreakMargin)
		}
		if cfg.Layout.Subject != "Design review" || cfg.Layout.Author != DefaultAuthor {
			t.Errorf("unexpected metadata %q / %q", cfg.Layout.Author, cfg.Layout.Subject)
		}
	})
}

// TestXDGDataDir tests that the data directory ends in the app name.
func TestXDGDataDir(t *testing.T) {
	t.Parallel()

	dir := XDGDataDir()
	if !strings.HasSuffix(dir, AppName) {
		t.Errorf("expected %q to end with %q", dir, AppName)
	}
}
