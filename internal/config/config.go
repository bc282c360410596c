package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The layout defaults reproduce the project report exactly: A4 portrait in
// millimetres, a 10 mm page margin and a 15 mm automatic page break margin.
const (
	// DefaultOutputFile is the fixed report file name, written to the current
	// working directory.
	DefaultOutputFile = "Military_Asset_Management_Project_Report.pdf"

	// DefaultPageSize is the paper size passed to the PDF library.
	DefaultPageSize = "A4"

	// DefaultOrientation is portrait.
	DefaultOrientation = "P"

	// DefaultUnit is the user unit for all layout measurements.
	DefaultUnit = "mm"

	// DefaultMargin is the left, top and right page margin in DefaultUnit.
	DefaultMargin = 10.0

	// DefaultPageBreakMargin is the distance from the bottom edge at which
	// content automatically flows onto a new page.
	DefaultPageBreakMargin = 15.0

	// DefaultAuthor is written to the PDF document information dictionary.
	DefaultAuthor = "Military Asset Management System Team"

	// DefaultSubject is written to the PDF document information dictionary.
	DefaultSubject = "Project Report"

	// DefaultHistoryLimit is the number of rows shown by the history command.
	DefaultHistoryLimit = 20

	// AppName is the application name used for XDG directory paths.
	AppName = "assetreport"
)

// Valid values for the layout fields.
var (
	validPageSizes    = map[string]bool{"A3": true, "A4": true, "A5": true, "Letter": true, "Legal": true}
	validOrientations = map[string]bool{"P": true, "L": true}
	validUnits        = map[string]bool{"pt": true, "mm": true, "cm": true, "in": true}
)

// Layout holds the page geometry of the generated PDF.
type Layout struct {
	// PageSize is one of A3, A4, A5, Letter or Legal.
	PageSize string

	// Orientation is "P" (portrait) or "L" (landscape).
	Orientation string

	// Unit is the measurement unit: pt, mm, cm or in.
	Unit string

	// Margin is the left, top and right margin.
	Margin float64

	// PageBreakMargin is the bottom margin that triggers an automatic page break.
	PageBreakMargin float64

	// Author and Subject are document metadata.
	Author  string
	Subject string
}

// DefaultLayout returns the layout used when no config file is given.
func DefaultLayout() Layout {
	return Layout{
		PageSize:        DefaultPageSize,
		Orientation:     DefaultOrientation,
		Unit:            DefaultUnit,
		Margin:          DefaultMargin,
		PageBreakMargin: DefaultPageBreakMargin,
		Author:          DefaultAuthor,
		Subject:         DefaultSubject,
	}
}

// Config holds all configuration options for assetreport.
// It is populated from CLI flags and an optional config file, then passed
// through the application explicitly.
//
// Design decision: As in the rest of the tool we keep a flat struct with
// only the layout grouped, because the layout is handed to the PDF builder
// as one value.
type Config struct {
	// OutputFile is the path of the PDF to write.
	OutputFile string

	// ConfigFilePath is the path of an optional YAML config file.
	// The file is never searched for; it is only read when given explicitly,
	// so a default run does not depend on its environment.
	ConfigFilePath string

	// Layout is the page geometry and metadata of the PDF.
	Layout Layout

	// Verbose enables debug logging on stderr.
	Verbose bool

	// Record saves a GenerationRecord to the history database after writing.
	Record bool

	// Verify runs the verifier on the written file.
	Verify bool

	// DBDir is the directory holding the history database.
	// Defaults to the XDG data directory (~/.local/share/assetreport on Linux).
	DBDir string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputFile: DefaultOutputFile,
		Layout:     DefaultLayout(),
		DBDir:      XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for assetreport.
// On Linux: ~/.local/share/assetreport
// On macOS: ~/Library/Application Support/assetreport
// On Windows: %LOCALAPPDATA%\assetreport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.OutputFile == "" {
		return ErrEmptyOutput
	}
	return c.Layout.Validate()
}

// Validate checks the layout fields.
func (l Layout) Validate() error {
	if !validPageSizes[l.PageSize] {
		return ErrInvalidPageSize
	}
	if !validOrientations[l.Orientation] {
		return ErrInvalidOrientation
	}
	if !validUnits[l.Unit] {
		return ErrInvalidUnit
	}
	if l.Margin < 0 {
		return ErrInvalidMargin
	}
	if l.PageBreakMargin < 0 {
		return ErrInvalidPageBreak
	}
	return nil
}
