package config

import "errors"

// Configuration validation errors returned by Config.Validate.
// Callers can match them with errors.Is.
var (
	// ErrEmptyOutput is returned when the output path is empty.
	ErrEmptyOutput = errors.New("invalid output: path must not be empty")

	// ErrInvalidPageSize is returned for a page size the PDF library does not know.
	ErrInvalidPageSize = errors.New("invalid page size: must be one of A3, A4, A5, Letter, Legal")

	// ErrInvalidOrientation is returned when orientation is neither P nor L.
	ErrInvalidOrientation = errors.New("invalid orientation: must be P or L")

	// ErrInvalidUnit is returned for an unknown measurement unit.
	ErrInvalidUnit = errors.New("invalid unit: must be one of pt, mm, cm, in")

	// ErrInvalidMargin is returned when the page margin is negative.
	ErrInvalidMargin = errors.New("invalid margin: must be non-negative")

	// ErrInvalidPageBreak is returned when the page break margin is negative.
	ErrInvalidPageBreak = errors.New("invalid page break margin: must be non-negative")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
