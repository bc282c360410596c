// Package config provides configuration structures and utilities for assetreport.
// It defines the output location, the page layout of the generated PDF and the
// optional history and verification settings.
package config
