// Package main provides the entry point for the assetreport CLI.
//
// assetreport writes the Military Asset Management System project report
// as a PDF file in the current directory.
//
// Usage:
//
//	assetreport
//	assetreport export --format markdown
//
// See --help for all available options.
package main

// main is the entry point for assetreport.
func main() {
	Execute()
}
