// Package database provides SQLite-based storage for assetreport.
//
// This package implements the HistoryDB, which keeps one row per report
// file written with recording enabled: where it was written, how large it
// was, how many pages it had and the digest of its contents.
//
// The database is a single file (assetreport.db) in the XDG data directory.
// modernc.org/sqlite is used so the binary stays CGO-free.
package database
