// Package log provides the application logger, built on top of the
// standard slog package.
//
// Loggers write to stderr so that stdout carries only command output,
// such as the single confirmation line of a generation run. The level is
// Warn by default and Debug in verbose mode.
//
// # Home directory shortening
//
// The HomeHandler rewrites string attribute values that start with the
// user's home directory to start with "~" instead. Debug output mentions
// the output file, the config file and the history database, and these
// usually live under the home directory; shortening them keeps the account
// name out of logs that get pasted into issues.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("report written", "path", "/home/alice/report.pdf")
//	// path=~/report.pdf
package log
