// Package pipeline runs report generation as a sequence of steps.
//
// A generation run assembles the document, writes it to disk, prints the
// confirmation line and then optionally verifies and records the file.
// Each stage is a Step that receives the shared Run and fills in its part.
// The pipeline stops at the first failing step, so nothing after a failed
// write is executed: no confirmation line, no verification, no record.
package pipeline
