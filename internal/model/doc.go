// Package model defines the data structures shared by the report writers,
// the verifier and the history store.
//
// This package contains the following main types:
//   - Section: A titled block of literal text
//   - Report: The document title plus the ordered list of sections
//   - GenerationRecord: One history entry describing a written report file
//
// Design decision: We keep the report content in the model package rather
// than in the writers so that every output format (PDF, Markdown, JSON, text)
// renders exactly the same sections in exactly the same order.
package model
