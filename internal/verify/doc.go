// Package verify checks that a generated report file is a readable PDF
// carrying the expected section headings.
//
// Verification has three stages. The magic header and trailer are checked
// first so that obviously wrong files fail fast. The document is then
// parsed and validated with pdfcpu, which also yields the page count,
// while tabula extracts the page text in parallel. Finally the extracted
// text is scanned for the numbered headings in order.
package verify
