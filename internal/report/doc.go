// Package report builds the project report and writes it in several formats.
//
// This package contains:
//   - Builder: Assembles the paginated PDF document section by section
//   - PDFWriter: Writes the built PDF to any io.Writer
//   - MarkdownWriter: GitHub Flavored Markdown rendering of the same content
//   - JSONWriter: Structured JSON output for tool integration
//   - SimpleWriter: Plain text output for terminal display
//
// Design decision: We separate report writing from the report content
// (which lives in the model package). Every writer renders the same
// model.Report, so all formats agree on section titles and order.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
