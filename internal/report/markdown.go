package report

import (
	"io"

	"github.com/nao1215/markdown"

	"github.com/nao1215/assetreport/internal/model"
)

// MarkdownWriter outputs the report in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation. Section bodies go into plain code blocks because they are
// pre-formatted text: list markers and API paths must not be re-interpreted
// as Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(report.Title)
	md.PlainText("")

	for i, section := range report.Sections {
		md.H2(report.Heading(i))
		md.PlainText("")
		md.CodeBlocks(markdown.SyntaxHighlightText, joinLines(section.BodyLines()))
		md.PlainText("")
	}

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by assetreport*")
}
