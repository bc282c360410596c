package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/assetreport/internal/model"
)

// ruleWidth is the width of the banner and section rules.
const ruleWidth = 70

// SimpleWriter outputs the report as plain text.
// This format is designed for terminal display.
//
// Design decision: We use plain text with ASCII rules rather than ANSI
// colors so the output can be piped to files or other tools unchanged.
type SimpleWriter struct {
	baseWriter

	// indent is prepended to every body line.
	indent string
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithBodyIndent sets the prefix written before each body line.
func WithBodyIndent(indent string) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.indent = indent
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		indent:     "  ",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in plain text.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	for i, section := range report.Sections {
		w.writeSection(&sb, report.Heading(i), section)
	}
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the banner with the centered document title.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	pad := (ruleWidth - len(report.Title)) / 2
	if pad < 0 {
		pad = 0
	}
	sb.WriteString(strings.Repeat(" ", pad))
	sb.WriteString(report.Title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")
}

// writeSection writes one heading, its underline and the indented body.
func (w *SimpleWriter) writeSection(sb *strings.Builder, heading string, section model.Section) {
	sb.WriteString(fmt.Sprintf("%s\n", heading))
	sb.WriteString(strings.Repeat("-", len(heading)))
	sb.WriteString("\n")
	for _, line := range section.BodyLines() {
		if line == "" {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(w.indent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// joinLines joins lines with a newline.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
