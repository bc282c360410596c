package report

import (
	"io"

	"github.com/nao1215/assetreport/internal/config"
	"github.com/nao1215/assetreport/internal/model"
)

// PDFWriter outputs the report as a PDF document.
// It runs the same Build sequence as the default command, so the bytes it
// writes are identical to the report file for the same layout.
type PDFWriter struct {
	baseWriter

	layout config.Layout
	opts   []BuilderOption

	// pages is the page count of the last written document.
	pages int
}

// NewPDFWriter creates a PDFWriter that outputs to the given writer.
func NewPDFWriter(output io.Writer, layout config.Layout, opts ...BuilderOption) *PDFWriter {
	return &PDFWriter{
		baseWriter: newBaseWriter(output),
		layout:     layout,
		opts:       opts,
	}
}

// Write builds the report and writes the encoded PDF.
func (w *PDFWriter) Write(report *model.Report) (int, error) {
	b := Build(report, w.layout, w.opts...)
	n, err := b.WriteTo(w.output)
	w.pages = b.PageCount()
	return int(n), err
}

// Pages returns the page count of the last document written.
func (w *PDFWriter) Pages() int {
	return w.pages
}
