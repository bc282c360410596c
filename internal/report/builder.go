package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/nao1215/assetreport/internal/config"
	"github.com/nao1215/assetreport/internal/model"
)

// Typography of the project report. Heights are in the layout unit.
const (
	fontFamily = "Arial"

	titleFontSize   = 16.0
	headingFontSize = 12.0
	bodyFontSize    = 11.0

	titleHeight   = 10.0
	titleSpacer   = 10.0
	headingHeight = 10.0
	bodyLineH     = 8.0
	sectionSpacer = 2.0

	// creator is written to the document information dictionary.
	creator = "assetreport"
)

// DocumentDate is written as both CreationDate and ModDate.
// Pinning it makes repeated runs produce byte-identical files.
var DocumentDate = time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

// Builder assembles the project report as a paginated PDF document.
// A Builder owns its document exclusively and is single-use: after the
// document has been serialized, further appends are ignored and Finalize
// writes the cached bytes again.
//
// Callers can only append whole sections, never raw text, so every section
// goes through the same heading, body and spacer sequence.
type Builder struct {
	pdf     *gofpdf.Fpdf
	encoder *encoding.Encoder

	// sections counts appended sections; it drives heading numbers.
	sections int

	// data caches the serialized document. gofpdf drains its buffer on
	// output, so the bytes can only be produced once.
	data []byte
}

// builderOptions holds optional Builder settings.
type builderOptions struct {
	compress bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*builderOptions)

// WithCompression enables or disables compression of page content streams.
// Compression is on by default; turning it off leaves the text operators
// readable in the output, which is useful for inspection.
func WithCompression(compress bool) BuilderOption {
	return func(o *builderOptions) {
		o.compress = compress
	}
}

// NewBuilder creates a document with the given page geometry and adds the
// first page. Page breaks occur automatically once content passes
// layout.PageBreakMargin above the bottom edge.
func NewBuilder(layout config.Layout, opts ...BuilderOption) *Builder {
	o := builderOptions{compress: true}
	for _, opt := range opts {
		opt(&o)
	}

	pdf := gofpdf.New(layout.Orientation, layout.Unit, layout.PageSize, "")
	pdf.SetMargins(layout.Margin, layout.Margin, layout.Margin)
	pdf.SetAutoPageBreak(true, layout.PageBreakMargin)
	pdf.SetCompression(o.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(DocumentDate)
	pdf.SetModificationDate(DocumentDate)
	pdf.SetCreator(creator, true)
	if layout.Author != "" {
		pdf.SetAuthor(layout.Author, true)
	}
	if layout.Subject != "" {
		pdf.SetSubject(layout.Subject, true)
	}
	pdf.AddPage()

	return &Builder{
		pdf:     pdf,
		encoder: encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()),
	}
}

// WriteTitle writes the centered bold document title followed by a spacer,
// and records it as the document's Title metadata.
func (b *Builder) WriteTitle(title string) {
	if b.data != nil {
		return
	}
	b.pdf.SetTitle(title, true)
	b.pdf.SetFont(fontFamily, "B", titleFontSize)
	b.pdf.CellFormat(0, titleHeight, b.text(title), "", 1, "C", false, 0, "")
	b.pdf.Ln(titleSpacer)
}

// AppendSection writes a numbered bold heading line, the body as
// soft-wrapped justified text and a fixed vertical spacer.
// Sections are numbered in the order they are appended.
func (b *Builder) AppendSection(section model.Section) {
	if b.data != nil {
		return
	}
	b.sections++

	b.pdf.SetFont(fontFamily, "B", headingFontSize)
	heading := fmt.Sprintf("%d. %s", b.sections, section.Title)
	b.pdf.CellFormat(0, headingHeight, b.text(heading), "", 1, "", false, 0, "")

	b.pdf.SetFont(fontFamily, "", bodyFontSize)
	b.pdf.MultiCell(0, bodyLineH, b.text(section.Body), "", "", false)
	b.pdf.Ln(sectionSpacer)
}

// SectionCount returns the number of sections appended so far.
func (b *Builder) SectionCount() int {
	return b.sections
}

// PageCount returns the number of pages in the document.
func (b *Builder) PageCount() int {
	return b.pdf.PageCount()
}

// Bytes serializes the document and returns the encoded PDF.
// The first call closes the document; later calls return the same bytes.
func (b *Builder) Bytes() ([]byte, error) {
	if b.data != nil {
		return b.data, nil
	}

	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	b.data = buf.Bytes()
	return b.data, nil
}

// WriteTo serializes the document and writes it to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	data, err := b.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Finalize serializes the document and writes it to path, creating or
// truncating the file. A failed write may leave a partial file behind.
func (b *Builder) Finalize(path string) error {
	data, err := b.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // The report is not sensitive
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

// text converts UTF-8 to the cp1252 bytes expected by the core fonts.
// Runes with no cp1252 form are replaced rather than failing the document.
func (b *Builder) text(s string) string {
	out, err := b.encoder.String(s)
	if err != nil {
		return s
	}
	return out
}

// Build runs the fixed assembly sequence for report: initialize the
// document, write the title and append every section in order.
// The returned Builder is ready for Finalize.
func Build(report *model.Report, layout config.Layout, opts ...BuilderOption) *Builder {
	b := NewBuilder(layout, opts...)
	b.WriteTitle(report.Title)
	for _, section := range report.Sections {
		b.AppendSection(section)
	}
	return b
}
