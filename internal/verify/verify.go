package verify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/reader"
	"golang.org/x/sync/errgroup"
)

const (
	pdfHeader  = "%PDF-"
	pdfTrailer = "%%EOF"
)

// Result describes a successfully verified report file.
type Result struct {
	// Path is the verified file.
	Path string

	// Version is the PDF version from the file header, e.g. "1.3".
	Version string

	// Size is the file size in bytes.
	Size int64

	// Pages is the page count reported by the parser.
	Pages int

	// Headings lists the headings found, in document order.
	Headings []string

	// Metadata is the document information dictionary.
	Metadata Metadata
}

// Metadata holds the document information fields of a PDF.
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Creator      string
	Producer     string
	CreationDate string
	ModDate      string
}

// Verifier checks report files.
type Verifier struct {
	logger *slog.Logger
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Verifier) {
		v.logger = logger
	}
}

// New creates a Verifier.
func New(opts ...Option) *Verifier {
	v := &Verifier{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify reads the file at path and checks it against the expected
// headings. An empty headings slice skips the heading check.
func (v *Verifier) Verify(ctx context.Context, path string, headings []string) (*Result, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := CheckMagic(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	result := &Result{
		Path: path,
		Size: int64(len(data)),
	}

	var text string
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		pages, meta, err := validate(gctx, data)
		if err != nil {
			return err
		}
		result.Pages = pages
		result.Metadata = meta
		v.logger.Debug("structure validated", "path", path, "pages", pages)
		return nil
	})

	g.Go(func() error {
		version, extracted, err := extractText(gctx, path)
		if err != nil {
			return err
		}
		result.Version = version
		text = extracted
		v.logger.Debug("text extracted", "path", path, "chars", len(extracted))
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(headings) > 0 {
		if err := CheckHeadings(text, headings); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		result.Headings = append([]string(nil), headings...)
	}

	return result, nil
}

// CheckMagic reports whether data starts with the PDF header and ends with
// the end-of-file marker. Trailing whitespace after the marker is allowed.
func CheckMagic(data []byte) error {
	if !bytes.HasPrefix(data, []byte(pdfHeader)) {
		return fmt.Errorf("%w: missing %s header", ErrNotPDF, pdfHeader)
	}
	if !bytes.HasSuffix(bytes.TrimRight(data, " \t\r\n"), []byte(pdfTrailer)) {
		return fmt.Errorf("%w: missing %s trailer", ErrNotPDF, pdfTrailer)
	}
	return nil
}

// CheckHeadings verifies that every heading occurs in text, in the given
// order. Runs of whitespace in text are collapsed first because extracted
// text may break a heading across lines.
func CheckHeadings(text string, headings []string) error {
	normalized := strings.Join(strings.Fields(text), " ")

	positions := make([]int, len(headings))
	for i, h := range headings {
		needle := strings.Join(strings.Fields(h), " ")
		idx := strings.Index(normalized, needle)
		if idx < 0 {
			return fmt.Errorf("%w: %q", ErrHeadingMissing, h)
		}
		positions[i] = idx
	}

	for i := 1; i < len(positions); i++ {
		if positions[i] < positions[i-1] {
			return fmt.Errorf("%w: %q appears before %q", ErrHeadingOrder, headings[i], headings[i-1])
		}
	}
	return nil
}

// validate parses data with pdfcpu in relaxed mode and returns the page
// count and the document information fields.
func validate(ctx context.Context, data []byte) (int, Metadata, error) {
	if err := ctx.Err(); err != nil {
		return 0, Metadata{}, err
	}

	api.DisableConfigDir()
	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed

	pdfCtx, err := api.ReadAndValidate(bytes.NewReader(data), conf)
	if err != nil {
		return 0, Metadata{}, fmt.Errorf("invalid PDF structure: %w", err)
	}
	if err := pdfCtx.EnsurePageCount(); err != nil {
		return 0, Metadata{}, fmt.Errorf("failed to count pages: %w", err)
	}

	meta := Metadata{
		Title:        pdfCtx.Title,
		Author:       pdfCtx.Author,
		Subject:      pdfCtx.Subject,
		Creator:      pdfCtx.Creator,
		Producer:     pdfCtx.Producer,
		CreationDate: pdfCtx.XRefTable.CreationDate,
		ModDate:      pdfCtx.XRefTable.ModDate,
	}
	return pdfCtx.PageCount, meta, nil
}

// extractText opens path as a PDF regardless of its extension and returns
// the header version and the plain text of every page.
func extractText(ctx context.Context, path string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	r, err := reader.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to open PDF for text extraction: %w", err)
	}
	defer func() {
		_ = r.Close()
	}()

	text, _, err := tabula.FromReader(r).Text()
	if err != nil {
		return "", "", fmt.Errorf("failed to extract text: %w", err)
	}
	return r.Version().String(), text, nil
}
