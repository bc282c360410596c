package verify

import "errors"

var (
	// ErrNotPDF is returned when the file lacks the PDF header or trailer.
	ErrNotPDF = errors.New("file is not a PDF document")

	// ErrHeadingMissing is returned when an expected heading does not
	// appear in the extracted text.
	ErrHeadingMissing = errors.New("section heading not found")

	// ErrHeadingOrder is returned when every heading is present but they
	// appear out of order.
	ErrHeadingOrder = errors.New("section headings out of order")
)
