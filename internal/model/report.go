package model

import (
	"fmt"
	"strings"
)

// Section is a titled block of literal text.
// A section has no identity and no lifecycle beyond being rendered once.
type Section struct {
	// Title is the short heading without its number (e.g. "Project Overview").
	Title string `json:"title"`

	// Body is the multi-line body text. Writers render it verbatim,
	// including the leading and trailing newlines.
	Body string `json:"body"`
}

// Report is the complete document content: a title line followed by
// sections in a fixed order.
//
// Design decision: Sections is a slice, not a map, because order is part of
// the content. Writers must never sort, filter or skip sections.
type Report struct {
	// Title is the document title rendered once at the top of the first page.
	Title string `json:"title"`

	// Sections are rendered in slice order.
	Sections []Section `json:"sections"`
}

// Heading returns the numbered heading label for the section at index i
// (zero-based), e.g. "1. Project Overview".
func (r *Report) Heading(i int) string {
	return fmt.Sprintf("%d. %s", i+1, r.Sections[i].Title)
}

// Headings returns the numbered heading labels of all sections in order.
func (r *Report) Headings() []string {
	headings := make([]string, len(r.Sections))
	for i := range r.Sections {
		headings[i] = r.Heading(i)
	}
	return headings
}

// SectionCount returns the number of sections in the report.
func (r *Report) SectionCount() int {
	return len(r.Sections)
}

// BodyLines returns the body of a section split into lines, with the
// surrounding blank lines removed. Writers that cannot render a raw
// multi-line string (plain text, Markdown) use this.
func (s Section) BodyLines() []string {
	return strings.Split(strings.Trim(s.Body, "\n"), "\n")
}
