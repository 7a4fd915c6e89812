// Package pdfio wraps PDF access: opening documents with go-fitz,
// parsing page layout into text runs, and rendering pages to JPEG.
package pdfio

import (
	"fmt"

	"github.com/gen2brain/go-fitz"

	"github.com/Wen-Qualtu/kt-datacards/internal/model"
)

// Document is an open PDF. Not safe for concurrent use.
type Document struct {
	doc  *fitz.Document
	path string
}

// Open opens the PDF at path.
func Open(path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &Document{doc: doc, path: path}, nil
}

// Path returns the source file path.
func (d *Document) Path() string { return d.path }

// NumPages returns the page count.
func (d *Document) NumPages() int { return d.doc.NumPage() }

// PageText returns the plain text of a page (0-based).
func (d *Document) PageText(pageIndex int) (string, error) {
	if err := d.checkIndex(pageIndex); err != nil {
		return "", err
	}
	text, err := d.doc.Text(pageIndex)
	if err != nil {
		return "", fmt.Errorf("extract text from page %d: %w", pageIndex+1, err)
	}
	return text, nil
}

// PageRuns returns the page's text layout as runs with font size and
// position, parsed from the MuPDF HTML rendering of the page.
func (d *Document) PageRuns(pageIndex int) ([]model.TextRun, error) {
	if err := d.checkIndex(pageIndex); err != nil {
		return nil, err
	}
	html, err := d.doc.HTML(pageIndex, false)
	if err != nil {
		return nil, fmt.Errorf("render page %d layout: %w", pageIndex+1, err)
	}
	return ParseTextRuns(html)
}

// Close releases the underlying document.
func (d *Document) Close() error { return d.doc.Close() }

func (d *Document) checkIndex(pageIndex int) error {
	if pageIndex < 0 || pageIndex >= d.doc.NumPage() {
		return fmt.Errorf("page %d out of range (document has %d pages)", pageIndex+1, d.doc.NumPage())
	}
	return nil
}
