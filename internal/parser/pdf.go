// Package parser is the PDF extraction boundary: it type-checks uploads,
// validates PDF structure, and produces raw per-page text for the segmenter.
// Glyph layout, columns and OCR are out of scope; pages arrive as the
// extractor's already-joined text runs.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/jfaulds/pacereader/internal/segment"
)

// Classified extraction failures. Each maps to a distinct user-facing
// message; none of them is retried automatically.
var (
	ErrNotPDF            = errors.New("file is not a PDF")
	ErrInvalidPDF        = errors.New("pdf appears to be corrupted or invalid")
	ErrPasswordProtected = errors.New("pdf is password-protected")
)

// IsPDF sniffs the upload's content type from its bytes. The declared
// Content-Type header is not trusted.
func IsPDF(data []byte) bool {
	return mimetype.Detect(data).Is("application/pdf")
}

// Validate checks PDF structure and returns the page count. Encrypted
// documents and structurally broken ones come back as distinct errors.
func Validate(data []byte) (int, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0, classifyPDFError(err)
	}
	return ctx.PageCount, nil
}

// ExtractPages validates the document and extracts each page's text in page
// order. A page that fails text extraction is skipped rather than failing the
// whole document. Returns the pages and the document's total page count.
func ExtractPages(data []byte) ([]segment.RawPage, int, error) {
	if !IsPDF(data) {
		return nil, 0, ErrNotPDF
	}

	pageCount, err := Validate(data)
	if err != nil {
		return nil, 0, err
	}

	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, 0, classifyPDFError(err)
	}

	var pages []segment.RawPage
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, segment.RawPage{Number: i, Text: text})
	}

	return pages, pageCount, nil
}

// classifyPDFError maps library errors onto the package's error taxonomy,
// keeping the original cause in the chain.
func classifyPDFError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "password") || strings.Contains(msg, "encrypt") {
		return fmt.Errorf("%w: %v", ErrPasswordProtected, err)
	}
	return fmt.Errorf("%w: %v", ErrInvalidPDF, err)
}
