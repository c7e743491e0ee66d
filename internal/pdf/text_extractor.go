// Package pdf provides the two PDF backends of the pipeline: page-tagged
// text extraction (ledongthuc/pdf) and single-page slicing (pdfcpu).
package pdf

import (
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor extracts page-tagged plain text from a PDF file. It
// implements port.TextExtractor.
type TextExtractor struct{}

// NewTextExtractor creates a ledongthuc/pdf-backed text extractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the document text with every page prefixed by a
// "--- PAGE n ---" marker. A page that fails to extract yields a placeholder
// marker instead of failing the document; failure is local. A file that
// cannot be opened at all yields a bracketed error marker string, so that a
// bad document degrades the combined text rather than the run.
func (e *TextExtractor) ExtractText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		log.Printf("pdf: failed to open %s: %v", path, err)
		return fmt.Sprintf("[Error extracting text: %v]", err), nil
	}
	defer func() { _ = f.Close() }()

	var parts []string
	for i := 1; i <= reader.NumPage(); i++ {
		text, err := extractPageText(reader, i)
		switch {
		case err != nil:
			log.Printf("pdf: page %d of %s: %v", i, path, err)
			parts = append(parts, fmt.Sprintf("--- PAGE %d ---\n[Error: %v]", i, err))
		case strings.TrimSpace(text) == "":
			parts = append(parts, fmt.Sprintf("--- PAGE %d ---\n[Page %d has no extractable text]", i, i))
		default:
			parts = append(parts, fmt.Sprintf("--- PAGE %d ---\n%s", i, text))
		}
	}

	return strings.Join(parts, "\n"), nil
}

// extractPageText pulls the plain text of one page. ledongthuc/pdf panics on
// some malformed content streams, so the panic is converted to a per-page
// error here.
func extractPageText(reader *pdf.Reader, page int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("text extraction panicked: %v", r)
		}
	}()

	p := reader.Page(page)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d not found", page)
	}
	return p.GetPlainText(nil)
}
