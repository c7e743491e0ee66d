package pdf

import (
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageSlicer copies single pages out of source PDFs using pdfcpu. It
// implements port.PageSlicer.
type PageSlicer struct{}

// NewPageSlicer creates a pdfcpu-backed page slicer.
func NewPageSlicer() *PageSlicer {
	return &PageSlicer{}
}

// PageCount returns the number of pages in the PDF at path.
func (s *PageSlicer) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("counting pages of %s: %w", path, err)
	}
	return n, nil
}

// ExtractPage writes page (1-based) of src as a standalone single-page PDF at
// dst, overwriting any previous artifact there. The 1-based page number is
// handed to pdfcpu as a page selection, so no index conversion leaks out of
// this method.
func (s *PageSlicer) ExtractPage(src string, page int, dst string) error {
	if page < 1 {
		return fmt.Errorf("invalid page number %d", page)
	}
	if err := api.TrimFile(src, dst, []string{strconv.Itoa(page)}, nil); err != nil {
		return fmt.Errorf("extracting page %d of %s: %w", page, src, err)
	}
	return nil
}
