package port

// TextExtractor turns one PDF into page-tagged plain text. Per-page failures
// yield placeholder markers inside the text instead of an error; the error
// return is reserved for inputs that are not a readable file at all.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// PageSlicer copies a single page out of a source PDF. Pages are 1-based at
// this boundary; the 0-based conversion happens inside the implementation,
// exactly once.
type PageSlicer interface {
	PageCount(path string) (int, error)
	ExtractPage(src string, page int, dst string) error
}
