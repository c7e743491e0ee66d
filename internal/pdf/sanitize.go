package pdf

import (
	"fmt"
	"strings"
)

// illegal are the filesystem-unsafe characters stripped from artifact names.
const illegal = `\/*?:"<>|`

// SanitizeFilename strips filesystem-illegal characters from name. The
// function is deterministic and idempotent; artifact paths derived from it
// are the basis for overwrite-style re-runs.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegal, r) {
			return -1
		}
		return r
	}, name)
}

// CandidateFilename returns the canonical artifact name for a form page:
// {page}p_{sanitized-title}.pdf. Used when the classifier suggested no
// filename of its own.
func CandidateFilename(page int, title string) string {
	title = SanitizeFilename(strings.TrimSpace(title))
	if title == "" {
		title = "서식"
	}
	return fmt.Sprintf("%dp_%s.pdf", page, title)
}
