package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"seosik/internal/domain"
)

// Strategy extracts form candidates from free-form response text. Strategies
// are pure functions; they are combined by concatenation and deduplication,
// which keeps them trivial to add, remove, reorder, and test independently.
type Strategy func(text string) []domain.FormCandidate

var (
	rePageTitle     = regexp.MustCompile(`(?is)page[^\d]*(\d+).*?title[^\w가-힣]*([\w가-힣]+)`)
	reJSONPageTitle = regexp.MustCompile(`(?is)"page"[^\d]*(\d+).*?"title"[^\w가-힣]*"([\w가-힣]+)"`)
	reKoreanPair    = regexp.MustCompile(`(?is)서식.*?페이지.*?(\d+).*?제목.*?['"]([^'"]+)['"]`)
	reAttachedForm  = regexp.MustCompile(`별지\s*제\s*(\d+)\s*호`)
	reNumberedForm  = regexp.MustCompile(`서식\s*제\s*(\d+)\s*호`)
	reKnownTitles   = regexp.MustCompile(`(입찰참가신청서|청렴계약\s*이행각서|입찰인감증명서|가격제안서|견적서)`)
)

// DefaultStrategies is the fixed, ordered fallback chain: generic page/title
// pairs, JSON-shaped pairs, the Korean 서식/페이지/제목 phrasing, numbered
// attachment references (which carry a form number, not a page), and a closed
// list of canonical form titles.
var DefaultStrategies = []Strategy{
	PageTitlePairs(rePageTitle),
	PageTitlePairs(reJSONPageTitle),
	PageTitlePairs(reKoreanPair),
	TitleOnly(reAttachedForm, func(m string) string { return "별지 제" + m + "호 서식" }),
	TitleOnly(reNumberedForm, func(m string) string { return "서식 제" + m + "호" }),
	TitleOnly(reKnownTitles, func(m string) string { return strings.TrimSpace(m) }),
}

// PageTitlePairs builds a strategy from a pattern whose first submatch is a
// page number and second is a title.
func PageTitlePairs(re *regexp.Regexp) Strategy {
	return func(text string) []domain.FormCandidate {
		var out []domain.FormCandidate
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			page, err := strconv.Atoi(m[1])
			if err != nil || page < 1 {
				continue
			}
			title := strings.TrimSpace(m[2])
			if title == "" {
				continue
			}
			out = append(out, domain.FormCandidate{
				Page:          page,
				Title:         title,
				Filename:      strconv.Itoa(page) + "p_" + title + ".pdf",
				RequiresInput: true,
			})
		}
		return out
	}
}

// TitleOnly builds a strategy from a pattern that identifies a form by name
// alone; the page stays unknown and the candidate is appended after all
// page-numbered ones.
func TitleOnly(re *regexp.Regexp, title func(match string) string) Strategy {
	return func(text string) []domain.FormCandidate {
		var out []domain.FormCandidate
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			t := title(m[1])
			if t == "" {
				continue
			}
			out = append(out, domain.FormCandidate{
				Title:         t,
				RequiresInput: true,
			})
		}
		return out
	}
}

// ApplyStrategies runs every strategy over text, concatenates the matches,
// dedupes by exact title (first occurrence wins), and orders page-numbered
// candidates ascending ahead of page-less ones. The ordering is load-bearing:
// page extraction depends on it for deterministic filenames.
func ApplyStrategies(strategies []Strategy, text string) []domain.FormCandidate {
	var found []domain.FormCandidate
	for _, s := range strategies {
		found = append(found, s(text)...)
	}

	seen := make(map[string]bool, len(found))
	paged := []domain.FormCandidate{}
	unpaged := []domain.FormCandidate{}
	for _, f := range found {
		if f.Title == "" || seen[f.Title] {
			continue
		}
		seen[f.Title] = true
		if f.Page > 0 {
			paged = append(paged, f)
		} else {
			unpaged = append(unpaged, f)
		}
	}

	sort.SliceStable(paged, func(i, j int) bool { return paged[i].Page < paged[j].Page })
	return append(paged, unpaged...)
}
