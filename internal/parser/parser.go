// Package parser turns raw classifier responses into a normalized list of
// form candidates. A strict JSON parse is attempted first; when that yields
// nothing usable, an ordered chain of regex strategies recovers candidates
// from prose. The parser never fails: every input produces a well-formed
// ExtractionResult with a non-nil Forms list and the analyzed-file snapshot.
package parser

import (
	"encoding/json"
	"log"

	"seosik/internal/domain"
)

// docResult models one per-document entry of the classifier's output schema.
type docResult struct {
	Doc   string                 `json:"doc"`
	Forms []domain.FormCandidate `json:"forms"`
}

// Parse converts raw response text into an ExtractionResult. primaryDoc is
// the first source filename, used to backfill a missing document name.
func Parse(raw string, analyzed []domain.AnalyzedFile, primaryDoc string) *domain.ExtractionResult {
	result := domain.NewExtractionResult(primaryDoc, analyzed)

	segment, found := extractJSONSegment(raw)
	decoded := false
	if found {
		decoded = parsePrimary(segment, result)
		if decoded && len(result.Forms) > 0 {
			return result
		}
	}

	// Structured parse failed or produced nothing; fall back to heuristics.
	log.Printf("parser: structured parse yielded no candidates, trying fallback patterns")
	forms := ApplyStrategies(DefaultStrategies, raw)
	// A decoded response with an empty forms list is a valid "no forms"
	// answer; anything short of that with an empty fallback is a failure.
	if len(forms) == 0 && !decoded {
		result.Error = "no parseable content in classifier response"
	}
	result.Forms = forms
	return result
}

// parsePrimary fills result from a JSON segment. Returns false when the
// segment does not decode into either supported shape.
func parsePrimary(segment []byte, result *domain.ExtractionResult) bool {
	var multi []docResult
	if err := json.Unmarshal(segment, &multi); err == nil {
		var all []domain.FormCandidate
		docName := ""
		for _, dr := range multi {
			for _, f := range dr.Forms {
				if f.Doc == "" {
					f.Doc = dr.Doc
				}
				all = append(all, f)
			}
			if docName == "" && dr.Doc != "" {
				docName = dr.Doc
			}
		}
		if docName != "" {
			result.Doc = docName
		}
		if all == nil {
			all = []domain.FormCandidate{}
		}
		result.Forms = all
		// Keep the original per-document array for audit.
		result.MultiDocResult = json.RawMessage(segment)
		return true
	}

	var single docResult
	if err := json.Unmarshal(segment, &single); err == nil {
		if single.Doc != "" {
			result.Doc = single.Doc
		}
		if single.Forms == nil {
			single.Forms = []domain.FormCandidate{}
		}
		result.Forms = single.Forms
		return true
	}

	return false
}

// extractJSONSegment locates the first balanced top-level JSON array or
// object substring, tolerating leading and trailing prose the classifier
// should not produce but sometimes does.
func extractJSONSegment(raw string) ([]byte, bool) {
	start := -1
	for i, r := range raw {
		if r == '[' || r == '{' {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, false
	}

	end := -1
	for i := len(raw) - 1; i > start; i-- {
		if raw[i] == ']' || raw[i] == '}' {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, false
	}

	return []byte(raw[start : end+1]), true
}
