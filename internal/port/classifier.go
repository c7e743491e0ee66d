package port

import "context"

// ClassifyInput carries the combined page-tagged text of one analysis run.
type ClassifyInput struct {
	CombinedText  string
	DocumentCount int
}

// Classifier abstracts the remote LLM call that identifies submittable form
// pages. Implementations return the raw response text untouched; turning it
// into candidates is the response parser's job. Implementations do not retry.
type Classifier interface {
	Classify(ctx context.Context, input ClassifyInput) (string, error)
}
