package port

import "context"

// InsightGenerator abstracts the hosted generative-language model. Generate
// returns the model's raw text reply with no schema guarantee: it may be
// fenced JSON, partial JSON, prose, or empty. Transport, timeout and quota
// failures return an error wrapping domain.ErrInsightUnavailable.
type InsightGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
