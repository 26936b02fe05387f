package dispatch

import "context"

type ctxKey struct{}

// ContextWithJobID attaches a dispatch job ID to the context.
func ContextWithJobID(ctx context.Context, jobID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, jobID)
}

// JobIDFromContext extracts the dispatch job ID, if any. Pairs with the
// logger package's context extractors so every log line written during a job
// carries its ID.
func JobIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
