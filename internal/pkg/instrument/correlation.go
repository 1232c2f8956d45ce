package instrument

import "context"

type correlationIDKey struct{}

// invalidCorrelationID is logged when a context carries a non-string value
// under the correlation key.
const invalidCorrelationID = "[invalid_chain_id]"

// SetCorrelationID stores a correlation ID in the context for log stitching.
func SetCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID returns the correlation ID stored in the context, or ""
// when none was set.
func GetCorrelationID(ctx context.Context) string {
	val := ctx.Value(correlationIDKey{})
	if val == nil {
		return ""
	}

	id, ok := val.(string)
	if !ok {
		return invalidCorrelationID
	}

	return id
}
