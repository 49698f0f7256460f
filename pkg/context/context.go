package context

import (
	"context"

	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

// NewTurnContext tags a fresh context with a request id for one conversational turn.
func NewTurnContext(parent context.Context) context.Context {
	return WithRequestID(parent, uuid.New().String())
}
