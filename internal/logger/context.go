package logger

import "context"

type ctxKey string

const requestIDKey ctxKey = "request_id"

// RequestID достаёт идентификатор запроса из контекста
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}
