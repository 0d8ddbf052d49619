package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// The context key type is unexported so callers go through this package.
type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info carries the tracing state of one HTTP request.
// RequestID is unique per request; spanSeq increments 1,2,3,... for each
// outbound call made while handling that request.
type Info struct {
	RequestID string
	spanSeq   int64
}

// GenerateID produces a random id for request tracing.
func GenerateID() string {
	return uuid.NewString()
}

// WithRequestAndSpan stores a request id and an initial span value
// (usually 0) in the context.
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	info := &Info{RequestID: requestID, spanSeq: initialSpan}
	return context.WithValue(ctx, ctxKeyTrace, info)
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

// RequestIDFromContext returns the request id stored in the context, or
// the empty string when tracing was never initialized.
func RequestIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RequestID
}

// CurrentSpanID returns the current span sequence as a string without
// incrementing it.
func CurrentSpanID(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return "0"
	}
	val := atomic.LoadInt64(&info.spanSeq)
	if val <= 0 {
		return "0"
	}
	return strconv.FormatInt(val, 10)
}

// NextSpanID increments the span sequence and returns (requestID, spanID).
// Each outbound call within one request gets the next span number.
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		// Fallback for use outside the middleware.
		return GenerateID(), "1"
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	if val <= 0 {
		val = 1
	}
	return info.RequestID, strconv.FormatInt(val, 10)
}
