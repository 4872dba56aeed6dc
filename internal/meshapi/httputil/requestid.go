package httputil

import (
	"context"
	"strings"

	"github.com/yungbote/eduviz/internal/platform/ctxutil"
)

// WithRequestID stores id in the same trace data the generation API uses.
func WithRequestID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		return ctx
	}
	return ctxutil.WithTraceData(ctx, &ctxutil.TraceData{RequestID: strings.TrimSpace(id)})
}

func RequestIDFromContext(ctx context.Context) string {
	return strings.TrimSpace(ctxutil.RequestID(ctx))
}
