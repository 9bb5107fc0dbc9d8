package middleware

import (
	"net/http"

	"github.com/budgetwise/expense-tracker/pkg/logger"

	"github.com/google/uuid"
)

// TraceHeader carries the per-request trace id between client and server.
const TraceHeader = "X-Trace-ID"

// RequestID tags every request with a trace id. A client-supplied id is
// honored only if it parses as a UUID; anything else is replaced so log
// lines cannot be polluted with arbitrary header values. The id rides the
// request logger in context and is echoed on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "traceID", traceID)
		w.Header().Set(TraceHeader, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
