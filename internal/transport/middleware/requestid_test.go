package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/budgetwise/expense-tracker/internal/transport/middleware"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Middleware Suite")
}

var _ = Describe("RequestID", func() {
	noop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	serve := func(traceHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		if traceHeader != "" {
			req.Header.Set(middleware.TraceHeader, traceHeader)
		}
		rec := httptest.NewRecorder()
		middleware.RequestID(noop).ServeHTTP(rec, req)
		return rec
	}

	It("should mint a trace id when the client sends none", func() {
		rec := serve("")

		echoed := rec.Header().Get(middleware.TraceHeader)
		Expect(echoed).ToNot(BeEmpty())
		_, err := uuid.Parse(echoed)
		Expect(err).ToNot(HaveOccurred())
	})

	It("should echo back a well-formed client trace id", func() {
		supplied := uuid.NewString()
		rec := serve(supplied)

		Expect(rec.Header().Get(middleware.TraceHeader)).To(Equal(supplied))
	})

	It("should replace a trace id that is not a UUID", func() {
		rec := serve("nonsense\nwith newlines")

		echoed := rec.Header().Get(middleware.TraceHeader)
		Expect(echoed).ToNot(Equal("nonsense\nwith newlines"))
		_, err := uuid.Parse(echoed)
		Expect(err).ToNot(HaveOccurred())
	})
})
