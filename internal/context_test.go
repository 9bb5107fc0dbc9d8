package internal

import (
	"context"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestInternal(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Internal Suite")
}

var _ = ginkgo.Describe("WithTimeout", func() {
	ginkgo.It("should honor an explicit duration", func() {
		ctx, cancel := WithTimeout(context.Background(), time.Minute)
		defer cancel()

		deadline, ok := ctx.Deadline()
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(deadline).To(gomega.BeTemporally("~", time.Now().Add(time.Minute), time.Second))
	})

	ginkgo.It("should fall back to the default for a zero duration", func() {
		ctx, cancel := WithTimeout(context.Background(), 0)
		defer cancel()

		deadline, ok := ctx.Deadline()
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(deadline).To(gomega.BeTemporally("~", time.Now().Add(DefaultRequestTimeout), time.Second))
	})

	ginkgo.It("should fall back to the default for a negative duration", func() {
		ctx, cancel := WithTimeout(context.Background(), -time.Second)
		defer cancel()

		deadline, ok := ctx.Deadline()
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(deadline).To(gomega.BeTemporally("~", time.Now().Add(DefaultRequestTimeout), time.Second))
	})
})
