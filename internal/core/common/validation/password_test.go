package validation

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("ValidatePassword", func() {
	ginkgo.It("should accept a strong password", func() {
		msgs := ValidatePassword("correct-horse-battery", "jane@example.com", "jane_doe", "Jane", "Doe")
		gomega.Expect(msgs).To(gomega.BeEmpty())
	})

	ginkgo.It("should flag a password under eight characters", func() {
		msgs := ValidatePassword("seven77")
		gomega.Expect(msgs).To(gomega.ContainElement(
			"This password is too short. It must contain at least 8 characters."))
	})

	ginkgo.It("should flag an entirely numeric password", func() {
		msgs := ValidatePassword("84927561039")
		gomega.Expect(msgs).To(gomega.ConsistOf("This password is entirely numeric."))
	})

	ginkgo.It("should flag a common password regardless of case", func() {
		msgs := ValidatePassword("QwErTy123")
		gomega.Expect(msgs).To(gomega.ContainElement("This password is too common."))
	})

	ginkgo.It("should flag a password matching the username", func() {
		msgs := ValidatePassword("jane_doe42", "jane@example.com", "jane_doe", "Jane", "Doe")
		gomega.Expect(msgs).To(gomega.ContainElement("The password is too similar to the username."))
	})

	ginkgo.It("should flag a password built from the email local part", func() {
		msgs := ValidatePassword("janedoe99", "janedoe@example.com", "someone", "Jane", "Doe")
		gomega.Expect(msgs).To(gomega.ContainElement("The password is too similar to the email."))
	})

	ginkgo.It("should report every violated rule at once", func() {
		msgs := ValidatePassword("1234567")
		gomega.Expect(msgs).To(gomega.ConsistOf(
			"This password is too short. It must contain at least 8 characters.",
			"This password is entirely numeric.",
			"This password is too common.",
		))
	})

	ginkgo.It("should ignore blank attributes", func() {
		msgs := ValidatePassword("sturdy-passphrase", "", "", "", "")
		gomega.Expect(msgs).To(gomega.BeEmpty())
	})
})
