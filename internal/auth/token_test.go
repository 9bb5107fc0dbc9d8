package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("JWTTokenGenerator", func() {
	var (
		gen    *JWTTokenGenerator
		userID string
	)

	ginkgo.BeforeEach(func() {
		gen = NewJWTTokenGenerator("unit-test-signing-secret-32-chars!!", 15*time.Minute, 24*time.Hour)
		userID = uuid.NewString()
	})

	ginkgo.It("should round-trip access token claims", func() {
		token, err := gen.GenerateAccessToken(userID, "user@example.com")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		claims, err := gen.ValidateToken(token)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(claims.UserID).To(gomega.Equal(userID))
		gomega.Expect(claims.Email).To(gomega.Equal("user@example.com"))
		gomega.Expect(claims.TokenType).To(gomega.Equal(TokenTypeAccess))
		gomega.Expect(claims.ID).ToNot(gomega.BeEmpty())
	})

	ginkgo.It("should give every token a distinct jti", func() {
		first, err := gen.GenerateRefreshToken(userID, "user@example.com")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		second, err := gen.GenerateRefreshToken(userID, "user@example.com")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		firstClaims, err := gen.ValidateToken(first)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		secondClaims, err := gen.ValidateToken(second)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(firstClaims.ID).ToNot(gomega.Equal(secondClaims.ID))
	})

	ginkgo.It("should report a clean expiry as ErrTokenExpired", func() {
		expiredGen := NewJWTTokenGenerator("unit-test-signing-secret-32-chars!!", -time.Minute, 24*time.Hour)
		token, err := expiredGen.GenerateAccessToken(userID, "user@example.com")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		_, err = gen.ValidateToken(token)
		gomega.Expect(err).To(gomega.Equal(ErrTokenExpired))
	})

	ginkgo.It("should reject a token signed with a different secret", func() {
		otherGen := NewJWTTokenGenerator("a-completely-different-secret-32-ch!", 15*time.Minute, 24*time.Hour)
		token, err := otherGen.GenerateAccessToken(userID, "user@example.com")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		_, err = gen.ValidateToken(token)
		gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
	})

	ginkgo.It("should reject a tampered token", func() {
		token, err := gen.GenerateAccessToken(userID, "user@example.com")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		_, err = gen.ValidateToken(token + "x")
		gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
	})

	ginkgo.It("should reject non-token input", func() {
		_, err := gen.ValidateToken("")
		gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))

		_, err = gen.ValidateToken("header.payload")
		gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
	})
})
