package postgres

import (
	"testing"
	"time"

	"github.com/budgetwise/expense-tracker/internal/auth"
	tokenDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/token"
	userDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/user"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAuthRepositories(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Repositories Suite")
}

func newTestUser() *userDatamodel.User {
	return &userDatamodel.User{
		ID:           uuid.New(),
		Email:        "jane@example.com",
		Username:     "jane_doe",
		FirstName:    "Jane",
		LastName:     "Doe",
		PhoneNumber:  "+14155550100",
		PasswordHash: "$2a$10$notarealhashbutlongenough",
		IsActive:     true,
	}
}

var _ = Describe("UserRepository", func() {
	var (
		db   *gorm.DB
		repo auth.RepositoryAPI
	)

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&userDatamodel.User{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewUserRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	It("should create and fetch a user by email", func() {
		u := newTestUser()
		Expect(repo.CreateUser(u)).To(Succeed())

		got, err := repo.GetUserByEmail("jane@example.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.ID).To(Equal(u.ID))
		Expect(got.Username).To(Equal("jane_doe"))
	})

	It("should fetch a user by id", func() {
		u := newTestUser()
		Expect(repo.CreateUser(u)).To(Succeed())

		got, err := repo.GetUserByID(u.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Email).To(Equal("jane@example.com"))
	})

	It("should report a missing user", func() {
		_, err := repo.GetUserByEmail("nobody@example.com")
		Expect(err).To(Equal(auth.ErrUserNotFound))

		_, err = repo.GetUserByID(uuid.New())
		Expect(err).To(Equal(auth.ErrUserNotFound))
	})

	It("should enforce unique email at the schema level", func() {
		Expect(repo.CreateUser(newTestUser())).To(Succeed())

		dup := newTestUser()
		dup.ID = uuid.New()
		dup.Username = "different"
		dup.PhoneNumber = "+14155550199"
		Expect(repo.CreateUser(dup)).NotTo(Succeed())
	})

	Describe("existence checks", func() {
		BeforeEach(func() {
			Expect(repo.CreateUser(newTestUser())).To(Succeed())
		})

		It("should see a taken email", func() {
			taken, err := repo.EmailExists("jane@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(taken).To(BeTrue())
		})

		It("should see a taken username", func() {
			taken, err := repo.UsernameExists("jane_doe")
			Expect(err).NotTo(HaveOccurred())
			Expect(taken).To(BeTrue())
		})

		It("should see a taken phone number", func() {
			taken, err := repo.PhoneNumberExists("+14155550100")
			Expect(err).NotTo(HaveOccurred())
			Expect(taken).To(BeTrue())
		})

		It("should clear unknown values", func() {
			taken, err := repo.EmailExists("free@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(taken).To(BeFalse())
		})
	})
})

var _ = Describe("RevocationRepository", func() {
	var (
		db   *gorm.DB
		repo auth.RevocationAPI
	)

	newEntry := func(jti string, expiresAt time.Time) *tokenDatamodel.RevokedToken {
		return &tokenDatamodel.RevokedToken{
			JTI:       jti,
			UserID:    uuid.New(),
			ExpiresAt: expiresAt,
			RevokedAt: time.Now(),
		}
	}

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&tokenDatamodel.RevokedToken{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewRevocationRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	It("should record a revocation and answer IsRevoked", func() {
		Expect(repo.Revoke(newEntry("some-jti", time.Now().Add(time.Hour)))).To(Succeed())

		revoked, err := repo.IsRevoked("some-jti")
		Expect(err).NotTo(HaveOccurred())
		Expect(revoked).To(BeTrue())

		revoked, err = repo.IsRevoked("other-jti")
		Expect(err).NotTo(HaveOccurred())
		Expect(revoked).To(BeFalse())
	})

	It("should refuse to revoke the same jti twice", func() {
		Expect(repo.Revoke(newEntry("dup-jti", time.Now().Add(time.Hour)))).To(Succeed())
		Expect(repo.Revoke(newEntry("dup-jti", time.Now().Add(time.Hour)))).NotTo(Succeed())
	})

	Describe("PruneExpired", func() {
		It("should delete only entries past their expiry", func() {
			now := time.Now()
			Expect(repo.Revoke(newEntry("stale", now.Add(-time.Hour)))).To(Succeed())
			Expect(repo.Revoke(newEntry("live", now.Add(time.Hour)))).To(Succeed())

			pruned, err := repo.PruneExpired(now)
			Expect(err).NotTo(HaveOccurred())
			Expect(pruned).To(Equal(int64(1)))

			revoked, err := repo.IsRevoked("live")
			Expect(err).NotTo(HaveOccurred())
			Expect(revoked).To(BeTrue())

			revoked, err = repo.IsRevoked("stale")
			Expect(err).NotTo(HaveOccurred())
			Expect(revoked).To(BeFalse())
		})
	})
})
