package postgres

import (
	"testing"
	"time"

	incomeDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/income"
	"github.com/budgetwise/expense-tracker/internal/income"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestIncomeRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "IncomeRepository Suite")
}

var _ = Describe("IncomeRepository", func() {
	var (
		db      *gorm.DB
		repo    income.Repository
		ownerID uuid.UUID
		otherID uuid.UUID
	)

	newRecord := func(owner uuid.UUID, name, amount string) *incomeDatamodel.Income {
		return &incomeDatamodel.Income{
			ID:            uuid.New(),
			NameOfRevenue: name,
			Amount:        decimal.RequireFromString(amount),
			UserID:        owner,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
	}

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&incomeDatamodel.Income{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewIncomeRepository(db)
		ownerID = uuid.New()
		otherID = uuid.New()
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("Create and GetByID", func() {
		It("should store and retrieve a record for its owner", func() {
			rec := newRecord(ownerID, "Monthly salary", "4200.00")
			Expect(repo.Create(rec)).To(Succeed())

			got, err := repo.GetByID(ownerID, rec.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.NameOfRevenue).To(Equal("Monthly salary"))
			Expect(got.Amount.Equal(decimal.RequireFromString("4200.00"))).To(BeTrue())
		})

		It("should not expose a record to a different owner", func() {
			rec := newRecord(ownerID, "Monthly salary", "4200.00")
			Expect(repo.Create(rec)).To(Succeed())

			_, err := repo.GetByID(otherID, rec.ID)
			Expect(err).To(Equal(income.ErrIncomeNotFound))
		})

		It("should report not-found for an unknown id", func() {
			_, err := repo.GetByID(ownerID, uuid.New())
			Expect(err).To(Equal(income.ErrIncomeNotFound))
		})
	})

	Describe("ListByOwner", func() {
		It("should return only the owner's records, newest first", func() {
			older := newRecord(ownerID, "Older", "1.00")
			older.CreatedAt = time.Now().Add(-time.Hour)
			newer := newRecord(ownerID, "Newer", "2.00")
			foreign := newRecord(otherID, "Foreign", "3.00")

			Expect(repo.Create(older)).To(Succeed())
			Expect(repo.Create(newer)).To(Succeed())
			Expect(repo.Create(foreign)).To(Succeed())

			recs, err := repo.ListByOwner(ownerID)
			Expect(err).NotTo(HaveOccurred())
			Expect(recs).To(HaveLen(2))
			Expect(recs[0].NameOfRevenue).To(Equal("Newer"))
			Expect(recs[1].NameOfRevenue).To(Equal("Older"))
		})

		It("should return an empty slice when the owner has no records", func() {
			recs, err := repo.ListByOwner(ownerID)
			Expect(err).NotTo(HaveOccurred())
			Expect(recs).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		It("should persist changed fields and bump updated_at", func() {
			rec := newRecord(ownerID, "Freelance project", "850.50")
			Expect(repo.Create(rec)).To(Succeed())
			before := rec.UpdatedAt

			rec.NameOfRevenue = "Freelance retainer"
			rec.Amount = decimal.RequireFromString("900.00")
			Expect(repo.Update(rec)).To(Succeed())

			got, err := repo.GetByID(ownerID, rec.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.NameOfRevenue).To(Equal("Freelance retainer"))
			Expect(got.Amount.Equal(decimal.RequireFromString("900.00"))).To(BeTrue())
			Expect(got.UpdatedAt).To(BeTemporally(">=", before))
		})
	})

	Describe("Delete", func() {
		It("should remove the owner's record", func() {
			rec := newRecord(ownerID, "One-off bonus", "500.00")
			Expect(repo.Create(rec)).To(Succeed())

			Expect(repo.Delete(ownerID, rec.ID)).To(Succeed())

			_, err := repo.GetByID(ownerID, rec.ID)
			Expect(err).To(Equal(income.ErrIncomeNotFound))
		})

		It("should refuse to delete across owners", func() {
			rec := newRecord(ownerID, "One-off bonus", "500.00")
			Expect(repo.Create(rec)).To(Succeed())

			err := repo.Delete(otherID, rec.ID)
			Expect(err).To(Equal(income.ErrIncomeNotFound))

			_, err = repo.GetByID(ownerID, rec.ID)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
