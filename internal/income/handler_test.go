package income_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/budgetwise/expense-tracker/internal/auth"
	incomeDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/income"
	userDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/user"
	"github.com/budgetwise/expense-tracker/internal/income"
	incomePostgres "github.com/budgetwise/expense-tracker/internal/income/postgres"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Income Handler Integration", func() {
	var (
		db      *gorm.DB
		service *income.Service
		handler *income.Handler
		router  *chi.Mux
		caller  *userDatamodel.User
	)

	// send routes the request through the router with the caller already
	// authenticated, the way the middleware would leave it.
	send := func(method, target string, body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, bytes.NewReader(body))
		req = req.WithContext(auth.ContextWithUser(req.Context(), caller))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&incomeDatamodel.Income{})
		Expect(err).NotTo(HaveOccurred())

		service = income.NewService(incomePostgres.NewIncomeRepository(db), slogger)
		handler = income.NewHandler(service)

		caller = &userDatamodel.User{
			ID:       uuid.New(),
			Email:    "jane@example.com",
			Username: "jane_doe",
			IsActive: true,
		}

		router = chi.NewRouter()
		router.Route("/user/income", func(r chi.Router) {
			r.Get("/", handler.List)
			r.Post("/", handler.Create)
			r.Get("/{incomeID}/", handler.Get)
			r.Put("/{incomeID}/", handler.Update)
			r.Delete("/{incomeID}/", handler.Delete)
		})
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("POST /user/income/", func() {
		It("should create a record and render the camelCase field names", func() {
			rr := send(http.MethodPost, "/user/income/", []byte(`{"nameOfRevenue":"Monthly salary","amount":"4200.00"}`))

			Expect(rr.Code).To(Equal(http.StatusCreated))

			var body map[string]any
			Expect(json.Unmarshal(rr.Body.Bytes(), &body)).To(Succeed())
			Expect(body).To(HaveKey("id"))
			Expect(body["nameOfRevenue"]).To(Equal("Monthly salary"))
			Expect(body["amount"]).To(Equal("4200.00"))
			Expect(body).To(HaveKey("created_at"))
			Expect(body).To(HaveKey("updated_at"))
		})

		It("should render validation failures in the validations envelope", func() {
			rr := send(http.MethodPost, "/user/income/", []byte(`{"amount":"4200.00"}`))

			Expect(rr.Code).To(Equal(http.StatusBadRequest))

			var body map[string]map[string]string
			Expect(json.Unmarshal(rr.Body.Bytes(), &body)).To(Succeed())
			Expect(body["validations"]).To(HaveKeyWithValue("nameOfRevenue", "This field is required."))
		})

		It("should refuse an unauthenticated request", func() {
			req := httptest.NewRequest(http.MethodPost, "/user/income/", bytes.NewReader([]byte(`{}`)))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			Expect(rr.Code).To(Equal(http.StatusUnauthorized))
			Expect(rr.Body.String()).To(ContainSubstring("Authentication credentials were not provided."))
		})
	})

	Describe("GET /user/income/{incomeID}/", func() {
		It("should render a missing record in the message envelope", func() {
			rr := send(http.MethodGet, "/user/income/"+uuid.NewString()+"/", nil)

			Expect(rr.Code).To(Equal(http.StatusNotFound))

			var body map[string]string
			Expect(json.Unmarshal(rr.Body.Bytes(), &body)).To(Succeed())
			Expect(body["message"]).To(Equal("Income not found"))
		})

		It("should flag a malformed id as a bad request", func() {
			rr := send(http.MethodGet, "/user/income/not-a-uuid/", nil)

			Expect(rr.Code).To(Equal(http.StatusBadRequest))

			var body map[string]string
			Expect(json.Unmarshal(rr.Body.Bytes(), &body)).To(Succeed())
			Expect(body["message"]).To(Equal("Invalid income ID"))
		})
	})

	Describe("full lifecycle", func() {
		It("should create, update, and delete through the wire", func() {
			rr := send(http.MethodPost, "/user/income/", []byte(`{"nameOfRevenue":"Freelance project","amount":"850.50"}`))
			Expect(rr.Code).To(Equal(http.StatusCreated))

			var created map[string]any
			Expect(json.Unmarshal(rr.Body.Bytes(), &created)).To(Succeed())
			id := created["id"].(string)

			rr = send(http.MethodPut, "/user/income/"+id+"/", []byte(`{"amount":"900.00"}`))
			Expect(rr.Code).To(Equal(http.StatusOK))

			var updated map[string]any
			Expect(json.Unmarshal(rr.Body.Bytes(), &updated)).To(Succeed())
			Expect(updated["nameOfRevenue"]).To(Equal("Freelance project"))
			Expect(updated["amount"]).To(Equal("900.00"))

			rr = send(http.MethodDelete, "/user/income/"+id+"/", nil)
			Expect(rr.Code).To(Equal(http.StatusOK))

			var deleted map[string]string
			Expect(json.Unmarshal(rr.Body.Bytes(), &deleted)).To(Succeed())
			Expect(deleted["message"]).To(Equal("Income deleted successfully!"))

			rr = send(http.MethodGet, "/user/income/"+id+"/", nil)
			Expect(rr.Code).To(Equal(http.StatusNotFound))
		})
	})
})
