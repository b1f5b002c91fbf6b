package expense_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/go-chi/chi"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/budget-tracker/internal/category"
	categoryPostgres "github.com/frahmantamala/budget-tracker/internal/category/postgres"
	"github.com/frahmantamala/budget-tracker/internal/expense"
	expensePostgres "github.com/frahmantamala/budget-tracker/internal/expense/postgres"
	"github.com/frahmantamala/budget-tracker/internal/transport"
)

var _ = Describe("Expense Handler Integration", func() {
	var (
		db           *gorm.DB
		categoryRepo category.RepositoryAPI
		router       *chi.Mux
		groceries    *category.Category
	)

	doJSON := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	createExpense := func(amount float64, date string, categoryID int64) expense.ExpenseDTO {
		w := doJSON(http.MethodPost, "/api/expenses", map[string]any{
			"amount":      amount,
			"description": "fixture",
			"date":        date,
			"categoryId":  categoryID,
		})
		Expect(w.Code).To(Equal(http.StatusOK))
		var dto expense.ExpenseDTO
		Expect(json.NewDecoder(w.Body).Decode(&dto)).To(Succeed())
		return dto
	}

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&category.Category{}, &expense.Expense{})
		Expect(err).NotTo(HaveOccurred())

		categoryRepo = categoryPostgres.NewCategoryRepository(db)
		expenseRepo := expensePostgres.NewExpenseRepository(db)
		service := expense.NewService(expenseRepo, categoryRepo, slogger)
		handler := expense.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		groceries = &category.Category{Name: "Groceries", Color: "#22c55e"}
		Expect(categoryRepo.Create(groceries)).To(Succeed())

		router = chi.NewRouter()
		router.Route("/api/expenses", func(r chi.Router) {
			r.Get("/", handler.GetExpenses)
			r.Post("/", handler.CreateExpense)
			r.Get("/{id}", handler.GetExpense)
			r.Put("/{id}", handler.UpdateExpense)
			r.Delete("/{id}", handler.DeleteExpense)
		})
	})

	It("creates an expense and echoes the denormalized category", func() {
		dto := createExpense(42.5, "2024-12-15", groceries.ID)

		Expect(dto.ID).NotTo(BeZero())
		Expect(dto.CategoryID).To(Equal(groceries.ID))
		Expect(dto.CategoryName).To(Equal("Groceries"))
		Expect(dto.CategoryColor).To(Equal("#22c55e"))
		Expect(dto.Date.String()).To(Equal("2024-12-15"))
	})

	It("rejects an unknown category with 400 and an empty body", func() {
		w := doJSON(http.MethodPost, "/api/expenses", map[string]any{
			"amount":      10,
			"description": "x",
			"date":        "2024-12-15",
			"categoryId":  999,
		})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.Len()).To(BeZero())
	})

	It("filters by month in date-descending order", func() {
		createExpense(150, "2024-12-10", groceries.ID)
		createExpense(2000, "2024-12-01", groceries.ID)
		createExpense(200, "2024-11-15", groceries.ID)

		w := doJSON(http.MethodGet, "/api/expenses?month=2024-12", nil)
		Expect(w.Code).To(Equal(http.StatusOK))

		var list []expense.ExpenseDTO
		Expect(json.NewDecoder(w.Body).Decode(&list)).To(Succeed())
		Expect(list).To(HaveLen(2))
		Expect(list[0].Date.String()).To(Equal("2024-12-10"))
		Expect(list[1].Date.String()).To(Equal("2024-12-01"))
	})

	It("lists everything when no month filter is given", func() {
		createExpense(150, "2024-12-10", groceries.ID)
		createExpense(200, "2024-11-15", groceries.ID)

		w := doJSON(http.MethodGet, "/api/expenses", nil)
		Expect(w.Code).To(Equal(http.StatusOK))

		var list []expense.ExpenseDTO
		Expect(json.NewDecoder(w.Body).Decode(&list)).To(Succeed())
		Expect(list).To(HaveLen(2))
	})

	It("rejects a malformed month with 400 and an empty body", func() {
		w := doJSON(http.MethodGet, "/api/expenses?month=12-2024", nil)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.Len()).To(BeZero())
	})

	It("returns 404 with an empty body for an unknown id", func() {
		w := doJSON(http.MethodGet, "/api/expenses/321", nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.Len()).To(BeZero())
	})

	It("updates partially and ignores an unknown categoryId", func() {
		dto := createExpense(42.5, "2024-12-15", groceries.ID)

		w := doJSON(http.MethodPut, "/api/expenses/1", map[string]any{
			"amount":     60,
			"categoryId": 999,
		})
		Expect(w.Code).To(Equal(http.StatusOK))

		var updated expense.ExpenseDTO
		Expect(json.NewDecoder(w.Body).Decode(&updated)).To(Succeed())
		Expect(updated.Amount.String()).To(Equal("60"))
		Expect(updated.Description).To(Equal("fixture"))
		Expect(updated.CategoryID).To(Equal(dto.CategoryID))
	})

	It("deletes an expense and then 404s on it", func() {
		createExpense(10, "2024-12-02", groceries.ID)

		w := doJSON(http.MethodDelete, "/api/expenses/1", nil)
		Expect(w.Code).To(Equal(http.StatusNoContent))

		w = doJSON(http.MethodDelete, "/api/expenses/1", nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
