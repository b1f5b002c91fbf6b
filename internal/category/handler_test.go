package category_test

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
	"github.com/frahmantamala/budget-tracker/internal/transport"
)

var _ = Describe("Category Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    category.RepositoryAPI
		service *category.Service
		router  *chi.Mux
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

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&category.Category{})
		Expect(err).NotTo(HaveOccurred())

		repo = categoryPostgres.NewCategoryRepository(db)
		service = category.NewService(repo, slogger)
		handler := category.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		router = chi.NewRouter()
		router.Route("/api/categories", func(r chi.Router) {
			r.Get("/", handler.GetCategories)
			r.Post("/", handler.CreateCategory)
			r.Get("/{id}", handler.GetCategory)
			r.Put("/{id}", handler.UpdateCategory)
			r.Delete("/{id}", handler.DeleteCategory)
		})
	})

	It("creates a category and lists it", func() {
		w := doJSON(http.MethodPost, "/api/categories", map[string]any{
			"name":         "Groceries",
			"monthlyLimit": 500,
		})
		Expect(w.Code).To(Equal(http.StatusOK))

		var created category.Category
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		Expect(created.ID).NotTo(BeZero())
		Expect(created.Color).To(Equal("#6b7280"))

		w = doJSON(http.MethodGet, "/api/categories", nil)
		Expect(w.Code).To(Equal(http.StatusOK))

		var list []category.Category
		Expect(json.NewDecoder(w.Body).Decode(&list)).To(Succeed())
		Expect(list).To(HaveLen(1))
		Expect(list[0].Name).To(Equal("Groceries"))
	})

	It("returns an empty array when no categories exist", func() {
		w := doJSON(http.MethodGet, "/api/categories", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON("[]"))
	})

	It("rejects a duplicate name with 400 and an empty body", func() {
		w := doJSON(http.MethodPost, "/api/categories", map[string]any{"name": "Rent"})
		Expect(w.Code).To(Equal(http.StatusOK))

		w = doJSON(http.MethodPost, "/api/categories", map[string]any{"name": "Rent"})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.Len()).To(BeZero())
	})

	It("returns 404 with an empty body for an unknown id", func() {
		w := doJSON(http.MethodGet, "/api/categories/999", nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.Len()).To(BeZero())
	})

	It("updates only the fields present in the request", func() {
		w := doJSON(http.MethodPost, "/api/categories", map[string]any{
			"name":         "Utilities",
			"monthlyLimit": 200,
			"description":  "Electricity and water",
		})
		var created category.Category
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())

		w = doJSON(http.MethodPut, "/api/categories/1", map[string]any{
			"monthlyLimit": 250,
		})
		Expect(w.Code).To(Equal(http.StatusOK))

		var updated category.Category
		Expect(json.NewDecoder(w.Body).Decode(&updated)).To(Succeed())
		Expect(updated.Name).To(Equal("Utilities"))
		Expect(updated.Description).To(Equal("Electricity and water"))
		Expect(updated.MonthlyLimit.String()).To(Equal("250"))
	})

	It("returns 404 when updating an unknown id", func() {
		w := doJSON(http.MethodPut, "/api/categories/123", map[string]any{"name": "x"})
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.Len()).To(BeZero())
	})

	It("deletes a category and then 404s on it", func() {
		doJSON(http.MethodPost, "/api/categories", map[string]any{"name": "Transport"})

		w := doJSON(http.MethodDelete, "/api/categories/1", nil)
		Expect(w.Code).To(Equal(http.StatusNoContent))

		w = doJSON(http.MethodDelete, "/api/categories/1", nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
