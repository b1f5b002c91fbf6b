package summary_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/internal/expense"
	"github.com/frahmantamala/budget-tracker/internal/summary"
	"github.com/frahmantamala/budget-tracker/internal/transport"
)

var _ = Describe("Summary Handler", func() {
	var (
		handler  *summary.Handler
		expenses *mockExpenseReader
	)

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		categories := &mockCategoryReader{
			categories: []*category.Category{cat(1, "Groceries", "500")},
		}
		expenses = &mockExpenseReader{
			expenses: []*expense.Expense{exp(1, "400", "2024-12-15")},
		}
		clock := fixedClock{time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)}
		service := summary.NewService(categories, expenses, clock, slogger)
		handler = summary.NewHandler(&transport.BaseHandler{Logger: slogger}, service)
	})

	It("serves the summary for an explicit month", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/summary?month=2024-12", nil)
		w := httptest.NewRecorder()

		handler.GetSummary(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var report summary.MonthlySummary
		Expect(json.NewDecoder(w.Body).Decode(&report)).To(Succeed())
		Expect(report.Year).To(Equal(2024))
		Expect(report.Month).To(Equal(12))
		Expect(report.CategoryBreakdown).To(HaveLen(1))
		Expect(report.CategoryBreakdown[0].PercentUsed).To(BeNumerically("==", 80.00))
		Expect(report.CategoryBreakdown[0].Status).To(Equal(summary.StatusWarning))
	})

	It("serializes decimals as JSON numbers", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/summary?month=2024-12", nil)
		w := httptest.NewRecorder()

		handler.GetSummary(w, req)

		var raw map[string]json.RawMessage
		Expect(json.Unmarshal(w.Body.Bytes(), &raw)).To(Succeed())
		Expect(string(raw["totalSpent"])).To(Equal("400"))
		Expect(string(raw["totalLimit"])).To(Equal("500"))
	})

	It("defaults to the clock's current month when no month is given", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
		w := httptest.NewRecorder()

		handler.GetSummary(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var report summary.MonthlySummary
		Expect(json.NewDecoder(w.Body).Decode(&report)).To(Succeed())
		Expect(report.Year).To(Equal(2025))
		Expect(report.Month).To(Equal(3))
		Expect(expenses.gotYear).To(Equal(2025))
		Expect(expenses.gotMonth).To(Equal(time.March))
	})

	It("rejects a malformed month with 400 and an empty body", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/summary?month=december", nil)
		w := httptest.NewRecorder()

		handler.GetSummary(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.Len()).To(BeZero())
	})
})
