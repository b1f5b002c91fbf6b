package summary

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/internal/expense"
	"github.com/shopspring/decimal"
)

// Clock abstracts the wall clock so the default-month branch is testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }

// CategoryReader supplies the full category set for a report.
type CategoryReader interface {
	GetAll() ([]*category.Category, error)
}

// ExpenseReader supplies one month of expenses, reusing the same month
// filter that backs the expense list endpoint.
type ExpenseReader interface {
	GetByMonth(year int, month time.Month) ([]*expense.Expense, error)
}

// Service builds monthly summary reports from a snapshot of categories
// and the month's expenses. It carries no cross-request state.
type Service struct {
	categories CategoryReader
	expenses   ExpenseReader
	clock      Clock
	logger     *slog.Logger
}

func NewService(categories CategoryReader, expenses ExpenseReader, clock Clock, logger *slog.Logger) *Service {
	if clock == nil {
		clock = SystemClock()
	}
	return &Service{
		categories: categories,
		expenses:   expenses,
		clock:      clock,
		logger:     logger,
	}
}

// CurrentMonth returns the year and month of the injected clock, used
// when a request omits the month parameter.
func (s *Service) CurrentMonth() (int, time.Month) {
	now := s.clock.Now()
	return now.Year(), now.Month()
}

// Summarize computes the report for one calendar month: exact decimal
// totals, a per-category aggregate built in a single pass over the
// month's expenses, and a utilization percentage with status per
// category. Breakdown entries follow category insertion order.
func (s *Service) Summarize(year int, month time.Month) (*MonthlySummary, error) {
	categories, err := s.categories.GetAll()
	if err != nil {
		s.logger.Error("summary: failed to load categories", "error", err)
		return nil, err
	}

	expenses, err := s.expenses.GetByMonth(year, month)
	if err != nil {
		s.logger.Error("summary: failed to load expenses", "error", err, "year", year, "month", int(month))
		return nil, err
	}

	totalSpent := decimal.Zero
	spentByCategory := make(map[int64]decimal.Decimal, len(categories))
	for _, e := range expenses {
		totalSpent = totalSpent.Add(e.Amount)
		spentByCategory[e.CategoryID] = spentByCategory[e.CategoryID].Add(e.Amount)
	}

	totalLimit := decimal.Zero
	breakdown := make([]CategorySummary, 0, len(categories))
	for _, c := range categories {
		totalLimit = totalLimit.Add(c.MonthlyLimit)

		spent, ok := spentByCategory[c.ID]
		if !ok {
			spent = decimal.Zero
		}

		percentUsed := percentOfLimit(spent, c.MonthlyLimit)
		breakdown = append(breakdown, CategorySummary{
			CategoryID:    c.ID,
			CategoryName:  c.Name,
			CategoryColor: c.Color,
			Spent:         spent,
			Limit:         c.MonthlyLimit,
			PercentUsed:   percentUsed,
			Status:        statusFor(percentUsed, c.MonthlyLimit),
		})
	}

	s.logger.Info("summary computed",
		"year", year,
		"month", int(month),
		"categories", len(categories),
		"expenses", len(expenses))

	return &MonthlySummary{
		Year:              year,
		Month:             int(month),
		TotalSpent:        totalSpent,
		TotalLimit:        totalLimit,
		CategoryBreakdown: breakdown,
	}, nil
}

// percentOfLimit computes (spent*100)/limit in exact decimal, rounded
// half-up to two fractional digits, converting to float only at the end.
// A zero limit means the category is untracked and yields 0.
func percentOfLimit(spent, limit decimal.Decimal) float64 {
	if limit.IsZero() {
		return 0.0
	}
	return spent.Mul(decimal.NewFromInt(100)).DivRound(limit, 2).InexactFloat64()
}

// statusFor applies the threshold rules; exactly 100% is still a warning.
func statusFor(percentUsed float64, limit decimal.Decimal) Status {
	if limit.IsZero() {
		return StatusOK
	}
	switch {
	case percentUsed > 100:
		return StatusExceeded
	case percentUsed >= 80:
		return StatusWarning
	default:
		return StatusOK
	}
}
