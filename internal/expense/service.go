package expense

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/internal/core/datatypes"
)

// Repository defines the data access methods for expenses.
type Repository interface {
	GetAll() ([]*Expense, error)
	GetByMonth(year int, month time.Month) ([]*Expense, error)
	GetByID(id int64) (*Expense, error)
	Create(expense *Expense) error
	Update(expense *Expense) error
	Delete(id int64) error
}

// CategoryReader resolves category references at create/update time.
type CategoryReader interface {
	GetByID(id int64) (*category.Category, error)
}

type Service struct {
	repo       Repository
	categories CategoryReader
	logger     *slog.Logger
}

func NewService(repo Repository, categories CategoryReader, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     logger,
	}
}

// List returns all expenses unfiltered.
func (s *Service) List() ([]*Expense, error) {
	expenses, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err)
		return nil, err
	}
	return expenses, nil
}

// ListByMonth returns the expenses whose date falls in the given calendar
// month, ordered by date descending.
func (s *Service) ListByMonth(year int, month time.Month) ([]*Expense, error) {
	expenses, err := s.repo.GetByMonth(year, month)
	if err != nil {
		s.logger.Error("failed to list expenses by month", "error", err, "year", year, "month", int(month))
		return nil, err
	}
	return expenses, nil
}

func (s *Service) GetByID(id int64) (*Expense, error) {
	exp, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get expense", "error", err, "expense_id", id)
		return nil, err
	}
	if exp == nil {
		return nil, internal.ErrExpenseNotFound
	}
	return exp, nil
}

// Create stores a new expense. The referenced category must exist and the
// date must be an ISO calendar date.
func (s *Service) Create(req CreateExpenseRequest) (*Expense, error) {
	if req.Amount == nil || req.Description == nil || req.Date == nil || req.CategoryID == nil {
		return nil, internal.NewValidationError("amount, description, date and categoryId are required", internal.ErrCodeValidationFailed)
	}

	date, err := datatypes.ParseDate(*req.Date)
	if err != nil {
		s.logger.Warn("invalid expense date", "date", *req.Date)
		return nil, internal.ErrInvalidDate
	}

	cat, err := s.categories.GetByID(*req.CategoryID)
	if err != nil {
		s.logger.Error("failed to resolve category", "error", err, "category_id", *req.CategoryID)
		return nil, err
	}
	if cat == nil {
		s.logger.Warn("expense rejected, unknown category", "category_id", *req.CategoryID)
		return nil, internal.ErrUnknownCategory
	}

	exp := &Expense{
		Amount:      *req.Amount,
		Description: *req.Description,
		Date:        date,
		CategoryID:  cat.ID,
		Category:    *cat,
	}

	if err := s.repo.Create(exp); err != nil {
		s.logger.Error("failed to create expense", "error", err)
		return nil, err
	}

	s.logger.Info("expense created",
		"expense_id", exp.ID,
		"amount", exp.Amount,
		"category_id", exp.CategoryID)
	return exp, nil
}

// Update applies a partial update. A categoryId that does not resolve is
// silently ignored and the prior category kept; this mirrors the existing
// client contract.
func (s *Service) Update(id int64, req CreateExpenseRequest) (*Expense, error) {
	exp, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to load expense for update", "error", err, "expense_id", id)
		return nil, err
	}
	if exp == nil {
		return nil, internal.ErrExpenseNotFound
	}

	if req.Amount != nil {
		exp.Amount = *req.Amount
	}
	if req.Description != nil {
		exp.Description = *req.Description
	}
	if req.Date != nil {
		date, err := datatypes.ParseDate(*req.Date)
		if err != nil {
			s.logger.Warn("invalid expense date on update", "date", *req.Date, "expense_id", id)
			return nil, internal.ErrInvalidDate
		}
		exp.Date = date
	}
	if req.CategoryID != nil {
		cat, err := s.categories.GetByID(*req.CategoryID)
		if err != nil {
			s.logger.Error("failed to resolve category on update", "error", err, "category_id", *req.CategoryID)
			return nil, err
		}
		if cat != nil {
			exp.CategoryID = cat.ID
			exp.Category = *cat
		} else {
			s.logger.Warn("ignoring unknown category on update",
				"expense_id", id, "category_id", *req.CategoryID)
		}
	}

	if err := s.repo.Update(exp); err != nil {
		s.logger.Error("failed to update expense", "error", err, "expense_id", id)
		return nil, err
	}

	s.logger.Info("expense updated", "expense_id", exp.ID)
	return exp, nil
}

func (s *Service) Delete(id int64) error {
	exp, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to load expense for delete", "error", err, "expense_id", id)
		return err
	}
	if exp == nil {
		return internal.ErrExpenseNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete expense", "error", err, "expense_id", id)
		return err
	}

	s.logger.Info("expense deleted", "expense_id", id)
	return nil
}
