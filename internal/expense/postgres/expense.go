package postgres

import (
	"time"

	"github.com/frahmantamala/budget-tracker/internal/expense"
	"gorm.io/gorm"
)

// ExpenseRepository implements the expense.Repository interface using GORM
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) GetAll() ([]*expense.Expense, error) {
	var expenses []*expense.Expense
	err := r.db.Preload("Category").
		Order("id ASC").
		Find(&expenses).Error
	return expenses, err
}

// GetByMonth returns the expenses of one calendar month, newest first.
// The half-open date range keeps the query portable across postgres and
// sqlite. This is the month filter the summary engine shares.
func (r *ExpenseRepository) GetByMonth(year int, month time.Month) ([]*expense.Expense, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var expenses []*expense.Expense
	err := r.db.Preload("Category").
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) GetByID(id int64) (*expense.Expense, error) {
	var exp expense.Expense
	err := r.db.Preload("Category").Where("id = ?", id).First(&exp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &exp, nil
}

func (r *ExpenseRepository) Create(exp *expense.Expense) error {
	// Omit the association so gorm does not try to upsert the category.
	return r.db.Omit("Category").Create(exp).Error
}

func (r *ExpenseRepository) Update(exp *expense.Expense) error {
	return r.db.Omit("Category").Save(exp).Error
}

func (r *ExpenseRepository) Delete(id int64) error {
	return r.db.Delete(&expense.Expense{}, id).Error
}
