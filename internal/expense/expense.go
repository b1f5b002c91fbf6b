package expense

import (
	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/internal/core/datatypes"
	"github.com/shopspring/decimal"
)

// Expense is a single dated monetary entry assigned to exactly one
// category. The category is an owning reference by id; name and color are
// read through the association only when shaping responses.
type Expense struct {
	ID          int64             `json:"id" gorm:"primaryKey"`
	Amount      decimal.Decimal   `json:"amount" gorm:"type:numeric;not null"`
	Description string            `json:"description"`
	Date        datatypes.Date    `json:"date" gorm:"not null"`
	CategoryID  int64             `json:"category_id" gorm:"column:category_id;not null"`
	Category    category.Category `json:"-" gorm:"foreignKey:CategoryID"`
}

func (Expense) TableName() string {
	return "expenses"
}

// ToDTO flattens the expense and its category reference into the wire
// shape. The Category association must be loaded.
func (e *Expense) ToDTO() ExpenseDTO {
	return ExpenseDTO{
		ID:            e.ID,
		Amount:        e.Amount,
		Description:   e.Description,
		Date:          e.Date,
		CategoryID:    e.CategoryID,
		CategoryName:  e.Category.Name,
		CategoryColor: e.Category.Color,
	}
}

func ToDTOSlice(expenses []*Expense) []ExpenseDTO {
	dtos := make([]ExpenseDTO, len(expenses))
	for i, e := range expenses {
		dtos[i] = e.ToDTO()
	}
	return dtos
}
