package category

import (
	"github.com/shopspring/decimal"
)

// DefaultColor is the gray assigned to categories created without one.
const DefaultColor = "#6b7280"

// Category is a named spending bucket with a monthly limit. A zero
// MonthlyLimit means the category is not tracked against a limit.
type Category struct {
	ID           int64           `json:"id" gorm:"primaryKey"`
	Name         string          `json:"name" gorm:"uniqueIndex;not null"`
	MonthlyLimit decimal.Decimal `json:"monthlyLimit" gorm:"column:monthly_limit;type:numeric;not null"`
	Color        string          `json:"color" gorm:"type:varchar(7)"`
	Description  string          `json:"description"`
}

func (Category) TableName() string {
	return "categories"
}

// HasLimit reports whether the category tracks a spending limit.
func (c *Category) HasLimit() bool {
	return c.MonthlyLimit.IsPositive()
}

// NewCategory builds a category from a create request, filling defaults
// for absent fields.
func NewCategory(dto CategoryDTO) *Category {
	c := &Category{
		MonthlyLimit: decimal.Zero,
		Color:        DefaultColor,
		Description:  "",
	}
	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.MonthlyLimit != nil {
		c.MonthlyLimit = *dto.MonthlyLimit
	}
	if dto.Color != nil {
		c.Color = *dto.Color
	}
	if dto.Description != nil {
		c.Description = *dto.Description
	}
	return c
}

// ApplyUpdate overwrites only the fields present in the request. Absent
// keys preserve the stored value, which is why every field is a pointer.
func (c *Category) ApplyUpdate(dto CategoryDTO) {
	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.MonthlyLimit != nil {
		c.MonthlyLimit = *dto.MonthlyLimit
	}
	if dto.Color != nil {
		c.Color = *dto.Color
	}
	if dto.Description != nil {
		c.Description = *dto.Description
	}
}
