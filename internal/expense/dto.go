package expense

import (
	"github.com/frahmantamala/budget-tracker/internal/core/datatypes"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest is the create/update payload. Pointer fields
// distinguish omitted keys from zero values so updates stay partial; the
// date travels as a "YYYY-MM-DD" string and is parsed in the service.
type CreateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Date        *string          `json:"date"`
	CategoryID  *int64           `json:"categoryId"`
}

// ExpenseDTO is the response shape, with category name and color
// denormalized from the referenced category.
type ExpenseDTO struct {
	ID            int64           `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          datatypes.Date  `json:"date"`
	CategoryID    int64           `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	CategoryColor string          `json:"categoryColor"`
}
