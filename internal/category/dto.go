package category

import "github.com/shopspring/decimal"

// CategoryDTO is the create/update request payload. Fields are pointers so
// the service can tell "key omitted" apart from "key set to a zero value";
// clients omit keys they do not want to touch.
type CategoryDTO struct {
	Name         *string          `json:"name"`
	MonthlyLimit *decimal.Decimal `json:"monthlyLimit"`
	Color        *string          `json:"color"`
	Description  *string          `json:"description"`
}
