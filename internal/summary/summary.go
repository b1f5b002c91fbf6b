package summary

import "github.com/shopspring/decimal"

// Status classifies how a category is tracking against its monthly limit.
// The constants are wire values.
type Status string

const (
	StatusOK       Status = "ok"
	StatusWarning  Status = "warning"
	StatusExceeded Status = "exceeded"
)

// CategorySummary is one breakdown entry of a monthly report. Spent and
// Limit stay exact decimals; only PercentUsed is a float.
type CategorySummary struct {
	CategoryID    int64           `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	CategoryColor string          `json:"categoryColor"`
	Spent         decimal.Decimal `json:"spent"`
	Limit         decimal.Decimal `json:"limit"`
	PercentUsed   float64         `json:"percentUsed"`
	Status        Status          `json:"status"`
}

// MonthlySummary is the derived view for one calendar month. Every
// existing category appears in the breakdown, including those without
// expenses in the month.
type MonthlySummary struct {
	Year              int               `json:"year"`
	Month             int               `json:"month"`
	TotalSpent        decimal.Decimal   `json:"totalSpent"`
	TotalLimit        decimal.Decimal   `json:"totalLimit"`
	CategoryBreakdown []CategorySummary `json:"categoryBreakdown"`
}
