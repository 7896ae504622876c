package v1

import (
	"github.com/kasku/backend/internal/dashboard"
	"github.com/shopspring/decimal"
)

type Dashboard struct {
	dashboard.Totals
	SavingsRate       decimal.Decimal             `json:"savingsRate" example:"32.5" swaggertype:"string"`     // Balance as a percentage of income
	HealthText        string                      `json:"healthText" example:"Kesehatan keuangan sangat baik"` // Assessment of the savings rate
	TotalSavings      decimal.Decimal             `json:"totalSavings" example:"3000000" swaggertype:"string"` // Larger of the saved target amounts and the balance
	ExpenseByCategory []dashboard.CategoryExpense `json:"expenseByCategory"`                                   // Expenses per category, largest first
	Level             dashboard.Level             `json:"level"`                                               // Savings stage reached with the total savings
	Series            []dashboard.Day             `json:"series"`                                              // Savings per day for the last 30 days
	Last7DaysGrowth   decimal.Decimal             `json:"last7DaysGrowth" swaggertype:"string"`                // Savings in the last 7 days
	Last30DaysGrowth  decimal.Decimal             `json:"last30DaysGrowth" swaggertype:"string"`               // Savings in the last 30 days
	MomentumChange    decimal.Decimal             `json:"momentumChange" example:"25" swaggertype:"string"`    // Change of the last week against the first week of the series, in percent
	Momentum          dashboard.Momentum          `json:"momentum" example:"accelerating"`                     // Direction of the trend
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                // Data for the dashboard
	Error *string    `json:"error" example:"month and year must be set together"` // The error, if any occurred
}
