// Package dashboard aggregates transactions into totals, a daily savings
// series, a momentum trend and a savings stage.
package dashboard

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var hundred = decimal.NewFromInt(100)

// Totals are the sums of a set of transactions.
type Totals struct {
	Income  decimal.Decimal `json:"totalIncome"`
	Expense decimal.Decimal `json:"totalExpense"`
	Balance decimal.Decimal `json:"balance"`
}

// Sum adds up the movements by direction.
func Sum(movements []Movement) Totals {
	var t Totals
	for _, m := range movements {
		if m.Income {
			t.Income = t.Income.Add(m.Amount)
		} else {
			t.Expense = t.Expense.Add(m.Amount)
		}
	}

	t.Balance = t.Income.Sub(t.Expense)
	return t
}

// SavingsRate is the balance as a percentage of income, 0 without income.
func SavingsRate(income, expense decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}

	return income.Sub(expense).Div(income).Mul(hundred).Round(2)
}

// HealthText describes a savings rate.
func HealthText(rate decimal.Decimal) string {
	switch {
	case rate.GreaterThanOrEqual(decimal.NewFromInt(30)):
		return "Kesehatan keuangan sangat baik"
	case rate.GreaterThanOrEqual(decimal.NewFromInt(20)):
		return "Kesehatan keuangan baik"
	case rate.GreaterThanOrEqual(decimal.NewFromInt(10)):
		return "Kesehatan keuangan cukup"
	default:
		return "Perlu evaluasi pengeluaran"
	}
}

// TotalSavings is the larger of what has been put into savings targets
// and the net balance, never negative.
func TotalSavings(targets, balance decimal.Decimal) decimal.Decimal {
	return decimal.Max(targets, balance, decimal.Zero)
}

// CategoryExpense is the expense total of one category.
type CategoryExpense struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Color    string          `json:"color"`
	Icon     string          `json:"icon"`
}

// UncategorizedName is shown for transactions whose category is not known.
const UncategorizedName = "Lainnya"

// Uncategorized is the expense entry for transactions whose category is
// not known.
func Uncategorized(amount decimal.Decimal) CategoryExpense {
	return CategoryExpense{
		Category: UncategorizedName,
		Amount:   amount,
		Color:    "#6b7280",
		Icon:     "📦",
	}
}

// SortExpenses orders the expenses by amount, largest first. Equal amounts
// keep their order.
func SortExpenses(expenses []CategoryExpense) {
	slices.SortStableFunc(expenses, func(a, b CategoryExpense) int {
		return b.Amount.Cmp(a.Amount)
	})
}
