package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeriesDays is the length of the daily savings series.
const SeriesDays = 30

// Momentum is the direction of the savings trend.
type Momentum string

const (
	MomentumAccelerating Momentum = "accelerating"
	MomentumStable       Momentum = "stable"
	MomentumSlowing      Momentum = "slowing"
)

// momentumThreshold is the change in percent that has to be exceeded
// for the trend to count as accelerating or slowing.
var momentumThreshold = decimal.NewFromInt(20)

// Movement is a transaction reduced to what the dashboard needs.
type Movement struct {
	Date   time.Time
	Amount decimal.Decimal
	Income bool
}

// Day is one entry of the daily savings series.
type Day struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Savings decimal.Decimal `json:"savings"` // income minus expense, at least 0
}

// DailySeries buckets the movements by calendar day for the SeriesDays
// days ending with the day of now, oldest first.
func DailySeries(movements []Movement, now time.Time) []Day {
	now = now.In(time.UTC)
	last := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	first := last.AddDate(0, 0, -(SeriesDays - 1))

	series := make([]Day, SeriesDays)
	for i := range series {
		series[i].Date = first.AddDate(0, 0, i).Format(time.DateOnly)
	}

	for _, m := range movements {
		d := m.Date.In(time.UTC)
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		if day.Before(first) || day.After(last) {
			continue
		}

		i := int(day.Sub(first).Hours() / 24)
		if m.Income {
			series[i].Income = series[i].Income.Add(m.Amount)
		} else {
			series[i].Expense = series[i].Expense.Add(m.Amount)
		}
	}

	for i := range series {
		series[i].Savings = decimal.Max(decimal.Zero, series[i].Income.Sub(series[i].Expense))
	}

	return series
}

// Growth sums the savings of the last 7 days and of the whole series.
func Growth(series []Day) (last7, last30 decimal.Decimal) {
	last7 = sumSavings(series[max(0, len(series)-7):])
	last30 = sumSavings(series)
	return last7, last30
}

// MomentumOf compares the savings of the last 7 days with the first 7
// days of the series. The change is in percent. Without savings in the
// first week, any recent saving counts as a 100% increase.
func MomentumOf(series []Day) (decimal.Decimal, Momentum) {
	recent := sumSavings(series[max(0, len(series)-7):])
	early := sumSavings(series[:min(7, len(series))])

	var change decimal.Decimal
	switch {
	case early.IsPositive():
		change = recent.Sub(early).Div(early).Mul(hundred).Round(2)
	case recent.IsPositive():
		change = hundred
	default:
		change = decimal.Zero
	}

	return change, Classify(change)
}

// Classify turns a change in percent into a momentum. Exactly ±20% is stable.
func Classify(change decimal.Decimal) Momentum {
	switch {
	case change.GreaterThan(momentumThreshold):
		return MomentumAccelerating
	case change.LessThan(momentumThreshold.Neg()):
		return MomentumSlowing
	default:
		return MomentumStable
	}
}

func sumSavings(days []Day) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range days {
		sum = sum.Add(d.Savings)
	}

	return sum
}
