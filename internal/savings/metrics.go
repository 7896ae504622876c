// Package savings computes progress, pace and health of savings targets
// from their allocation history. All functions are pure and take the
// current time as an argument.
package savings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Speed classifies the recent saving pace against the plan.
type Speed string

const (
	SpeedFast   Speed = "fast"
	SpeedNormal Speed = "normal"
	SpeedSlow   Speed = "slow"
)

// Status is the health of a target, derived from its ETA.
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// AverageWindow is the number of trailing months the average monthly
// saving is computed over.
const AverageWindow = 3

var (
	hundred = decimal.NewFromInt(100)

	normalPace  = decimal.NewFromFloat(0.7)
	onTrackPace = decimal.NewFromFloat(0.8)
)

// Plan is the part of a savings target the metrics depend on.
type Plan struct {
	TargetAmount        decimal.Decimal
	CurrentAmount       decimal.Decimal
	MonthlyContribution decimal.Decimal
}

// Contribution is a single allocation to a target.
type Contribution struct {
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// Metrics describes where a target stands.
type Metrics struct {
	ProgressPercent  decimal.Decimal `json:"progressPercent"`
	RemainingAmount  decimal.Decimal `json:"remainingAmount"`
	AvgMonthlySaving decimal.Decimal `json:"avgMonthlySaving"`
	ETAInMonths      ETA             `json:"etaInMonths"`
	DoNothingETA     ETA             `json:"doNothingETA"`
	SpeedStatus      Speed           `json:"speedStatus"`
	TargetStatus     Status          `json:"targetStatus"`
	IsOnTrack        bool            `json:"isOnTrack"`
}

// Calculate computes the metrics of a plan from its contributions.
func Calculate(plan Plan, contributions []Contribution, now time.Time) Metrics {
	remaining := RemainingAmount(plan.CurrentAmount, plan.TargetAmount)
	recent := RecentTotal(contributions, now)

	// The ETA and the classifications use the window total so that no
	// precision is lost by dividing the average first
	window := decimal.NewFromInt(AverageWindow)
	planned := plan.MonthlyContribution.Mul(window)

	eta := Months(remaining.Mul(window), recent)

	return Metrics{
		ProgressPercent:  ProgressPercent(plan.CurrentAmount, plan.TargetAmount),
		RemainingAmount:  remaining,
		AvgMonthlySaving: recent.Div(window),
		ETAInMonths:      eta,
		DoNothingETA:     Months(remaining, plan.MonthlyContribution),
		SpeedStatus:      SpeedFor(recent, planned),
		TargetStatus:     StatusFor(eta),
		IsOnTrack:        recent.GreaterThanOrEqual(planned.Mul(onTrackPace)),
	}
}

// ProgressPercent is current/target as a percentage, clamped to [0, 100].
// A target amount that is not positive has no progress.
func ProgressPercent(current, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}

	p := current.Div(target).Mul(hundred).Round(2)
	if p.GreaterThan(hundred) {
		return hundred
	}

	if p.IsNegative() {
		return decimal.Zero
	}

	return p
}

// RemainingAmount is what is still missing to reach the target, never negative.
func RemainingAmount(current, target decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, target.Sub(current))
}

// RecentTotal sums the contributions made in the trailing AverageWindow months.
func RecentTotal(contributions []Contribution, now time.Time) decimal.Decimal {
	return sumSince(contributions, now.AddDate(0, -AverageWindow, 0))
}

// AvgMonthlySaving is the recent total spread evenly over the window,
// regardless of how many months actually had contributions.
func AvgMonthlySaving(contributions []Contribution, now time.Time) decimal.Decimal {
	return RecentTotal(contributions, now).Div(decimal.NewFromInt(AverageWindow))
}

// CurrentMonthAllocation sums the contributions since the first day of the
// month that now falls in.
func CurrentMonthAllocation(contributions []Contribution, now time.Time) decimal.Decimal {
	return sumSince(contributions, time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
}

// SpeedFor compares the actual against the planned saving. Both values
// must cover the same period. Without a plan, the speed is normal.
func SpeedFor(actual, planned decimal.Decimal) Speed {
	if !planned.IsPositive() {
		return SpeedNormal
	}

	if actual.GreaterThanOrEqual(planned) {
		return SpeedFast
	}

	if actual.GreaterThanOrEqual(planned.Mul(normalPace)) {
		return SpeedNormal
	}

	return SpeedSlow
}

// StatusFor classifies an ETA.
func StatusFor(eta ETA) Status {
	switch {
	case eta.IsInfinite():
		return StatusCritical
	case eta <= 12:
		return StatusHealthy
	case eta <= 18:
		return StatusWarning
	default:
		return StatusCritical
	}
}

func sumSince(contributions []Contribution, since time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range contributions {
		if !c.CreatedAt.Before(since) {
			sum = sum.Add(c.Amount)
		}
	}

	return sum
}
