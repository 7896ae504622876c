package savings

import (
	"github.com/shopspring/decimal"
)

// SummaryGapThreshold is the monthly shortfall across all targets above
// which the summary asks for a higher contribution.
var SummaryGapThreshold = decimal.NewFromInt(100_000)

// Snapshot is one target as seen by the summary.
type Snapshot struct {
	Plan         Plan
	Metrics      Metrics
	CurrentMonth decimal.Decimal // allocated in the current month
}

// Summary aggregates all targets of a user.
type Summary struct {
	Count              int             `json:"count"`
	ActiveCount        int             `json:"activeCount"` // targets that have not been reached yet
	TotalTargetAmount  decimal.Decimal `json:"totalTargetAmount"`
	TotalCurrentAmount decimal.Decimal `json:"totalCurrentAmount"`
	TotalRemaining     decimal.Decimal `json:"totalRemaining"`
	OverallProgress    decimal.Decimal `json:"overallProgress"`
	MonthlyTarget      decimal.Decimal `json:"monthlyTarget"`
	MonthlyActual      decimal.Decimal `json:"monthlyActual"`
	MonthlyAchievement decimal.Decimal `json:"monthlyAchievement"`
	HealthyCount       int             `json:"healthyCount"`
	WarningCount       int             `json:"warningCount"`
	CriticalCount      int             `json:"criticalCount"`
	AverageETA         ETA             `json:"averageEta"` // mean of the finite ETAs
	Insight            Copy            `json:"insight"`
}

// Summarize aggregates the snapshots.
func Summarize(snapshots []Snapshot) Summary {
	s := Summary{
		Count:      len(snapshots),
		AverageETA: Never,
	}

	finite := 0
	etaSum := ETA(0)

	for _, t := range snapshots {
		s.TotalTargetAmount = s.TotalTargetAmount.Add(t.Plan.TargetAmount)
		s.TotalCurrentAmount = s.TotalCurrentAmount.Add(t.Plan.CurrentAmount)
		s.TotalRemaining = s.TotalRemaining.Add(t.Metrics.RemainingAmount)
		s.MonthlyTarget = s.MonthlyTarget.Add(t.Plan.MonthlyContribution)
		s.MonthlyActual = s.MonthlyActual.Add(t.CurrentMonth)

		if t.Plan.TargetAmount.GreaterThan(t.Plan.CurrentAmount) {
			s.ActiveCount++
		}

		switch t.Metrics.TargetStatus {
		case StatusHealthy:
			s.HealthyCount++
		case StatusWarning:
			s.WarningCount++
		case StatusCritical:
			s.CriticalCount++
		}

		if !t.Metrics.ETAInMonths.IsInfinite() {
			finite++
			etaSum += t.Metrics.ETAInMonths
		}
	}

	if s.TotalTargetAmount.IsPositive() {
		s.OverallProgress = s.TotalCurrentAmount.Div(s.TotalTargetAmount).Mul(hundred).Round(2)
	}

	if s.MonthlyTarget.IsPositive() {
		s.MonthlyAchievement = s.MonthlyActual.Div(s.MonthlyTarget).Mul(hundred).Round(2)
	}

	if finite > 0 {
		s.AverageETA = etaSum / ETA(finite)
	}

	s.Insight = summaryInsight(s)
	return s
}

func summaryInsight(s Summary) Copy {
	switch {
	case s.Count == 0:
		return Copy{Text: "Belum ada target aktif. Mulai buat target pertama kamu!", Emoji: "🎯", Color: "text-primary"}
	case s.CriticalCount > 0:
		return Copy{Text: printer.Sprintf("%d target sedang sekarat. Kamu butuh aksi serius.", s.CriticalCount), Emoji: "🔴", Color: "text-destructive"}
	case s.WarningCount > 0:
		return Copy{Text: printer.Sprintf("%d target terancam. Waktu terus jalan, jangan santai.", s.WarningCount), Emoji: "🟡", Color: "text-yellow-500"}
	case s.MonthlyAchievement.GreaterThanOrEqual(hundred):
		return Copy{Text: "Semua target on fire! Kamu di atas rencana bulanan.", Emoji: "🔥", Color: "text-green-500"}
	case s.MonthlyAchievement.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return Copy{Text: "Lumayan, tapi masih ada gap kecil yang bisa ditutup.", Emoji: "⚡", Color: "text-blue-500"}
	}

	if gap := s.MonthlyTarget.Sub(s.MonthlyActual); gap.GreaterThan(SummaryGapThreshold) {
		return Copy{Text: printer.Sprintf("Target bulanan kurang %s. Naikkan segera!", Rupiah(gap)), Emoji: "⚠️", Color: "text-orange-500"}
	}

	return Copy{Text: "Semua target sehat. Pertahankan momentum ini!", Emoji: "✅", Color: "text-green-500"}
}
