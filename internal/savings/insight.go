package savings

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BoostAmount is the extra monthly saving suggested when the pace lags
// behind the plan by more than this amount.
var BoostAmount = decimal.NewFromInt(50_000)

// printer formats amounts the way they are written in Indonesian, e.g. 1.250.000.
var printer = message.NewPrinter(language.Indonesian)

// Rupiah formats an amount as whole rupiah.
func Rupiah(amount decimal.Decimal) string {
	return printer.Sprintf("Rp%d", amount.Round(0).IntPart())
}

// Insight is a short, blunt assessment of a target. The first matching
// rule wins: critical before warning, then pace, then the gap to the plan.
func Insight(m Metrics, plan Plan) string {
	switch m.TargetStatus {
	case StatusCritical:
		if m.SpeedStatus == SpeedSlow {
			return "Masalahnya bukan penghasilan, tapi konsistensi kamu drop drastis."
		}

		if m.ETAInMonths > 24 {
			return "Target ini tidak gagal, kamu yang terlalu santai. 2 tahun ke depan sama aja."
		}

		return "Kalau target ini tidak tercapai, bukan karena nasib, tapi karena kamu menyerah duluan."

	case StatusWarning:
		if m.SpeedStatus == SpeedSlow {
			return "Kecepatan kamu di bawah target bulanan. Naikkan atau siap-siap telat."
		}

		return "Lumayan, tapi masih ada gap yang harus ditutup secepatnya."
	}

	if m.SpeedStatus == SpeedFast {
		if saved := MonthsSaved(m); saved >= 3 {
			return printer.Sprintf("Kamu lebih cepat %d bulan dari rencana. Pertahankan ini!", saved)
		}

		return "Kecepatan oke, jangan kendor sekarang."
	}

	gap := plan.MonthlyContribution.Sub(m.AvgMonthlySaving)
	if gap.GreaterThan(BoostAmount) {
		return printer.Sprintf("Tambah %s/bulan = target lebih cepat %d bulan.", Rupiah(BoostAmount), monthsSooner(m))
	}

	if gap.IsPositive() {
		return printer.Sprintf("Masih kurang %s/bulan dari target.", Rupiah(gap))
	}

	return "Target ini sehat. Lanjut!"
}

// monthsSooner is how many months the boost saves, never negative.
func monthsSooner(m Metrics) int64 {
	if m.ETAInMonths.IsInfinite() {
		return 0
	}

	boosted := Months(m.RemainingAmount, m.AvgMonthlySaving.Add(BoostAmount))
	return int64(max(0, m.ETAInMonths-boosted))
}

// MonthsSaved is how many months earlier the target is reached at the
// actual pace compared to the planned one. If either ETA is infinite the
// comparison is meaningless and no months are saved.
func MonthsSaved(m Metrics) int64 {
	if m.DoNothingETA.IsInfinite() || m.ETAInMonths.IsInfinite() {
		return 0
	}

	return decimal.NewFromFloat(float64(m.DoNothingETA - m.ETAInMonths)).Round(0).IntPart()
}

// Copy is the display text for a speed or status.
type Copy struct {
	Text    string `json:"text"`
	Subtext string `json:"subtext,omitempty"`
	Emoji   string `json:"emoji"`
	Color   string `json:"color"`
}

var speedCopy = map[Speed]Copy{
	SpeedFast:   {Text: "Lebih cepat dari rencana. Mantap.", Emoji: "⚡", Color: "text-green-500"},
	SpeedNormal: {Text: "Masih sesuai rencana.", Emoji: "➖", Color: "text-yellow-500"},
	SpeedSlow:   {Text: "Terlalu santai. Waktu terus jalan.", Emoji: "🐌", Color: "text-red-500"},
}

var statusCopy = map[Status]Copy{
	StatusHealthy:  {Text: "Sehat", Subtext: "Target ini on track. Jangan kendor.", Emoji: "🟢", Color: "bg-green-500"},
	StatusWarning:  {Text: "Terancam", Subtext: "Target masih jalan, tapi mulai melambat.", Emoji: "🟡", Color: "bg-yellow-500"},
	StatusCritical: {Text: "Sekarat", Subtext: "Dengan pola ini, target akan molor jauh.", Emoji: "🔴", Color: "bg-red-500"},
}

func SpeedCopy(s Speed) Copy {
	return speedCopy[s]
}

func StatusCopy(s Status) Copy {
	return statusCopy[s]
}
