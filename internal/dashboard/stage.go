package dashboard

import (
	"github.com/shopspring/decimal"
)

// Stage is a level of total savings.
type Stage struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Emoji  string          `json:"emoji"`
	Start  decimal.Decimal `json:"start"` // lower bound, inclusive
	Advice string          `json:"advice"`
	Focus  string          `json:"focus"`
}

// Stages are ordered by their start. Each stage ends where the next one starts,
// the last one is open ended.
var Stages = []Stage{
	{ID: "cacing", Name: "Cacing", Emoji: "🐛", Start: decimal.Zero, Advice: "Sadar & hemat", Focus: "Bangun kebiasaan baik dan mulai menabung sedikit demi sedikit"},
	{ID: "semut", Name: "Semut", Emoji: "🐜", Start: decimal.NewFromInt(1_000_000), Advice: "Konsisten sedikit demi sedikit", Focus: "Pertahankan konsistensi dalam menabung dan kontrol pengeluaran"},
	{ID: "kura-kura", Name: "Kura-kura", Emoji: "🐢", Start: decimal.NewFromInt(5_000_000), Advice: "Lambat tapi stabil", Focus: "Fokus pada kestabilan dan pertumbuhan bertahap"},
	{ID: "serigala", Name: "Serigala", Emoji: "🐺", Start: decimal.NewFromInt(20_000_000), Advice: "Diversifikasi & kontrol risiko", Focus: "Mulai diversifikasi investasi dan kelola risiko dengan baik"},
	{ID: "garuda", Name: "Garuda", Emoji: "🦅", Start: decimal.NewFromInt(50_000_000), Advice: "Buka kebebasan finansial di fase Garuda", Focus: "Menuju kebebasan finansial dengan portofolio yang solid"},
	{ID: "singa", Name: "Singa", Emoji: "🦁", Start: decimal.NewFromInt(100_000_000), Advice: "Uang bekerja untuk user", Focus: "Biarkan uang Anda bekerja untuk Anda melalui investasi pasif"},
	{ID: "naga", Name: "Naga", Emoji: "🐉", Start: decimal.NewFromInt(1_000_000_000), Advice: "Jaga modal, bukan kejar", Focus: "Lindungi modal dan bangun warisan keuangan"},
}

// Level is the stage reached with a total and how far it is to the next one.
type Level struct {
	Current  Stage           `json:"current"`
	Next     *Stage          `json:"next"`
	Progress decimal.Decimal `json:"progress"` // percent of the way to the next stage
}

// LevelOf finds the stage for the total savings. Totals below zero are in
// the first stage.
func LevelOf(total decimal.Decimal) Level {
	i := 0
	for j, s := range Stages {
		if total.GreaterThanOrEqual(s.Start) {
			i = j
		}
	}

	level := Level{Current: Stages[i], Progress: hundred}
	if i == len(Stages)-1 {
		return level
	}

	next := Stages[i+1]
	level.Next = &next

	p := total.Sub(level.Current.Start).Div(next.Start.Sub(level.Current.Start)).Mul(hundred).Round(2)
	level.Progress = decimal.Min(decimal.Max(p, decimal.Zero), hundred)

	return level
}
