package savings

import "github.com/shopspring/decimal"

// Challenge is a short term saving task for a target.
type Challenge struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Reward       string          `json:"reward"`
	Days         int             `json:"days"`
}

// challenges are ordered from the largest to the smallest amount.
var challenges = []Challenge{
	{
		Title:        "7 Hari Ngebut",
		Description:  "Tambah Rp200.000 dalam 7 hari",
		TargetAmount: decimal.NewFromInt(200_000),
		Reward:       "+5 Consistency Score",
		Days:         7,
	},
	{
		Title:        "Setoran 100k",
		Description:  "Setoran Rp100.000 sekarang",
		TargetAmount: decimal.NewFromInt(100_000),
		Reward:       "+2 Momentum Points",
		Days:         1,
	},
	{
		Title:        "Semangat 50k",
		Description:  "Setoran Rp50.000 hari ini",
		TargetAmount: decimal.NewFromInt(50_000),
		Reward:       "+1 Consistency Score",
		Days:         3,
	},
}

// MiniChallenge returns the largest challenge that does not exceed the
// remaining amount, or nil if the target is complete or too close to it.
func MiniChallenge(m Metrics) *Challenge {
	if !m.RemainingAmount.IsPositive() {
		return nil
	}

	for _, c := range challenges {
		if c.TargetAmount.LessThanOrEqual(m.RemainingAmount) {
			return &c
		}
	}

	return nil
}
