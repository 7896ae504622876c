package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kasku/backend/internal/models"
	"github.com/kasku/backend/internal/savings"
	"github.com/shopspring/decimal"
)

// TargetEditable represents all user configurable parameters
type TargetEditable struct {
	Name                 string          `json:"name" example:"Dana Darurat"`                                // Name of the target
	TargetAmount         decimal.Decimal `json:"targetAmount" example:"12000000" swaggertype:"string"`       // Amount to reach, must be positive
	TargetDate           time.Time       `json:"targetDate" example:"2027-01-01T00:00:00Z"`                  // Date the target should be reached at
	InitialInvestment    decimal.Decimal `json:"initialInvestment" example:"0" swaggertype:"string"`         // Amount already saved when the target is created
	MonthlyContribution  decimal.Decimal `json:"monthlyContribution" example:"1000000" swaggertype:"string"` // Planned contribution per month, 0 for no plan
	AllocationPercentage decimal.Decimal `json:"allocationPercentage" example:"25" swaggertype:"string"`     // Suggested share of income in percent
}

func (editable TargetEditable) model(userID uuid.UUID) models.SavingsTarget {
	return models.SavingsTarget{
		UserID:               userID,
		Name:                 strings.TrimSpace(editable.Name),
		TargetAmount:         editable.TargetAmount,
		TargetDate:           editable.TargetDate.In(time.UTC),
		InitialInvestment:    editable.InitialInvestment,
		MonthlyContribution:  editable.MonthlyContribution,
		AllocationPercentage: editable.AllocationPercentage,
	}
}

type TargetLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/targets/c3c2d1a0-7f6e-4d5c-8b9a-0f1e2d3c4b5a"`                    // The target itself
	Allocations string `json:"allocations" example:"https://example.com/api/v1/targets/c3c2d1a0-7f6e-4d5c-8b9a-0f1e2d3c4b5a/allocations"` // Allocations to the target
}

type Target struct {
	models.DefaultModel
	TargetEditable
	CurrentAmount          decimal.Decimal    `json:"currentAmount" example:"3000000" swaggertype:"string"`          // Amount saved so far
	CurrentMonthAllocation decimal.Decimal    `json:"currentMonthAllocation" example:"1000000" swaggertype:"string"` // Allocated in the current calendar month
	Metrics                savings.Metrics    `json:"metrics"`                                                       // Progress metrics
	ETAText                string             `json:"etaText" example:"9 bulan"`                                     // The ETA for display
	Insight                string             `json:"insight"`                                                       // What the numbers say about the target
	Speed                  savings.Copy       `json:"speed"`                                                         // Display copy for the speed status
	Status                 savings.Copy       `json:"status"`                                                        // Display copy for the target status
	MonthsSaved            int64              `json:"monthsSaved" example:"3"`                                       // Months ahead of the plan
	Challenge              *savings.Challenge `json:"challenge"`                                                     // A short term challenge, if one fits the remaining amount
	Links                  TargetLinks        `json:"links"`
}

// plan is the part of the target the metrics are computed from.
func plan(model models.SavingsTarget) savings.Plan {
	return savings.Plan{
		TargetAmount:        model.TargetAmount,
		CurrentAmount:       model.CurrentAmount,
		MonthlyContribution: model.MonthlyContribution,
	}
}

func contributions(allocations []models.Allocation) []savings.Contribution {
	c := make([]savings.Contribution, 0, len(allocations))
	for _, a := range allocations {
		c = append(c, savings.Contribution{
			Amount:    a.Amount,
			CreatedAt: a.CreatedAt,
		})
	}

	return c
}

// snapshot computes the metrics of the target from its recent allocations.
func snapshot(model models.SavingsTarget, allocations []models.Allocation, now time.Time) savings.Snapshot {
	p := plan(model)
	c := contributions(allocations)

	return savings.Snapshot{
		Plan:         p,
		Metrics:      savings.Calculate(p, c, now),
		CurrentMonth: savings.CurrentMonthAllocation(c, now),
	}
}

func newTarget(url string, model models.SavingsTarget, s savings.Snapshot) Target {
	return Target{
		DefaultModel: model.DefaultModel,
		TargetEditable: TargetEditable{
			Name:                 model.Name,
			TargetAmount:         model.TargetAmount,
			TargetDate:           model.TargetDate,
			InitialInvestment:    model.InitialInvestment,
			MonthlyContribution:  model.MonthlyContribution,
			AllocationPercentage: model.AllocationPercentage,
		},
		CurrentAmount:          model.CurrentAmount,
		CurrentMonthAllocation: s.CurrentMonth,
		Metrics:                s.Metrics,
		ETAText:                s.Metrics.ETAInMonths.Text(),
		Insight:                savings.Insight(s.Metrics, s.Plan),
		Speed:                  savings.SpeedCopy(s.Metrics.SpeedStatus),
		Status:                 savings.StatusCopy(s.Metrics.TargetStatus),
		MonthsSaved:            savings.MonthsSaved(s.Metrics),
		Challenge:              savings.MiniChallenge(s.Metrics),
		Links: TargetLinks{
			Self:        fmt.Sprintf("%s/v1/targets/%s", url, model.ID),
			Allocations: fmt.Sprintf("%s/v1/targets/%s/allocations", url, model.ID),
		},
	}
}

type TargetListResponse struct {
	Data  []Target `json:"data"`                                                          // List of savings targets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TargetCreateResponse struct {
	Data  []TargetResponse `json:"data"`                                                          // List of the created targets or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TargetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TargetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TargetResponse struct {
	Data  *Target `json:"data"`                                                          // Data for the savings target
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TargetSummaryResponse struct {
	Data  *savings.Summary `json:"data"`                                                          // Summary of all savings targets
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// TargetAllocation is an allocation with the transaction that funded it.
type TargetAllocation struct {
	AllocationShare
	Transaction Transaction `json:"transaction"` // The funding transaction
}

type TargetAllocationListResponse struct {
	Data  []TargetAllocation `json:"data"`                                                          // Allocations, newest first
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
