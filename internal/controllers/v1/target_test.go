package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/kasku/backend/internal/controllers/v1"
	"github.com/kasku/backend/internal/models"
	"github.com/kasku/backend/internal/savings"
	"github.com/kasku/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTargetsCreate() {
	session := registerTestUser(suite.T())

	target := createTestTarget(suite.T(), session, v1.TargetEditable{
		Name:              " Laptop ",
		TargetAmount:      amount(15_000_000),
		InitialInvestment: amount(2_000_000),
	})

	suite.Assert().Equal("Laptop", target.Data.Name)
	suite.Assert().True(target.Data.CurrentAmount.Equal(amount(2_000_000)), "Current amount starts at the initial investment")
	suite.Assert().Equal("13.33", target.Data.Metrics.ProgressPercent.String())
	suite.Assert().True(target.Data.Metrics.RemainingAmount.Equal(amount(13_000_000)))

	// Without any saving pace, the target is never reached
	suite.Assert().True(target.Data.Metrics.ETAInMonths.IsInfinite())
	suite.Assert().Equal(savings.StatusCritical, target.Data.Metrics.TargetStatus)
	suite.Assert().Equal("∞", target.Data.ETAText)
	suite.Assert().Equal(savings.StatusCopy(savings.StatusCritical), target.Data.Status)
	suite.Require().NotNil(target.Data.Challenge)
	suite.Assert().Equal("7 Hari Ngebut", target.Data.Challenge.Title)

	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/targets/%s", target.Data.ID), target.Data.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/targets/%s/allocations", target.Data.ID), target.Data.Links.Allocations)
}

func (suite *TestSuiteStandard) TestTargetsCreateFails() {
	session := registerTestUser(suite.T())
	date := time.Now().AddDate(1, 0, 0)

	tests := []struct {
		name   string
		target v1.TargetEditable
		err    string
	}{
		{"No name", v1.TargetEditable{TargetAmount: amount(100), TargetDate: date}, models.ErrTargetNameEmpty.Error()},
		{"No amount", v1.TargetEditable{Name: "Laptop", TargetDate: date}, models.ErrTargetAmountNotPositive.Error()},
		{"No date", v1.TargetEditable{Name: "Laptop", TargetAmount: amount(100)}, models.ErrTargetDateMissing.Error()},
		{"Negative initial investment", v1.TargetEditable{Name: "Laptop", TargetAmount: amount(100), TargetDate: date, InitialInvestment: amount(-1)}, models.ErrInitialInvestmentNegative.Error()},
		{"Negative monthly contribution", v1.TargetEditable{Name: "Laptop", TargetAmount: amount(100), TargetDate: date, MonthlyContribution: amount(-1)}, models.ErrMonthlyContributionNegative.Error()},
		{"Percentage over 100", v1.TargetEditable{Name: "Laptop", TargetAmount: amount(100), TargetDate: date, AllocationPercentage: amount(150)}, models.ErrAllocationPercentageOutOfBounds.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/targets", []v1.TargetEditable{tt.target}, session)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.TargetCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.err, *response.Data[0].Error)
		})
	}
}

// TestTargetsMetrics verifies the metrics of a target that is saved into
// at the planned pace.
func (suite *TestSuiteStandard) TestTargetsMetrics() {
	session := registerTestUser(suite.T())
	target := createTestTarget(suite.T(), session, v1.TargetEditable{
		TargetAmount:        amount(12_000_000),
		MonthlyContribution: amount(1_000_000),
	})

	category := createTestCategory(suite.T(), session, v1.CategoryEditable{}).Data.ID
	for i := 0; i < 3; i++ {
		createTestTransaction(suite.T(), session, v1.TransactionCreate{
			TransactionEditable:  v1.TransactionEditable{CategoryID: category, Amount: amount(1_000_000)},
			TargetID:             target.Data.ID,
			AllocationPercentage: amount(100),
		})
	}

	t := getTarget(suite.T(), session, target.Data.ID)
	suite.Assert().True(t.CurrentAmount.Equal(amount(3_000_000)))
	suite.Assert().True(t.CurrentMonthAllocation.Equal(amount(3_000_000)))
	suite.Assert().True(t.Metrics.ProgressPercent.Equal(amount(25)))
	suite.Assert().True(t.Metrics.RemainingAmount.Equal(amount(9_000_000)))
	suite.Assert().True(t.Metrics.AvgMonthlySaving.Equal(amount(1_000_000)))
	suite.Assert().Equal(savings.ETA(9), t.Metrics.ETAInMonths)
	suite.Assert().Equal(savings.ETA(9), t.Metrics.DoNothingETA)
	suite.Assert().Equal(savings.SpeedFast, t.Metrics.SpeedStatus)
	suite.Assert().Equal(savings.StatusHealthy, t.Metrics.TargetStatus)
	suite.Assert().True(t.Metrics.IsOnTrack)
	suite.Assert().Equal("9 bulan", t.ETAText)
	suite.Assert().Equal(int64(0), t.MonthsSaved)
	suite.Assert().Equal(savings.SpeedCopy(savings.SpeedFast), t.Speed)
	suite.Assert().Equal("Kecepatan oke, jangan kendor sekarang.", t.Insight)
}

func (suite *TestSuiteStandard) TestTargetsGetOrder() {
	session := registerTestUser(suite.T())
	createTestTarget(suite.T(), session, v1.TargetEditable{Name: "Rumah", TargetDate: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)})
	createTestTarget(suite.T(), session, v1.TargetEditable{Name: "Liburan", TargetDate: time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)})
	createTestTarget(suite.T(), session, v1.TargetEditable{Name: "Motor", TargetDate: time.Date(2028, 3, 1, 0, 0, 0, 0, time.UTC)})
	createTestTarget(suite.T(), registerTestUser(suite.T()), v1.TargetEditable{Name: "Lain"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/targets", nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TargetListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	var names []string
	for _, t := range response.Data {
		names = append(names, t.Name)
	}
	suite.Assert().Equal([]string{"Liburan", "Motor", "Rumah"}, names)
}

func (suite *TestSuiteStandard) TestTargetsSummary() {
	session := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/targets/summary", nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TargetSummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(0, response.Data.Count)
	suite.Assert().True(response.Data.AverageETA.IsInfinite())
	suite.Assert().Equal("🎯", response.Data.Insight.Emoji)

	createTestTarget(suite.T(), session, v1.TargetEditable{TargetAmount: amount(10_000_000), InitialInvestment: amount(1_000_000), MonthlyContribution: amount(500_000)})
	createTestTarget(suite.T(), session, v1.TargetEditable{TargetAmount: amount(2_000_000), InitialInvestment: amount(2_000_000), MonthlyContribution: amount(500_000)})

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/targets/summary", nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(2, response.Data.Count)
	suite.Assert().Equal(1, response.Data.ActiveCount)
	suite.Assert().True(response.Data.TotalTargetAmount.Equal(amount(12_000_000)))
	suite.Assert().True(response.Data.TotalCurrentAmount.Equal(amount(3_000_000)))
	suite.Assert().True(response.Data.TotalRemaining.Equal(amount(9_000_000)))
	suite.Assert().True(response.Data.OverallProgress.Equal(amount(25)))
	suite.Assert().True(response.Data.MonthlyTarget.Equal(amount(1_000_000)))
	suite.Assert().True(response.Data.MonthlyActual.IsZero())

	// The reached target has nothing remaining, but no pace either
	suite.Assert().Equal(2, response.Data.CriticalCount)
	suite.Assert().Equal("🔴", response.Data.Insight.Emoji)
}

func (suite *TestSuiteStandard) TestTargetsAllocations() {
	session := registerTestUser(suite.T())
	target := createTestTarget(suite.T(), session, v1.TargetEditable{})
	category := createTestCategory(suite.T(), session, v1.CategoryEditable{Name: "Gaji Utama"})

	first := createTestTransaction(suite.T(), session, v1.TransactionCreate{
		TransactionEditable:  v1.TransactionEditable{CategoryID: category.Data.ID, Amount: amount(4_000_000), Description: "Gaji Februari"},
		TargetID:             target.Data.ID,
		AllocationPercentage: amount(10),
	})
	second := createTestTransaction(suite.T(), session, v1.TransactionCreate{
		TransactionEditable:  v1.TransactionEditable{CategoryID: category.Data.ID, Amount: amount(5_000_000), Description: "Gaji Maret"},
		TargetID:             target.Data.ID,
		AllocationPercentage: amount(20),
	})

	// Not allocated, not listed
	createTestTransaction(suite.T(), session, v1.TransactionCreate{TransactionEditable: v1.TransactionEditable{CategoryID: category.Data.ID}})

	r := test.Request(suite.T(), http.MethodGet, target.Data.Links.Allocations, nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TargetAllocationListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)

	suite.Assert().Equal(second.Data.Allocation.ID, response.Data[0].ID, "Newest allocation first")
	suite.Assert().True(response.Data[0].Amount.Equal(amount(1_000_000)))
	suite.Assert().Equal("Gaji Maret", response.Data[0].Transaction.Description)
	suite.Require().NotNil(response.Data[0].Transaction.Category)
	suite.Assert().Equal("Gaji Utama", response.Data[0].Transaction.Category.Name)

	suite.Assert().Equal(first.Data.Allocation.ID, response.Data[1].ID)
	suite.Assert().True(response.Data[1].Amount.Equal(amount(400_000)))
}

func (suite *TestSuiteStandard) TestTargetsUpdate() {
	session := registerTestUser(suite.T())
	target := createTestTarget(suite.T(), session, v1.TargetEditable{InitialInvestment: amount(500_000)})

	tests := []struct {
		name   string
		body   any
		status int
		check  func(t *testing.T, target v1.Target)
	}{
		{"Name", map[string]any{"name": " Dana Pendidikan "}, http.StatusOK, func(t *testing.T, target v1.Target) {
			assert.Equal(t, "Dana Pendidikan", target.Name)
		}},
		{"Plan", map[string]any{"monthlyContribution": "750000", "allocationPercentage": "30"}, http.StatusOK, func(t *testing.T, target v1.Target) {
			assert.True(t, target.MonthlyContribution.Equal(amount(750_000)))
			assert.True(t, target.AllocationPercentage.Equal(amount(30)))
			assert.Equal(t, "Dana Pendidikan", target.Name, "Name is kept")
		}},
		{"Initial investment", map[string]any{"initialInvestment": "900000"}, http.StatusOK, func(t *testing.T, target v1.Target) {
			assert.True(t, target.InitialInvestment.Equal(amount(900_000)))
			assert.True(t, target.CurrentAmount.Equal(amount(500_000)), "Current amount only changes with allocations")
		}},
		{"Date", map[string]any{"targetDate": "2029-12-31T00:00:00Z"}, http.StatusOK, func(t *testing.T, target v1.Target) {
			assert.Equal(t, time.Date(2029, 12, 31, 0, 0, 0, 0, time.UTC), target.TargetDate)
		}},
		{"Current amount is not editable", map[string]any{"currentAmount": "99999999"}, http.StatusOK, func(t *testing.T, target v1.Target) {
			assert.True(t, target.CurrentAmount.Equal(amount(500_000)))
		}},
		{"Zero amount", map[string]any{"targetAmount": "0"}, http.StatusBadRequest, nil},
		{"Empty name", map[string]any{"name": ""}, http.StatusBadRequest, nil},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, target.Data.Links.Self, tt.body, session)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TargetResponse
			test.DecodeResponse(t, &r, &response)

			if tt.check != nil {
				tt.check(t, *response.Data)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTargetsDelete() {
	session := registerTestUser(suite.T())
	target := createTestTarget(suite.T(), session, v1.TargetEditable{})
	transaction := createTestTransaction(suite.T(), session, v1.TransactionCreate{
		TargetID:             target.Data.ID,
		AllocationPercentage: amount(50),
	})

	r := test.Request(suite.T(), http.MethodDelete, target.Data.Links.Self, nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, target.Data.Links.Self, nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The transaction stays, without its allocation
	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data.Allocation)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Allocation{}).Count(&count).Error)
	suite.Assert().Zero(count)

	// Deleting the transaction now does not fail on the missing target
	r = test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestTargetsGetSingle() {
	session := registerTestUser(suite.T())
	target := createTestTarget(suite.T(), session, v1.TargetEditable{})
	foreign := createTestTarget(suite.T(), registerTestUser(suite.T()), v1.TargetEditable{})

	tests := []struct {
		name   string
		path   string
		status int
		method string
	}{
		{"GET Existing Target", target.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET Allocations", target.Data.ID.String() + "/allocations", http.StatusOK, http.MethodGet},
		{"GET Target of another user", foreign.Data.ID.String(), http.StatusNotFound, http.MethodGet},
		{"GET Allocations of another user", foreign.Data.ID.String() + "/allocations", http.StatusNotFound, http.MethodGet},
		{"GET No Target with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Target of another user", foreign.Data.ID.String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE Target of another user", foreign.Data.ID.String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/targets/%s", tt.path), map[string]any{"name": "Diubah"}, session)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTargetsDBClosed() {
	session := registerTestUser(suite.T())
	suite.CloseDB()

	for _, path := range []string{"http://example.com/v1/targets", "http://example.com/v1/targets/summary"} {
		r := test.Request(suite.T(), http.MethodGet, path, nil, session)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	}
}
