package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kasku/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestTransactionAfterSave() {
	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"Invalid type", models.Transaction{Type: "transfer", Amount: decimal.NewFromInt(1), Date: time.Now()}, models.ErrTransactionTypeInvalid},
		{"Zero amount", models.Transaction{Type: models.TypeIncome, Date: time.Now()}, models.ErrTransactionAmountNotPositive},
		{"Negative amount", models.Transaction{Type: models.TypeExpense, Amount: decimal.NewFromInt(-5), Date: time.Now()}, models.ErrTransactionAmountNotPositive},
		{"No date", models.Transaction{Type: models.TypeExpense, Amount: decimal.NewFromInt(5)}, models.ErrTransactionDateMissing},
		{"Valid", models.Transaction{Type: models.TypeExpense, Amount: decimal.NewFromInt(5), Date: time.Now()}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.transaction.AfterSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	category := suite.createTestCategory(models.Category{})
	description := "  Gaji bulan Maret \t"

	transaction, _ := suite.createTestTransaction(models.Transaction{
		UserID:      category.UserID,
		CategoryID:  category.ID,
		Amount:      decimal.NewFromInt(100),
		Description: description,
	}, nil)

	assert.Equal(suite.T(), strings.TrimSpace(description), transaction.Description)
}

func (suite *TestSuiteStandard) TestAllocationAmount() {
	tests := []struct {
		amount     int64
		percentage int64
		expected   int64
	}{
		{100_000, 25, 25_000},
		{1_000_000, 100, 1_000_000},
		{80_000, 10, 8_000},
	}

	for _, tt := range tests {
		amount := models.AllocationAmount(decimal.NewFromInt(tt.amount), decimal.NewFromInt(tt.percentage))
		assert.True(suite.T(), amount.Equal(decimal.NewFromInt(tt.expected)), "Expected %d, got %s", tt.expected, amount)
	}
}

func (suite *TestSuiteStandard) TestCreateTransactionWithAllocation() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID, Type: models.TypeIncome})
	target := suite.createTestTarget(models.SavingsTarget{UserID: user.ID})

	transaction, allocation := suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(100_000),
	}, &models.AllocationRequest{TargetID: target.ID, Percentage: decimal.NewFromInt(25)})

	if !assert.NotNil(suite.T(), allocation) {
		return
	}

	assert.Equal(suite.T(), transaction.ID, allocation.TransactionID)
	assert.Equal(suite.T(), target.ID, allocation.TargetID)
	assert.True(suite.T(), allocation.Amount.Equal(decimal.NewFromInt(25_000)), "Allocation amount is %s", allocation.Amount)

	target = suite.reloadTarget(target.ID)
	assert.True(suite.T(), target.CurrentAmount.Equal(decimal.NewFromInt(25_000)), "Current amount is %s", target.CurrentAmount)
}

func (suite *TestSuiteStandard) TestCreateTransactionAllocationIncrementsInitialInvestment() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})
	target := suite.createTestTarget(models.SavingsTarget{UserID: user.ID, InitialInvestment: decimal.NewFromInt(500_000)})

	suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(200_000),
	}, &models.AllocationRequest{TargetID: target.ID, Percentage: decimal.NewFromInt(50)})

	target = suite.reloadTarget(target.ID)
	assert.True(suite.T(), target.CurrentAmount.Equal(decimal.NewFromInt(600_000)), "Current amount is %s", target.CurrentAmount)
}

func (suite *TestSuiteStandard) TestCreateTransactionWithoutAllocation() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})
	target := suite.createTestTarget(models.SavingsTarget{UserID: user.ID})

	tests := []struct {
		name    string
		request *models.AllocationRequest
	}{
		{"No request", nil},
		{"Zero percentage", &models.AllocationRequest{TargetID: target.ID}},
		{"No target", &models.AllocationRequest{Percentage: decimal.NewFromInt(10)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, allocation := suite.createTestTransaction(models.Transaction{
				UserID:     user.ID,
				CategoryID: category.ID,
				Amount:     decimal.NewFromInt(100_000),
			}, tt.request)

			assert.Nil(t, allocation)
		})
	}

	target = suite.reloadTarget(target.ID)
	assert.True(suite.T(), target.CurrentAmount.IsZero(), "Current amount is %s", target.CurrentAmount)
}

func (suite *TestSuiteStandard) TestCreateTransactionFails() {
	user := suite.createTestUser(models.User{})
	income := suite.createTestCategory(models.Category{UserID: user.ID, Type: models.TypeIncome})
	expense := suite.createTestCategory(models.Category{UserID: user.ID, Type: models.TypeExpense})
	target := suite.createTestTarget(models.SavingsTarget{UserID: user.ID})
	foreignTarget := suite.createTestTarget(models.SavingsTarget{})
	foreignCategory := suite.createTestCategory(models.Category{})

	tests := []struct {
		name        string
		transaction models.Transaction
		request     *models.AllocationRequest
		err         error
	}{
		{
			"Expense with allocation",
			models.Transaction{CategoryID: expense.ID, Type: models.TypeExpense},
			&models.AllocationRequest{TargetID: target.ID, Percentage: decimal.NewFromInt(10)},
			models.ErrExpenseAllocation,
		},
		{
			"Percentage above 100",
			models.Transaction{CategoryID: income.ID, Type: models.TypeIncome},
			&models.AllocationRequest{TargetID: target.ID, Percentage: decimal.NewFromInt(101)},
			models.ErrAllocationPercentage,
		},
		{
			"Negative percentage",
			models.Transaction{CategoryID: income.ID, Type: models.TypeIncome},
			&models.AllocationRequest{TargetID: target.ID, Percentage: decimal.NewFromInt(-1)},
			models.ErrAllocationPercentage,
		},
		{
			"Category type mismatch",
			models.Transaction{CategoryID: expense.ID, Type: models.TypeIncome},
			nil,
			models.ErrCategoryTypeMismatch,
		},
		{
			"Foreign target",
			models.Transaction{CategoryID: income.ID, Type: models.TypeIncome},
			&models.AllocationRequest{TargetID: foreignTarget.ID, Percentage: decimal.NewFromInt(10)},
			models.ErrResourceNotFound,
		},
		{
			"Foreign category",
			models.Transaction{CategoryID: foreignCategory.ID, Type: models.TypeIncome},
			nil,
			models.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			tt.transaction.UserID = user.ID
			tt.transaction.Amount = decimal.NewFromInt(100_000)
			tt.transaction.Date = time.Now()

			allocation, err := models.CreateTransaction(models.DB, &tt.transaction, tt.request)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, allocation)
		})
	}

	// Nothing has been persisted by the failed calls
	var count int64
	models.DB.Model(&models.Transaction{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)

	assert.True(suite.T(), suite.reloadTarget(target.ID).CurrentAmount.IsZero())
	assert.True(suite.T(), suite.reloadTarget(foreignTarget.ID).CurrentAmount.IsZero())
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	user := suite.createTestUser(models.User{})
	income := suite.createTestCategory(models.Category{UserID: user.ID, Type: models.TypeIncome})
	expense := suite.createTestCategory(models.Category{UserID: user.ID, Type: models.TypeExpense})
	target := suite.createTestTarget(models.SavingsTarget{UserID: user.ID})

	transaction, _ := suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		CategoryID: income.ID,
		Amount:     decimal.NewFromInt(100_000),
	}, &models.AllocationRequest{TargetID: target.ID, Percentage: decimal.NewFromInt(10)})

	// Amount updates do not change the allocation
	err := models.UpdateTransaction(models.DB, &transaction, []any{"Amount"}, models.Transaction{Amount: decimal.NewFromInt(500_000)})
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), transaction.Amount.Equal(decimal.NewFromInt(500_000)))
	assert.True(suite.T(), suite.reloadTarget(target.ID).CurrentAmount.Equal(decimal.NewFromInt(10_000)))

	// An allocated transaction cannot become an expense
	err = models.UpdateTransaction(models.DB, &transaction, []any{"Type", "CategoryID"}, models.Transaction{Type: models.TypeExpense, CategoryID: expense.ID})
	assert.ErrorIs(suite.T(), err, models.ErrExpenseAllocation)

	// The category must match the type
	err = models.UpdateTransaction(models.DB, &transaction, []any{"CategoryID"}, models.Transaction{CategoryID: expense.ID})
	assert.ErrorIs(suite.T(), err, models.ErrCategoryTypeMismatch)
}

func (suite *TestSuiteStandard) TestDeleteTransactionRevertsAllocation() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})
	target := suite.createTestTarget(models.SavingsTarget{UserID: user.ID, InitialInvestment: decimal.NewFromInt(1_000)})

	transaction, allocation := suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(100_000),
	}, &models.AllocationRequest{TargetID: target.ID, Percentage: decimal.NewFromInt(20)})

	err := models.DeleteTransaction(models.DB, transaction)
	assert.Nil(suite.T(), err)

	err = models.DB.First(&models.Allocation{}, "id = ?", allocation.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	target = suite.reloadTarget(target.ID)
	assert.True(suite.T(), target.CurrentAmount.Equal(decimal.NewFromInt(1_000)), "Current amount is %s", target.CurrentAmount)
}

func (suite *TestSuiteStandard) TestDeleteTransactionNotFound() {
	err := models.DeleteTransaction(models.DB, models.Transaction{DefaultModel: models.DefaultModel{ID: uuid.New()}})
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCategoryTotals() {
	user := suite.createTestUser(models.User{})
	food := suite.createTestCategory(models.Category{UserID: user.ID, Type: models.TypeExpense, Name: "Makanan"})
	bills := suite.createTestCategory(models.Category{UserID: user.ID, Type: models.TypeExpense, Name: "Tagihan"})
	salary := suite.createTestCategory(models.Category{UserID: user.ID, Type: models.TypeIncome, Name: "Gaji"})

	march := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)

	for _, t := range []models.Transaction{
		{CategoryID: food.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(25_000), Date: march},
		{CategoryID: food.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(15_000), Date: march},
		{CategoryID: bills.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(300_000), Date: march},
		{CategoryID: bills.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(100_000), Date: april},
		{CategoryID: salary.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(5_000_000), Date: march},
	} {
		t.UserID = user.ID
		suite.createTestTransaction(t, nil)
	}

	// A transaction of another user is never counted
	other := suite.createTestCategory(models.Category{Type: models.TypeExpense})
	suite.createTestTransaction(models.Transaction{UserID: other.UserID, CategoryID: other.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(1), Date: march}, nil)

	totals, err := models.CategoryTotals(models.DB, user.ID, models.TypeExpense, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(err)
	suite.Require().Len(totals, 2)

	byCategory := make(map[uuid.UUID]decimal.Decimal)
	for _, t := range totals {
		byCategory[t.CategoryID] = t.Amount
	}
	suite.Assert().True(byCategory[food.ID].Equal(decimal.NewFromInt(40_000)), byCategory[food.ID].String())
	suite.Assert().True(byCategory[bills.ID].Equal(decimal.NewFromInt(300_000)), byCategory[bills.ID].String())

	all, err := models.CategoryTotals(models.DB, user.ID, models.TypeExpense, time.Time{}, time.Time{})
	suite.Require().Nil(err)
	suite.Require().Len(all, 2)
}
