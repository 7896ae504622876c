package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsTarget is a goal the user saves towards.
//
// CurrentAmount starts at the initial investment and changes only when
// allocations are applied or removed.
type SavingsTarget struct {
	DefaultModel
	UserID               uuid.UUID `gorm:"index"`
	User                 User      `gorm:"constraint:OnDelete:CASCADE"`
	Name                 string
	TargetAmount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentAmount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TargetDate           time.Time
	InitialInvestment    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	MonthlyContribution  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	AllocationPercentage decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Suggested share of income, in percent
}

func (t *SavingsTarget) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	t.TargetDate = t.TargetDate.In(time.UTC)

	return nil
}

func (t *SavingsTarget) BeforeCreate(tx *gorm.DB) error {
	t.CurrentAmount = t.InitialInvestment
	return t.DefaultModel.BeforeCreate(tx)
}

func (t *SavingsTarget) AfterSave(_ *gorm.DB) error {
	if t.Name == "" {
		return ErrTargetNameEmpty
	}

	if !t.TargetAmount.IsPositive() {
		return ErrTargetAmountNotPositive
	}

	if t.TargetDate.IsZero() {
		return ErrTargetDateMissing
	}

	if t.InitialInvestment.IsNegative() {
		return ErrInitialInvestmentNegative
	}

	if t.MonthlyContribution.IsNegative() {
		return ErrMonthlyContributionNegative
	}

	if t.AllocationPercentage.IsNegative() || t.AllocationPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return ErrAllocationPercentageOutOfBounds
	}

	return nil
}

func (t *SavingsTarget) AfterFind(tx *gorm.DB) error {
	t.TargetDate = t.TargetDate.In(time.UTC)
	return t.DefaultModel.AfterFind(tx)
}

// DeleteSavingsTarget deletes the target with all of its allocations.
// The allocated transactions are kept.
func DeleteSavingsTarget(db *gorm.DB, target SavingsTarget) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&Allocation{TargetID: target.ID}).Delete(&Allocation{}).Error; err != nil {
			return err
		}

		return tx.Delete(&target).Error
	})
}
