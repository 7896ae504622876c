package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Allocation records the share of an income transaction that was routed
// to a savings target. Amount is fixed when the allocation is created.
type Allocation struct {
	DefaultModel
	UserID        uuid.UUID       `gorm:"index"`
	User          User            `gorm:"constraint:OnDelete:CASCADE"`
	TargetID      uuid.UUID       `gorm:"index"`
	Target        SavingsTarget   `gorm:"constraint:OnDelete:CASCADE"`
	TransactionID uuid.UUID       `gorm:"uniqueIndex"`
	Transaction   Transaction     `gorm:"constraint:OnDelete:CASCADE"`
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Percentage    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// TargetAllocations returns the allocations of a target, newest first.
func TargetAllocations(db *gorm.DB, targetID uuid.UUID) ([]Allocation, error) {
	var allocations []Allocation
	err := db.
		Preload("Transaction.Category").
		Where(&Allocation{TargetID: targetID}).
		Order("created_at DESC").
		Find(&allocations).Error

	return allocations, err
}

// AllocationsSince returns the allocations of the user's targets created
// at or after the given time, grouped by target ID.
func AllocationsSince(db *gorm.DB, userID uuid.UUID, since time.Time) (map[uuid.UUID][]Allocation, error) {
	var allocations []Allocation
	err := db.
		Scopes(OwnedBy(userID)).
		Where("created_at >= ?", since.In(time.UTC)).
		Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	grouped := make(map[uuid.UUID][]Allocation)
	for _, a := range allocations {
		grouped[a.TargetID] = append(grouped[a.TargetID], a)
	}

	return grouped, nil
}
