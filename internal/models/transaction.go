package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Transaction is a single income or expense.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"index"`
	User        User      `gorm:"constraint:OnDelete:CASCADE"`
	CategoryID  uuid.UUID `gorm:"index"`
	Category    Category
	Type        TransactionType
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description string
	Date        time.Time
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.Date = t.Date.In(time.UTC)

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if t.Date.IsZero() {
		return ErrTransactionDateMissing
	}

	return nil
}

func (t *Transaction) AfterFind(tx *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return t.DefaultModel.AfterFind(tx)
}

// AllocationRequest routes a share of an income transaction to a savings target.
type AllocationRequest struct {
	TargetID   uuid.UUID
	Percentage decimal.Decimal
}

// Requested reports if the request asks for an allocation at all.
func (r *AllocationRequest) Requested() bool {
	return r != nil && r.TargetID != uuid.Nil && !r.Percentage.IsZero()
}

// AllocationAmount is the share of the amount that the percentage stands for.
func AllocationAmount(amount, percentage decimal.Decimal) decimal.Decimal {
	return amount.Mul(percentage).Div(decimal.NewFromInt(100))
}

// CreateTransaction stores the transaction and applies the allocation
// request if there is one.
//
// The transaction, the allocation and the increment of the target's current
// amount are written in one database transaction. If any of them fails,
// nothing is persisted.
func CreateTransaction(db *gorm.DB, transaction *Transaction, request *AllocationRequest) (*Allocation, error) {
	var allocation *Allocation

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := checkCategory(tx, transaction.UserID, transaction.CategoryID, transaction.Type); err != nil {
			return err
		}

		var target SavingsTarget
		if request.Requested() {
			if transaction.Type != TypeIncome {
				return ErrExpenseAllocation
			}

			if !request.Percentage.IsPositive() || request.Percentage.GreaterThan(decimal.NewFromInt(100)) {
				return ErrAllocationPercentage
			}

			// Ownership is verified before anything is written
			err := tx.Scopes(OwnedBy(transaction.UserID)).First(&target, "id = ?", request.TargetID).Error
			if err != nil {
				return err
			}
		}

		if err := tx.Omit(clause.Associations).Create(transaction).Error; err != nil {
			return err
		}

		if !request.Requested() {
			return nil
		}

		allocation = &Allocation{
			UserID:        transaction.UserID,
			TargetID:      target.ID,
			TransactionID: transaction.ID,
			Amount:        AllocationAmount(transaction.Amount, request.Percentage),
			Percentage:    request.Percentage,
		}

		if err := tx.Omit(clause.Associations).Create(allocation).Error; err != nil {
			return err
		}

		return adjustCurrentAmount(tx, target.ID, allocation.Amount)
	})
	if err != nil {
		return nil, err
	}

	return allocation, nil
}

// UpdateTransaction updates the selected fields of the transaction.
//
// An existing allocation keeps the amount it was created with.
func UpdateTransaction(db *gorm.DB, transaction *Transaction, fields []any, data Transaction) error {
	return db.Transaction(func(tx *gorm.DB) error {
		categoryID := transaction.CategoryID
		transactionType := transaction.Type

		for _, f := range fields {
			switch f {
			case "CategoryID":
				categoryID = data.CategoryID
			case "Type":
				transactionType = data.Type
			}
		}

		if categoryID != transaction.CategoryID || transactionType != transaction.Type {
			if err := checkCategory(tx, transaction.UserID, categoryID, transactionType); err != nil {
				return err
			}
		}

		if transactionType != TypeIncome {
			var count int64
			err := tx.Model(&Allocation{}).Where(&Allocation{TransactionID: transaction.ID}).Count(&count).Error
			if err != nil {
				return err
			}

			if count > 0 {
				return ErrExpenseAllocation
			}
		}

		return tx.Model(transaction).Select("", fields...).Updates(data).Error
	})
}

// DeleteTransaction deletes the transaction. If it was allocated, the
// allocation is removed and the target's current amount decreases by
// the allocated amount.
func DeleteTransaction(db *gorm.DB, transaction Transaction) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var allocations []Allocation
		err := tx.Where(&Allocation{TransactionID: transaction.ID}).Find(&allocations).Error
		if err != nil {
			return err
		}

		for _, a := range allocations {
			if err := adjustCurrentAmount(tx, a.TargetID, a.Amount.Neg()); err != nil {
				return err
			}

			if err := tx.Delete(&a).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&transaction).Error
	})
}

// checkCategory verifies that the category belongs to the user and
// matches the transaction type.
func checkCategory(tx *gorm.DB, userID, categoryID uuid.UUID, transactionType TransactionType) error {
	if !transactionType.Valid() {
		return ErrTransactionTypeInvalid
	}

	var category Category
	err := tx.Scopes(OwnedBy(userID)).First(&category, "id = ?", categoryID).Error
	if err != nil {
		return err
	}

	if category.Type != transactionType {
		return ErrCategoryTypeMismatch
	}

	return nil
}

// adjustCurrentAmount changes the current amount of a target in a single
// statement so that concurrent allocations do not overwrite each other.
func adjustCurrentAmount(tx *gorm.DB, targetID uuid.UUID, delta decimal.Decimal) error {
	return tx.Model(&SavingsTarget{}).
		Where("id = ?", targetID).
		UpdateColumn("current_amount", gorm.Expr("current_amount + ?", delta)).
		Error
}

// CategoryTotal is the sum of the transactions of one category.
type CategoryTotal struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
}

// CategoryTotals sums the user's transactions of one type per category.
// Zero times leave the respective side of the date range open.
func CategoryTotals(db *gorm.DB, userID uuid.UUID, transactionType TransactionType, from, until time.Time) ([]CategoryTotal, error) {
	q := db.
		Model(&Transaction{}).
		Scopes(OwnedBy(userID)).
		Select("category_id, SUM(amount) AS amount").
		Where(&Transaction{Type: transactionType})

	if !from.IsZero() {
		q = q.Where("transactions.date >= ?", from.In(time.UTC))
	}

	if !until.IsZero() {
		q = q.Where("transactions.date < ?", until.In(time.UTC))
	}

	var totals []CategoryTotal
	err := q.Group("category_id").Scan(&totals).Error
	return totals, err
}
