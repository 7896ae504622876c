package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionType is the direction of money flow.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports if the type is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category groups transactions of one type.
type Category struct {
	DefaultModel
	UserID uuid.UUID       `json:"-" gorm:"uniqueIndex:category_user_type_name"`
	User   User            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name   string          `gorm:"uniqueIndex:category_user_type_name"`
	Type   TransactionType `gorm:"uniqueIndex:category_user_type_name"`
	Color  string
	Icon   string
}

const (
	defaultCategoryColor = "#6b7280"
	defaultCategoryIcon  = "📦"
)

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)
	c.Icon = strings.TrimSpace(c.Icon)

	if c.Color == "" {
		c.Color = defaultCategoryColor
	}

	if c.Icon == "" {
		c.Icon = defaultCategoryIcon
	}

	return nil
}

func (c *Category) AfterSave(_ *gorm.DB) error {
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if !c.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	return nil
}

// DefaultCategories are created for every new user.
var DefaultCategories = []Category{
	{Name: "Gaji", Type: TypeIncome, Color: "#10b981", Icon: "💰"},
	{Name: "Bonus", Type: TypeIncome, Color: "#f59e0b", Icon: "🎁"},
	{Name: "Investasi", Type: TypeIncome, Color: "#8b5cf6", Icon: "📈"},
	{Name: "Lainnya", Type: TypeIncome, Color: "#6b7280", Icon: "📦"},
	{Name: "Makanan", Type: TypeExpense, Color: "#ef4444", Icon: "🍔"},
	{Name: "Transportasi", Type: TypeExpense, Color: "#f97316", Icon: "🚗"},
	{Name: "Belanja", Type: TypeExpense, Color: "#ec4899", Icon: "🛒"},
	{Name: "Tagihan", Type: TypeExpense, Color: "#3b82f6", Icon: "📄"},
	{Name: "Hiburan", Type: TypeExpense, Color: "#14b8a6", Icon: "🎬"},
	{Name: "Kesehatan", Type: TypeExpense, Color: "#22c55e", Icon: "💊"},
	{Name: "Pendidikan", Type: TypeExpense, Color: "#a855f7", Icon: "📚"},
	{Name: "Lainnya", Type: TypeExpense, Color: "#6b7280", Icon: "📦"},
}

// Register creates the user together with the default categories.
func Register(db *gorm.DB, user *User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		categories := make([]Category, 0, len(DefaultCategories))
		for _, c := range DefaultCategories {
			c.UserID = user.ID
			categories = append(categories, c)
		}

		return tx.Omit("User").Create(&categories).Error
	})
}

// DeleteCategory deletes a category that no transaction references.
func DeleteCategory(db *gorm.DB, category Category) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&Transaction{}).Where(&Transaction{CategoryID: category.ID}).Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return ErrCategoryInUse
		}

		return tx.Delete(&category).Error
	})
}
