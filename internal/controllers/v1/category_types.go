package v1

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/kasku/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name  string                 `json:"name" example:"Makanan"`  // Name of the category, unique per type
	Type  models.TransactionType `json:"type" example:"expense"`  // Type of the transactions in this category
	Color string                 `json:"color" example:"#ef4444"` // Display color
	Icon  string                 `json:"icon" example:"🍔"`        // Display icon
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID: userID,
		Name:   strings.TrimSpace(editable.Name),
		Type:   editable.Type,
		Color:  strings.TrimSpace(editable.Color),
		Icon:   strings.TrimSpace(editable.Icon),
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions in this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(url string, model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:  model.Name,
			Type:  model.Type,
			Color: model.Color,
			Icon:  model.Icon,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of Categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created Categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Type   models.TransactionType `form:"type"`                       // By transaction type
	Name   string                 `form:"name" filterField:"false"`   // By exact name
	Search string                 `form:"search" filterField:"false"` // By string in the name
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		Type: f.Type,
	}
}
