package v1

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kasku/backend/internal/models"
	"github.com/kasku/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	CategoryID  uuid.UUID              `json:"categoryId" example:"1b7e1a54-5b4f-4b3e-9f52-2a1a3c3e7b01"` // ID of the category
	Type        models.TransactionType `json:"type" example:"income"`                                     // Either income or expense
	Amount      decimal.Decimal        `json:"amount" example:"5000000" swaggertype:"string"`             // Amount, must be positive
	Description string                 `json:"description" example:"Gaji bulan Maret"`                    // A short description
	Date        time.Time              `json:"date" example:"2026-03-25T09:00:00Z"`                       // Date of the transaction, defaults to now
}

func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		CategoryID:  editable.CategoryID,
		Type:        editable.Type,
		Amount:      editable.Amount,
		Description: strings.TrimSpace(editable.Description),
		Date:        editable.Date.In(time.UTC),
	}
}

// TransactionCreate is a new transaction with an optional allocation of
// a share of its amount to a savings target.
type TransactionCreate struct {
	TransactionEditable
	TargetID             uuid.UUID       `json:"targetId" example:"c3c2d1a0-7f6e-4d5c-8b9a-0f1e2d3c4b5a"` // Savings target that receives a share, income only. "none" or omitted for no target
	AllocationPercentage decimal.Decimal `json:"allocationPercentage" example:"25" swaggertype:"string"`  // Share of the amount in percent, greater than 0 and at most 100
}

// noTarget is how clients select no savings target explicitly.
const noTarget = "none"

// UnmarshalJSON accepts "none" and an empty string as no target.
func (create *TransactionCreate) UnmarshalJSON(b []byte) error {
	type transactionCreate TransactionCreate
	var body struct {
		transactionCreate
		TargetID *string `json:"targetId"`
	}

	if err := json.Unmarshal(b, &body); err != nil {
		return err
	}

	*create = TransactionCreate(body.transactionCreate)
	if body.TargetID == nil || *body.TargetID == "" || *body.TargetID == noTarget {
		create.TargetID = uuid.Nil
		return nil
	}

	id, err := uuid.Parse(*body.TargetID)
	if err != nil {
		return fmt.Errorf("the target ID must be a UUID or %q: %w", noTarget, err)
	}

	create.TargetID = id
	return nil
}

func (create TransactionCreate) request() *models.AllocationRequest {
	return &models.AllocationRequest{
		TargetID:   create.TargetID,
		Percentage: create.AllocationPercentage,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`   // The transaction itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/1b7e1a54-5b4f-4b3e-9f52-2a1a3c3e7b01"` // The category of the transaction
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Category   *Category        `json:"category"`   // The category, if it could be loaded
	Allocation *AllocationShare `json:"allocation"` // The allocation of this transaction to a savings target, if any
	Links      TransactionLinks `json:"links"`
}

// AllocationShare is the part of an income transaction that went to a
// savings target.
type AllocationShare struct {
	ID         uuid.UUID       `json:"id" example:"a9e1b6d2-3c4f-4e5a-9b8c-7d6e5f4a3b2c"`       // ID of the allocation
	TargetID   uuid.UUID       `json:"targetId" example:"c3c2d1a0-7f6e-4d5c-8b9a-0f1e2d3c4b5a"` // ID of the savings target
	Amount     decimal.Decimal `json:"amount" example:"1250000" swaggertype:"string"`           // Allocated amount
	Percentage decimal.Decimal `json:"percentage" example:"25" swaggertype:"string"`            // Allocated share in percent
	CreatedAt  time.Time       `json:"createdAt" example:"2026-03-25T09:00:00Z"`                // Time of the allocation
}

func newAllocationShare(a *models.Allocation) *AllocationShare {
	if a == nil {
		return nil
	}

	return &AllocationShare{
		ID:         a.ID,
		TargetID:   a.TargetID,
		Amount:     a.Amount,
		Percentage: a.Percentage,
		CreatedAt:  a.CreatedAt,
	}
}

func newTransaction(url string, model models.Transaction, category *models.Category, allocation *models.Allocation) Transaction {
	t := Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			CategoryID:  model.CategoryID,
			Type:        model.Type,
			Amount:      model.Amount,
			Description: model.Description,
			Date:        model.Date,
		},
		Allocation: newAllocationShare(allocation),
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}

	if category != nil {
		c := newCategory(url, *category)
		t.Category = &c
	}

	return t
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Type       models.TransactionType `form:"type"`                          // By type
	CategoryID types.ID               `form:"category"`                      // By ID of the category
	Month      int                    `form:"month" filterField:"false"`     // By month of the date, requires year
	Year       int                    `form:"year" filterField:"false"`      // By year of the date, requires month
	FromDate   time.Time              `form:"fromDate" filterField:"false"`  // Transactions at and after this date
	UntilDate  time.Time              `form:"untilDate" filterField:"false"` // Transactions before and at this date
	Search     string                 `form:"search" filterField:"false"`    // By string in the description
	Offset     uint                   `form:"offset" filterField:"false"`    // The offset of the first Transaction returned. Defaults to 0.
	Limit      int                    `form:"limit" filterField:"false"`     // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Type:       f.Type,
		CategoryID: f.CategoryID.UUID,
	}
}
