package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kasku/backend/internal/httputil"
	"github.com/kasku/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
		r.POST("", CreateTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Transaction{})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	transaction, ok := ownedResource[models.Transaction](c)
	if !ok {
		return
	}

	data, err := loadTransaction(c, transaction)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Get transactions
// @Description	Returns a list of transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		500			{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			type		query	string	false	"Filter by type, income or expense"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			month		query	int		false	"Filter by month of the date, 1 to 12. Requires year"
// @Param			year		query	int		false	"Filter by year of the date. Requires month"
// @Param			fromDate	query	string	false	"Transactions at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate	query	string	false	"Transactions before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			search		query	string	false	"Search for this text in the description"
// @Param			offset		query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	if slices.Contains(setFields, "Type") && !filter.Type.Valid() {
		s := errTypeFilterInvalid.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	month, monthSet, err := QueryPeriod{Month: filter.Month, Year: filter.Year}.month()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	model := filter.model()
	userID := currentUser(c)

	var q *gorm.DB
	q = models.DB.
		Scopes(models.OwnedBy(userID)).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Where(&model, queryFields...)

	if monthSet {
		q = q.Where("transactions.date >= ?", month.Start()).Where("transactions.date < ?", month.End())
	}

	// Dates match on the whole day
	if !filter.FromDate.IsZero() {
		q = q.Where("transactions.date >= ?", startOfDay(filter.FromDate))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("transactions.date < ?", startOfDay(filter.UntilDate).AddDate(0, 0, 1))
	}

	if filter.Search != "" {
		q = q.Where("transactions.description LIKE ?", "%"+filter.Search+"%")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 transactions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var transactions []models.Transaction
	err = q.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	data, err := loadTransactions(c, userID, transactions)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create transactions
// @Description	Creates transactions. Income transactions can allocate a share of their amount to a savings target.
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		404				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionCreate	true	"Transactions"
// @Router			/v1/transactions [post]
func CreateTransactions(c *gin.Context) {
	var creates []TransactionCreate

	if err := httputil.BindData(c, &creates); err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &s,
		})
		return
	}

	userID := currentUser(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, create := range creates {
		transaction := create.model(userID)
		if transaction.Date.IsZero() {
			transaction.Date = time.Now()
		}

		allocation, err := models.CreateTransaction(models.DB, &transaction, create.request())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data, err := loadTransaction(c, transaction, allocation)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified. An existing allocation keeps its amount.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	transaction, ok := ownedResource[models.Transaction](c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	var data TransactionEditable
	if err := httputil.BindData(c, &data); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	err = models.UpdateTransaction(models.DB, &transaction, updateFields, data.model(transaction.UserID))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	r, err := loadTransaction(c, transaction)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &r})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction. If a share of it was allocated to a savings target, the allocation is removed from the target.
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	transaction, ok := ownedResource[models.Transaction](c)
	if !ok {
		return
	}

	err := models.DeleteTransaction(models.DB, transaction)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func startOfDay(t time.Time) time.Time {
	t = t.In(time.UTC)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// loadTransaction builds the API resource for one transaction with its
// category and allocation. A known allocation can be passed to skip
// loading it.
func loadTransaction(c *gin.Context, transaction models.Transaction, allocation ...*models.Allocation) (Transaction, error) {
	var category models.Category
	err := models.DB.First(&category, "id = ?", transaction.CategoryID).Error
	if err != nil {
		return Transaction{}, err
	}

	var a *models.Allocation
	if len(allocation) > 0 {
		a = allocation[0]
	} else {
		var allocations []models.Allocation
		err = models.DB.Where(&models.Allocation{TransactionID: transaction.ID}).Limit(1).Find(&allocations).Error
		if err != nil {
			return Transaction{}, err
		}

		if len(allocations) > 0 {
			a = &allocations[0]
		}
	}

	return newTransaction(c.GetString(string(models.DBContextURL)), transaction, &category, a), nil
}

// loadTransactions builds the API resources for a list of transactions of
// the user. Categories and allocations are loaded with one query each.
func loadTransactions(c *gin.Context, userID uuid.UUID, transactions []models.Transaction) ([]Transaction, error) {
	data := make([]Transaction, 0, len(transactions))
	if len(transactions) == 0 {
		return data, nil
	}

	var categories []models.Category
	err := models.DB.Scopes(models.OwnedBy(userID)).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*models.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	ids := make([]uuid.UUID, 0, len(transactions))
	for _, t := range transactions {
		ids = append(ids, t.ID)
	}

	var allocations []models.Allocation
	err = models.DB.Where("transaction_id IN ?", ids).Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	byTransaction := make(map[uuid.UUID]*models.Allocation, len(allocations))
	for i := range allocations {
		byTransaction[allocations[i].TransactionID] = &allocations[i]
	}

	url := c.GetString(string(models.DBContextURL))
	for _, t := range transactions {
		data = append(data, newTransaction(url, t, byID[t.CategoryID], byTransaction[t.ID]))
	}

	return data, nil
}
