package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kasku/backend/internal/httputil"
	"github.com/kasku/backend/internal/models"
	"github.com/kasku/backend/internal/savings"
)

// RegisterTargetRoutes registers the routes for savings targets with
// the RouterGroup that is passed.
func RegisterTargetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTargetList)
		r.GET("", GetTargets)
		r.POST("", CreateTargets)
	}

	// Summary across all targets
	{
		r.OPTIONS("/summary", OptionsTargetSummary)
		r.GET("/summary", GetTargetSummary)
	}

	// Target with ID
	{
		r.OPTIONS("/:id", OptionsTargetDetail)
		r.GET("/:id", GetTarget)
		r.PATCH("/:id", UpdateTarget)
		r.DELETE("/:id", DeleteTarget)
		r.OPTIONS("/:id/allocations", OptionsTargetAllocations)
		r.GET("/:id/allocations", GetTargetAllocations)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Targets
// @Success		204
// @Router			/v1/targets [options]
func OptionsTargetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Targets
// @Success		204
// @Router			/v1/targets/summary [options]
func OptionsTargetSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Targets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/targets/{id} [options]
func OptionsTargetDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.SavingsTarget{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Targets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/targets/{id}/allocations [options]
func OptionsTargetAllocations(c *gin.Context) {
	if _, ok := ownedResource[models.SavingsTarget](c); !ok {
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create savings targets
// @Description	Creates new savings targets. The current amount starts at the initial investment.
// @Tags			Targets
// @Produce		json
// @Success		201		{object}	TargetCreateResponse
// @Failure		400		{object}	TargetCreateResponse
// @Failure		500		{object}	TargetCreateResponse
// @Param			targets	body		[]TargetEditable	true	"Savings targets"
// @Router			/v1/targets [post]
func CreateTargets(c *gin.Context) {
	var editables []TargetEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TargetCreateResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	userID := currentUser(c)
	now := time.Now()

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TargetCreateResponse{}

	for _, editable := range editables {
		target := editable.model(userID)

		err = models.DB.Omit("User").Create(&target).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTarget(url, target, snapshot(target, nil, now))
		r.Data = append(r.Data, TargetResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get savings targets
// @Description	Returns the savings targets of the user with their metrics, ordered by target date
// @Tags			Targets
// @Produce		json
// @Success		200	{object}	TargetListResponse
// @Failure		500	{object}	TargetListResponse
// @Router			/v1/targets [get]
func GetTargets(c *gin.Context) {
	now := time.Now()

	targets, recent, err := userTargets(currentUser(c), now)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TargetListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	data := make([]Target, 0, len(targets))
	for _, target := range targets {
		data = append(data, newTarget(url, target, snapshot(target, recent[target.ID], now)))
	}

	c.JSON(http.StatusOK, TargetListResponse{Data: data})
}

// @Summary		Get savings target summary
// @Description	Returns the aggregate of all savings targets of the user
// @Tags			Targets
// @Produce		json
// @Success		200	{object}	TargetSummaryResponse
// @Failure		500	{object}	TargetSummaryResponse
// @Router			/v1/targets/summary [get]
func GetTargetSummary(c *gin.Context) {
	now := time.Now()

	targets, recent, err := userTargets(currentUser(c), now)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TargetSummaryResponse{
			Error: &e,
		})
		return
	}

	snapshots := make([]savings.Snapshot, 0, len(targets))
	for _, target := range targets {
		snapshots = append(snapshots, snapshot(target, recent[target.ID], now))
	}

	summary := savings.Summarize(snapshots)
	c.JSON(http.StatusOK, TargetSummaryResponse{Data: &summary})
}

// @Summary		Get savings target
// @Description	Returns a specific savings target with its metrics
// @Tags			Targets
// @Produce		json
// @Success		200	{object}	TargetResponse
// @Failure		400	{object}	TargetResponse
// @Failure		404	{object}	TargetResponse
// @Failure		500	{object}	TargetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/targets/{id} [get]
func GetTarget(c *gin.Context) {
	target, ok := ownedResource[models.SavingsTarget](c)
	if !ok {
		return
	}

	data, err := loadTarget(c, target)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TargetResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TargetResponse{Data: &data})
}

// @Summary		Update savings target
// @Description	Updates an existing savings target. Only values to be updated need to be specified. The current amount is not changed.
// @Tags			Targets
// @Accept			json
// @Produce		json
// @Success		200		{object}	TargetResponse
// @Failure		400		{object}	TargetResponse
// @Failure		404		{object}	TargetResponse
// @Failure		500		{object}	TargetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			target	body		TargetEditable	true	"Savings target"
// @Router			/v1/targets/{id} [patch]
func UpdateTarget(c *gin.Context) {
	target, ok := ownedResource[models.SavingsTarget](c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TargetEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TargetResponse{
			Error: &e,
		})
		return
	}

	var data TargetEditable
	if err := httputil.BindData(c, &data); err != nil {
		e := err.Error()
		c.JSON(status(err), TargetResponse{
			Error: &e,
		})
		return
	}

	if len(updateFields) > 0 {
		err = models.DB.Model(&target).Select("", updateFields...).Updates(data.model(target.UserID)).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), TargetResponse{
				Error: &e,
			})
			return
		}
	}

	r, err := loadTarget(c, target)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TargetResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TargetResponse{Data: &r})
}

// @Summary		Delete savings target
// @Description	Deletes a savings target with all of its allocations. The transactions that funded them are kept.
// @Tags			Targets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/targets/{id} [delete]
func DeleteTarget(c *gin.Context) {
	target, ok := ownedResource[models.SavingsTarget](c)
	if !ok {
		return
	}

	err := models.DeleteSavingsTarget(models.DB, target)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get allocations of a savings target
// @Description	Returns the allocations to a savings target, newest first, with the transactions that funded them
// @Tags			Targets
// @Produce		json
// @Success		200	{object}	TargetAllocationListResponse
// @Failure		400	{object}	TargetAllocationListResponse
// @Failure		404	{object}	TargetAllocationListResponse
// @Failure		500	{object}	TargetAllocationListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/targets/{id}/allocations [get]
func GetTargetAllocations(c *gin.Context) {
	target, ok := ownedResource[models.SavingsTarget](c)
	if !ok {
		return
	}

	allocations, err := models.TargetAllocations(models.DB, target.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TargetAllocationListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	data := make([]TargetAllocation, 0, len(allocations))
	for i := range allocations {
		a := &allocations[i]
		data = append(data, TargetAllocation{
			AllocationShare: *newAllocationShare(a),
			Transaction:     newTransaction(url, a.Transaction, &a.Transaction.Category, nil),
		})
	}

	c.JSON(http.StatusOK, TargetAllocationListResponse{Data: data})
}

// userTargets loads the targets of the user ordered by target date
// together with their allocations in the averaging window.
func userTargets(userID uuid.UUID, now time.Time) ([]models.SavingsTarget, map[uuid.UUID][]models.Allocation, error) {
	var targets []models.SavingsTarget
	err := models.DB.
		Scopes(models.OwnedBy(userID)).
		Order("datetime(target_date) ASC, name ASC").
		Find(&targets).Error
	if err != nil {
		return nil, nil, err
	}

	recent, err := models.AllocationsSince(models.DB, userID, now.AddDate(0, -savings.AverageWindow, 0))
	if err != nil {
		return nil, nil, err
	}

	return targets, recent, nil
}

// loadTarget builds the API resource for a single target.
func loadTarget(c *gin.Context, target models.SavingsTarget) (Target, error) {
	now := time.Now()

	recent, err := models.AllocationsSince(models.DB, target.UserID, now.AddDate(0, -savings.AverageWindow, 0))
	if err != nil {
		return Target{}, err
	}

	return newTarget(c.GetString(string(models.DBContextURL)), target, snapshot(target, recent[target.ID], now)), nil
}
