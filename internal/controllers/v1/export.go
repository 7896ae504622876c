package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kasku/backend/internal/dashboard"
	"github.com/kasku/backend/internal/export"
	"github.com/kasku/backend/internal/httputil"
	"github.com/kasku/backend/internal/models"
	"github.com/kasku/backend/internal/savings"
)

// RegisterExportRoutes registers the routes for the export with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Returns an XLSX workbook with the transactions of the month, all savings targets and a summary
// @Tags			Export
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	query		int	false	"Month, 1 to 12. Requires year"
// @Param			year	query		int	false	"Year. Requires month"
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	var period QueryPeriod
	if err := c.Bind(&period); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	month, monthSet, err := period.month()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	userID := currentUser(c)
	now := time.Now()

	d, err := buildDashboard(userID, month, monthSet, now)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	summary := export.Summary{
		Period:       "Semua",
		TotalIncome:  d.Income,
		TotalExpense: d.Expense,
		Balance:      d.Balance,
		TotalSavings: d.TotalSavings,
		SavingsRate:  d.SavingsRate,
	}
	if monthSet {
		summary.Period = month.Label()
	}

	var from, until time.Time
	if monthSet {
		from, until = month.Start(), month.End()
	}

	transactions, err := exportTransactions(userID, from, until)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	targets, err := exportTargets(userID, now)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var buf bytes.Buffer
	err = export.Write(&buf, summary, transactions, targets)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: models.ErrGeneral.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(now)))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

func exportTransactions(userID uuid.UUID, from, until time.Time) ([]export.Transaction, error) {
	transactions, err := periodTransactions(userID, from, until)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	err = models.DB.Scopes(models.OwnedBy(userID)).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	rows := make([]export.Transaction, 0, len(transactions))
	for _, t := range transactions {
		name, ok := names[t.CategoryID]
		if !ok {
			name = dashboard.UncategorizedName
		}

		rows = append(rows, export.Transaction{
			Income:      t.Type == models.TypeIncome,
			Category:    name,
			Description: t.Description,
			Amount:      t.Amount,
			Date:        t.Date,
		})
	}

	return rows, nil
}

func exportTargets(userID uuid.UUID, now time.Time) ([]export.Target, error) {
	targets, recent, err := userTargets(userID, now)
	if err != nil {
		return nil, err
	}

	rows := make([]export.Target, 0, len(targets))
	for _, t := range targets {
		s := snapshot(t, recent[t.ID], now)
		rows = append(rows, export.Target{
			Name:          t.Name,
			TargetAmount:  t.TargetAmount,
			CurrentAmount: t.CurrentAmount,
			Progress:      s.Metrics.ProgressPercent,
			TargetDate:    t.TargetDate,
			Status:        savings.StatusCopy(s.Metrics.TargetStatus).Text,
			ETA:           s.Metrics.ETAInMonths.Text(),
		})
	}

	return rows, nil
}
