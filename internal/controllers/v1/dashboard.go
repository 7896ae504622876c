package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kasku/backend/internal/dashboard"
	"github.com/kasku/backend/internal/httputil"
	"github.com/kasku/backend/internal/models"
	"github.com/kasku/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns totals, expenses by category, the savings stage and the 30 day savings trend.
// @Description	Totals and expenses are limited to the month if one is given; the trend always covers the last 30 days.
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	DashboardResponse
// @Failure		400		{object}	DashboardResponse
// @Failure		500		{object}	DashboardResponse
// @Param			month	query		int	false	"Month, 1 to 12. Requires year"
// @Param			year	query		int	false	"Year. Requires month"
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	var period QueryPeriod
	if err := c.Bind(&period); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{
			Error: &e,
		})
		return
	}

	month, monthSet, err := period.month()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	data, err := buildDashboard(currentUser(c), month, monthSet, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}

func buildDashboard(userID uuid.UUID, month types.Month, monthSet bool, now time.Time) (Dashboard, error) {
	var from, until time.Time
	if monthSet {
		from, until = month.Start(), month.End()
	}

	transactions, err := periodTransactions(userID, from, until)
	if err != nil {
		return Dashboard{}, err
	}

	totals := dashboard.Sum(movements(transactions))

	saved, err := targetsTotal(userID)
	if err != nil {
		return Dashboard{}, err
	}

	expenses, err := expenseByCategory(userID, from, until)
	if err != nil {
		return Dashboard{}, err
	}

	// The series is independent of the month filter
	seriesStart := startOfDay(now).AddDate(0, 0, -(dashboard.SeriesDays - 1))
	recent, err := periodTransactions(userID, seriesStart, time.Time{})
	if err != nil {
		return Dashboard{}, err
	}

	series := dashboard.DailySeries(movements(recent), now)
	last7, last30 := dashboard.Growth(series)
	change, momentum := dashboard.MomentumOf(series)

	rate := dashboard.SavingsRate(totals.Income, totals.Expense)
	total := dashboard.TotalSavings(saved, totals.Balance)

	return Dashboard{
		Totals:            totals,
		SavingsRate:       rate,
		HealthText:        dashboard.HealthText(rate),
		TotalSavings:      total,
		ExpenseByCategory: expenses,
		Level:             dashboard.LevelOf(total),
		Series:            series,
		Last7DaysGrowth:   last7,
		Last30DaysGrowth:  last30,
		MomentumChange:    change,
		Momentum:          momentum,
	}, nil
}

// periodTransactions returns the transactions of the user in the date
// range, newest first. Zero times leave the respective side open.
func periodTransactions(userID uuid.UUID, from, until time.Time) ([]models.Transaction, error) {
	q := models.DB.
		Scopes(models.OwnedBy(userID)).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC")

	if !from.IsZero() {
		q = q.Where("transactions.date >= ?", from.In(time.UTC))
	}

	if !until.IsZero() {
		q = q.Where("transactions.date < ?", until.In(time.UTC))
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	return transactions, err
}

func movements(transactions []models.Transaction) []dashboard.Movement {
	m := make([]dashboard.Movement, 0, len(transactions))
	for _, t := range transactions {
		m = append(m, dashboard.Movement{
			Date:   t.Date,
			Amount: t.Amount,
			Income: t.Type == models.TypeIncome,
		})
	}

	return m
}

// targetsTotal is the amount saved in all targets of the user.
func targetsTotal(userID uuid.UUID) (decimal.Decimal, error) {
	var targets []models.SavingsTarget
	err := models.DB.Scopes(models.OwnedBy(userID)).Find(&targets).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, t := range targets {
		total = total.Add(t.CurrentAmount)
	}

	return total, nil
}

func expenseByCategory(userID uuid.UUID, from, until time.Time) ([]dashboard.CategoryExpense, error) {
	totals, err := models.CategoryTotals(models.DB, userID, models.TypeExpense, from, until)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	err = models.DB.Scopes(models.OwnedBy(userID)).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	expenses := make([]dashboard.CategoryExpense, 0, len(totals))
	for _, t := range totals {
		category, ok := byID[t.CategoryID]
		if !ok {
			expenses = append(expenses, dashboard.Uncategorized(t.Amount))
			continue
		}

		expenses = append(expenses, dashboard.CategoryExpense{
			Category: category.Name,
			Amount:   t.Amount,
			Color:    category.Color,
			Icon:     category.Icon,
		})
	}

	dashboard.SortExpenses(expenses)
	return expenses, nil
}
