package v1

import (
	"github.com/kasku/backend/internal/types"
)

type URIID struct {
	ID types.ID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// QueryPeriod selects a calendar month. Both parameters must be set
// together or not at all.
type QueryPeriod struct {
	Month int `form:"month" example:"3"`   // Month of the year, 1 to 12
	Year  int `form:"year" example:"2026"` // Year
}

// month returns the selected month. ok is false if no month was selected.
func (q QueryPeriod) month() (month types.Month, ok bool, err error) {
	if q.Month == 0 && q.Year == 0 {
		return types.Month{}, false, nil
	}

	if q.Month == 0 || q.Year == 0 {
		return types.Month{}, false, errMonthWithoutYear
	}

	month, err = types.ParseMonth(q.Month, q.Year)
	if err != nil {
		return types.Month{}, false, err
	}

	return month, true, nil
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
