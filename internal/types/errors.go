package types

import "errors"

var (
	ErrMonthInvalid = errors.New("the month must be between 1 and 12")
	ErrYearInvalid  = errors.New("the year must be between 1 and 9999")
	ErrIDInvalid    = errors.New("the specified resource ID is not a valid UUID")
)
