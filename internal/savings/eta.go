package savings

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ETA is a number of months until a target is reached. A target that
// will never be reached at the current pace has an infinite ETA.
type ETA float64

// Never is the ETA of a target without any saving pace.
var Never = ETA(math.Inf(1))

// Months is the whole number of months needed to save the amount at the
// given pace, rounded up. A pace that is not positive never gets there.
func Months(amount, pace decimal.Decimal) ETA {
	if !pace.IsPositive() {
		return Never
	}

	return ETA(amount.Div(pace).Ceil().InexactFloat64())
}

func (e ETA) IsInfinite() bool {
	return math.IsInf(float64(e), 1)
}

// Text renders the ETA for display.
func (e ETA) Text() string {
	switch {
	case e.IsInfinite():
		return "∞"
	case e < 1:
		return "Kurang dari 1 bulan"
	case e == 1:
		return "1 bulan"
	default:
		return fmt.Sprintf("%v bulan", float64(e))
	}
}

// MarshalJSON encodes an infinite ETA as null since JSON has no infinity.
func (e ETA) MarshalJSON() ([]byte, error) {
	if e.IsInfinite() {
		return []byte("null"), nil
	}

	return json.Marshal(float64(e))
}

func (e *ETA) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*e = Never
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}

	*e = ETA(f)
	return nil
}
