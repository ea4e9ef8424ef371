package response

import (
	"github.com/shopspring/decimal"
)

// Decimal renders as a bare JSON number. It leaves the package-level
// decimal.MarshalJSONWithoutQuotes untouched.
type Decimal struct {
	decimal.Decimal
}

func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}
