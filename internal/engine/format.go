package engine

import "github.com/shopspring/decimal"

// formatMoney drops the fraction of whole amounts and keeps two digits otherwise
func formatMoney(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.StringFixed(0)
	}
	return d.StringFixed(2)
}
