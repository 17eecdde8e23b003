package domain

import "github.com/shopspring/decimal"

type Line struct {
	Name      string
	Quantity  int
	LineTotal decimal.Decimal
}

// Summary is the priced outcome of a successful checkout. ID is assigned per
// attempt and shows up in logs, not on the printed receipt.
type Summary struct {
	ID          string
	Lines       []Line
	Subtotal    decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
}
