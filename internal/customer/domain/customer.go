package domain

import "github.com/shopspring/decimal"

// Customer holds the shopper's identity and spendable balance. Checkout
// debits Balance in place.
type Customer struct {
	Name    string
	Balance decimal.Decimal
}
