package domain

import "github.com/shopspring/decimal"

// Unit is one physically shippable package. A cart line of quantity N
// contributes N units, each carrying the product's name and weight.
type Unit struct {
	Name     string
	WeightKg decimal.Decimal
}

type Manifest struct {
	Units         []Unit
	TotalWeightKg decimal.Decimal
}
