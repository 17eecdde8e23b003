package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Available is decremented by checkout; nothing
// else mutates it. WeightKg is meaningful only when NeedsShipping is set.
type Product struct {
	Name          string
	Price         decimal.Decimal
	Available     int
	ExpiresAt     *time.Time
	NeedsShipping bool
	WeightKg      decimal.Decimal
}

// Expired reports whether the product's expiry date lies strictly before the
// calendar date of at. A nil ExpiresAt means the product never expires.
func (p *Product) Expired(at time.Time) bool {
	if p.ExpiresAt == nil {
		return false
	}
	return dateOf(*p.ExpiresAt).Before(dateOf(at))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
