package app

import (
	"github.com/shopspring/decimal"

	cart "github.com/dwikikusuma/pos-checkout/internal/cart/domain"
	"github.com/dwikikusuma/pos-checkout/internal/shipping/domain"
)

// DefaultRatePerKg is the flat shipping rate charged per kilogram. Override
// via NewService (SHIPPING_RATE_PER_KG in the binary's config).
var DefaultRatePerKg = decimal.NewFromInt(30)

type Service struct {
	ratePerKg decimal.Decimal
}

func NewService(ratePerKg decimal.Decimal) *Service {
	if ratePerKg.IsZero() {
		ratePerKg = DefaultRatePerKg
	}
	return &Service{
		ratePerKg: ratePerKg,
	}
}

// Plan expands cart lines into individually shippable units and prices the
// shipment. Lines whose product does not need shipping contribute nothing.
// The fee is zero when no units exist, otherwise total weight times the
// per-kg rate.
func (s *Service) Plan(items []cart.CartItem) (domain.Manifest, decimal.Decimal) {
	var m domain.Manifest
	for _, it := range items {
		if !it.Product.NeedsShipping {
			continue
		}
		for i := 0; i < it.Quantity; i++ {
			m.Units = append(m.Units, domain.Unit{
				Name:     it.Product.Name,
				WeightKg: it.Product.WeightKg,
			})
			m.TotalWeightKg = m.TotalWeightKg.Add(it.Product.WeightKg)
		}
	}

	if len(m.Units) == 0 {
		return m, decimal.Zero
	}
	return m, m.TotalWeightKg.Mul(s.ratePerKg)
}
