package app

import (
	"errors"
	"fmt"

	"github.com/dwikikusuma/pos-checkout/internal/cart/domain"
	catalog "github.com/dwikikusuma/pos-checkout/internal/catalog/domain"
	"github.com/dwikikusuma/pos-checkout/pkg/clock"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrOutOfStock     = errors.New("not enough stock")
	ErrExpiredProduct = errors.New("product is expired")
)

type Service struct {
	clock clock.Clock
}

func NewService(clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.System{}
	}
	return &Service{
		clock: clk,
	}
}

// Add validates stock and expiry at call time and appends the item. Stock is
// not reserved: a later Add against the same product sees the original
// availability.
func (s *Service) Add(c *domain.Cart, p *catalog.Product, qty int) error {
	if c == nil || p == nil || qty <= 0 {
		return ErrInvalidInput
	}
	if p.Price.IsNegative() || p.WeightKg.IsNegative() {
		return fmt.Errorf("product %s: %w", p.Name, ErrInvalidInput)
	}
	if qty > p.Available {
		return fmt.Errorf("product %s: %w", p.Name, ErrOutOfStock)
	}
	if p.Expired(s.clock.Now()) {
		return fmt.Errorf("product %s: %w", p.Name, ErrExpiredProduct)
	}

	c.Append(domain.CartItem{
		Product:  p,
		Quantity: qty,
	})
	return nil
}
