package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cart "github.com/dwikikusuma/pos-checkout/internal/cart/domain"
	"github.com/dwikikusuma/pos-checkout/internal/checkout/domain"
	"github.com/dwikikusuma/pos-checkout/internal/checkout/render"
	customer "github.com/dwikikusuma/pos-checkout/internal/customer/domain"
	shipping "github.com/dwikikusuma/pos-checkout/internal/shipping/app"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type Service struct {
	shipping *shipping.Service
	out      io.Writer
	log      *slog.Logger
}

func NewService(shippingSvc *shipping.Service, out io.Writer, log *slog.Logger) *Service {
	return &Service{
		shipping: shippingSvc,
		out:      out,
		log:      log,
	}
}

// Checkout prices the cart, verifies the customer can pay, then applies the
// debit and stock decrements as one step and prints the shipment notice and
// receipt. Any failure returns before the first mutation, so a rejected
// checkout leaves customer and catalog state untouched.
func (s *Service) Checkout(ctx context.Context, cust *customer.Customer, c *cart.Cart) (domain.Summary, error) {
	if cust == nil || c == nil {
		return domain.Summary{}, ErrInvalidInput
	}

	id := uuid.NewString()

	if c.IsEmpty() {
		s.log.WarnContext(ctx, "checkout rejected",
			slog.String("checkout_id", id),
			slog.String("customer", cust.Name),
			slog.String("reason", "empty cart"),
		)
		return domain.Summary{}, ErrEmptyCart
	}

	items := c.Items()
	lines := make([]domain.Line, 0, len(items))
	subtotal := decimal.Zero
	for _, it := range items {
		lineTotal := it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		lines = append(lines, domain.Line{
			Name:      it.Product.Name,
			Quantity:  it.Quantity,
			LineTotal: lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	manifest, fee := s.shipping.Plan(items)
	total := subtotal.Add(fee)

	if cust.Balance.LessThan(total) {
		s.log.WarnContext(ctx, "checkout rejected",
			slog.String("checkout_id", id),
			slog.String("customer", cust.Name),
			slog.String("reason", "insufficient balance"),
			slog.String("total", total.String()),
			slog.String("balance", cust.Balance.String()),
		)
		return domain.Summary{}, fmt.Errorf("customer %s: %w", cust.Name, ErrInsufficientBalance)
	}

	cust.Balance = cust.Balance.Sub(total)
	for _, it := range items {
		it.Product.Available -= it.Quantity
	}

	if len(manifest.Units) > 0 {
		if err := render.ShipmentNotice(s.out, manifest); err != nil {
			return domain.Summary{}, fmt.Errorf("write shipment notice: %w", err)
		}
	}

	sum := domain.Summary{
		ID:          id,
		Lines:       lines,
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       total,
	}
	if err := render.Receipt(s.out, sum); err != nil {
		return domain.Summary{}, fmt.Errorf("write receipt: %w", err)
	}

	s.log.InfoContext(ctx, "checkout complete",
		slog.String("checkout_id", id),
		slog.String("customer", cust.Name),
		slog.Int("lines", len(lines)),
		slog.String("subtotal", subtotal.String()),
		slog.String("shipping_fee", fee.String()),
		slog.String("total", total.String()),
	)
	return sum, nil
}
