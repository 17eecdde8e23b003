package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	cartapp "github.com/dwikikusuma/pos-checkout/internal/cart/app"
	cartdomain "github.com/dwikikusuma/pos-checkout/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/pos-checkout/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/pos-checkout/internal/checkout/app"
	customerdomain "github.com/dwikikusuma/pos-checkout/internal/customer/domain"
	shippingapp "github.com/dwikikusuma/pos-checkout/internal/shipping/app"
	"github.com/dwikikusuma/pos-checkout/pkg/clock"
	"github.com/dwikikusuma/pos-checkout/pkg/config"
	"github.com/dwikikusuma/pos-checkout/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "pos",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	clk := clock.System{}
	carts := cartapp.NewService(clk)
	shipping := shippingapp.NewService(decimal.NewFromFloat(cfg.ShippingRatePerKg))
	checkout := checkoutapp.NewService(shipping, os.Stdout, log)

	cheeseExpiry := clk.Now().AddDate(0, 0, 7)
	cheese := &catalogdomain.Product{
		Name:          "Cheese",
		Price:         decimal.NewFromInt(100),
		Available:     10,
		ExpiresAt:     &cheeseExpiry,
		NeedsShipping: true,
		WeightKg:      decimal.NewFromFloat(0.4),
	}
	tv := &catalogdomain.Product{
		Name:          "TV",
		Price:         decimal.NewFromInt(5000),
		Available:     3,
		NeedsShipping: true,
		WeightKg:      decimal.NewFromFloat(15.0),
	}
	scratchCard := &catalogdomain.Product{
		Name:      "ScratchCard",
		Price:     decimal.NewFromInt(50),
		Available: 20,
	}

	john := &customerdomain.Customer{
		Name:    "John",
		Balance: decimal.NewFromInt(10000),
	}
	cart := &cartdomain.Cart{}

	adds := []struct {
		product *catalogdomain.Product
		qty     int
	}{
		{cheese, 2},
		{tv, 1},
		{scratchCard, 1},
	}
	for _, a := range adds {
		if err := carts.Add(cart, a.product, a.qty); err != nil {
			log.Error("add to cart failed", slog.Any("err", err))
			os.Exit(1)
		}
	}

	if _, err := checkout.Checkout(context.Background(), john, cart); err != nil {
		log.Error("checkout failed", slog.Any("err", err))
		os.Exit(1)
	}
}
