package app

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cart "github.com/dwikikusuma/pos-checkout/internal/cart/domain"
	catalog "github.com/dwikikusuma/pos-checkout/internal/catalog/domain"
)

func shippable(name string, weightKg float64) *catalog.Product {
	return &catalog.Product{
		Name:          name,
		Price:         decimal.NewFromInt(100),
		Available:     10,
		NeedsShipping: true,
		WeightKg:      decimal.NewFromFloat(weightKg),
	}
}

func TestPlanExpandsLinesIntoUnits(t *testing.T) {
	svc := NewService(decimal.NewFromInt(30))

	items := []cart.CartItem{
		{Product: shippable("Cheese", 0.4), Quantity: 2},
		{Product: shippable("TV", 15.0), Quantity: 1},
		{Product: &catalog.Product{Name: "ScratchCard", Price: decimal.NewFromInt(50), Available: 20}, Quantity: 1},
	}

	m, fee := svc.Plan(items)

	require.Len(t, m.Units, 3)
	assert.Equal(t, "Cheese", m.Units[0].Name)
	assert.Equal(t, "Cheese", m.Units[1].Name)
	assert.Equal(t, "TV", m.Units[2].Name)
	assert.Equal(t, "15.8", m.TotalWeightKg.String())
	assert.Equal(t, "474", fee.String())
}

func TestPlanNoShippableUnits(t *testing.T) {
	svc := NewService(decimal.NewFromInt(30))

	items := []cart.CartItem{
		{Product: &catalog.Product{Name: "ScratchCard", Price: decimal.NewFromInt(50), Available: 20}, Quantity: 3},
	}

	m, fee := svc.Plan(items)

	assert.Empty(t, m.Units)
	assert.True(t, fee.IsZero(), "fee must be zero with no shippable units, got %s", fee)
}

func TestPlanZeroWeightUnitStillShips(t *testing.T) {
	svc := NewService(decimal.NewFromInt(30))

	m, fee := svc.Plan([]cart.CartItem{{Product: shippable("Voucher", 0), Quantity: 1}})

	require.Len(t, m.Units, 1)
	assert.True(t, fee.IsZero())
}

func TestPlanCustomRate(t *testing.T) {
	svc := NewService(decimal.NewFromInt(10))

	_, fee := svc.Plan([]cart.CartItem{{Product: shippable("TV", 2.0), Quantity: 1}})

	assert.Equal(t, "20", fee.String())
}

func TestNewServiceDefaultsRate(t *testing.T) {
	svc := NewService(decimal.Zero)

	_, fee := svc.Plan([]cart.CartItem{{Product: shippable("TV", 1.0), Quantity: 1}})

	assert.Equal(t, "30", fee.String())
}
