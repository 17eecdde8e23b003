package domain

import (
	catalog "github.com/dwikikusuma/pos-checkout/internal/catalog/domain"
)

// CartItem pins a product reference to a requested quantity. Items are
// immutable once appended.
type CartItem struct {
	Product  *catalog.Product
	Quantity int
}

// Cart holds items in insertion order, which is also the order they are
// priced and printed. The cart owns its items but not the products they
// point at.
type Cart struct {
	items []CartItem
}

func (c *Cart) Append(item CartItem) {
	c.items = append(c.items, item)
}

func (c *Cart) Items() []CartItem {
	return c.items
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}
