// Package render prints shipment notices and receipts as plain text. Line
// formats are a compatibility contract: product names are left-justified in a
// 12-character field, money and gram values are truncated to integers, and
// the package weight is printed in kilograms to one decimal place.
package render

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	checkout "github.com/dwikikusuma/pos-checkout/internal/checkout/domain"
	shipping "github.com/dwikikusuma/pos-checkout/internal/shipping/domain"
)

var grams = decimal.NewFromInt(1000)

func ShipmentNotice(w io.Writer, m shipping.Manifest) error {
	if _, err := fmt.Fprintln(w, "** Shipment notice **"); err != nil {
		return err
	}
	for _, u := range m.Units {
		if _, err := fmt.Fprintf(w, "1x %-12s %dg\n", u.Name, u.WeightKg.Mul(grams).IntPart()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total package weight %skg\n\n", m.TotalWeightKg.StringFixed(1))
	return err
}

func Receipt(w io.Writer, s checkout.Summary) error {
	if _, err := fmt.Fprintln(w, "** Checkout receipt **"); err != nil {
		return err
	}
	for _, l := range s.Lines {
		if _, err := fmt.Fprintf(w, "%dx %-12s %d\n", l.Quantity, l.Name, l.LineTotal.IntPart()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "---------------------"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Subtotal         %d\n", s.Subtotal.IntPart()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Shipping         %d\n", s.ShippingFee.IntPart()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Amount           %d\n\n", s.Total.IntPart())
	return err
}
