// Package services provides the quote domain logic: catalog normalization,
// cart accumulation, discount pricing and document generation.
package services

// DiscountedUnit returns the unit price after applying a percentage discount
// to the list price.
func DiscountedUnit(listPrice, discountPercent float64) float64 {
	return listPrice * (1.0 - discountPercent/100.0)
}

// PricedLine is a cart line with its derived amounts.
type PricedLine struct {
	CartLine
	UnitPrice float64
	LineTotal float64
}

// QuoteTotals is the priced view of a cart at a given discount rate.
type QuoteTotals struct {
	Lines      []PricedLine
	GrandTotal float64
}

// Totals computes discounted unit prices, line totals and the grand total for
// the cart. It is a pure function of the stored lines: calling it repeatedly
// with different discount rates never mutates the cart.
func (c *Cart) Totals(discountPercent float64) QuoteTotals {
	totals := QuoteTotals{Lines: make([]PricedLine, 0, len(c.lines))}
	for _, l := range c.lines {
		unit := DiscountedUnit(l.ListPrice, discountPercent)
		lineTotal := unit * float64(l.Quantity)
		totals.Lines = append(totals.Lines, PricedLine{
			CartLine:  l,
			UnitPrice: unit,
			LineTotal: lineTotal,
		})
		totals.GrandTotal += lineTotal
	}
	return totals
}
