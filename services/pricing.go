// Package services provides pricing, numbering and reporting logic for the
// workshop: quote totals, approval automation, dashboard aggregation.
package services

// DiscountCurrency and DiscountPercent are the two discount modes a quote
// can carry. The stored value matches what the editor toggle shows.
const (
	DiscountCurrency = "R$"
	DiscountPercent  = "%"
)

// QuoteItemInput is a single line of the quote editor: a quantity of
// something at a unit price. The material reference is irrelevant for math.
type QuoteItemInput struct {
	MaterialID  string
	Description string
	Quantity    float64
	UnitPrice   float64
}

// QuoteTotals is the result of a full pricing pass over a quote.
type QuoteTotals struct {
	Subtotal float64
	Total    float64
}

// ItemSubtotal returns quantity × unit price for one line.
func ItemSubtotal(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// CalcQuoteTotals sums all line subtotals and applies the discount.
// A percent discount scales the subtotal; a currency discount is subtracted
// as-is. A discount larger than the subtotal produces a negative total;
// the stored value must match what the editor showed, so no clamping.
func CalcQuoteTotals(items []QuoteItemInput, discount float64, discountType string) QuoteTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += ItemSubtotal(item.Quantity, item.UnitPrice)
	}

	total := subtotal - discount
	if discountType == DiscountPercent {
		total = subtotal * (1 - discount/100)
	}

	return QuoteTotals{
		Subtotal: subtotal,
		Total:    total,
	}
}
