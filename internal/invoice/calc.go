package invoice

import "github.com/shopspring/decimal"

// CalculateTotals derives {subtotal, gst, total} from the line items.
// Pure and deterministic: same items in, same totals out, no side effects.
//
// The rounding order is part of the contract:
//   - subtotal = round(sum of quantity*rate, 2)
//   - gst      = round(subtotal * 0.18, 2)
//   - total    = subtotal + gst (both already rounded, so exact)
//
// Non-numeric quantity or rate contributes zero instead of failing —
// the form may hand us half-typed input at any moment.
func CalculateTotals(items []LineItem) (subtotal, gst, total decimal.Decimal) {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(parseAmount(item.Quantity).Mul(parseAmount(item.Rate)))
	}

	subtotal = sum.Round(2)
	gst = subtotal.Mul(GSTRate).Round(2)
	total = subtotal.Add(gst)
	return subtotal, gst, total
}
