// Package pricing holds the pure discount arithmetic used by checkout.
// The companion eligibility predicate (active, in scope for the product,
// under its usage limit, not expired) lives in the WHERE clause of
// db.GetUsableDiscountCode so ineligible codes are filtered at query time.
package pricing

import "github.com/Dilvanejennifer/ecommerce-dash/internal/db"

// DiscountedAmountCents returns the payable amount for a base price after
// applying code. PERCENTAGE subtracts discount_amount percent of the base
// (integer math — the discount rounds down, so the amount rounds up); FIXED
// subtracts discount_amount whole currency units. The result is clamped to
// [1, basePriceCents]: the processor rejects zero-amount intents, and an
// order never costs more than the product's base price.
func DiscountedAmountCents(code db.DiscountCode, basePriceCents int64) int64 {
	var amount int64
	switch code.DiscountType {
	case db.DiscountTypePERCENTAGE:
		amount = basePriceCents - basePriceCents*int64(code.DiscountAmount)/100
	case db.DiscountTypeFIXED:
		amount = basePriceCents - int64(code.DiscountAmount)*100
	default:
		return basePriceCents
	}
	if amount < 1 {
		return 1
	}
	if amount > basePriceCents {
		return basePriceCents
	}
	return amount
}
