package domain

import "fmt"

// CombinedDiscount is the single amount attached to the session. The
// processor accepts one discount object per session, so the multi-room
// and voucher components are consolidated before it is created.
func CombinedDiscount(t Totals) float64 {
	return t.Discount + t.VoucherDiscount
}

// DiscountDescription synthesizes the human-readable coupon name shown
// to the payer during checkout.
func DiscountDescription(t Totals, v *Voucher) string {
	switch {
	case t.Discount > 0 && v != nil && t.VoucherDiscount > 0:
		return fmt.Sprintf("Multi-room (15%%) + Voucher %s (%s%%)", v.Code, DecimalString(v.Amount))
	case t.Discount > 0:
		return "Multi-room discount (15%)"
	case v != nil && t.VoucherDiscount > 0:
		return fmt.Sprintf("Voucher: %s (%s%%)", v.Code, DecimalString(v.Amount))
	default:
		return ""
	}
}
