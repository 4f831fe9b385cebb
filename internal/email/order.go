package email

import (
	"fmt"
	"time"

	"github.com/whereroomsbegin/payments-api/domain"
)

// Item is one paid line of the order as shown in the emails.
type Item struct {
	Description string
	AmountPence int64
}

// Order is the view of a completed checkout session that both email
// templates render from. It is built transiently per webhook delivery
// and never stored.
type Order struct {
	SessionID       string
	PaymentIntentID string
	Reference       string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	VoucherCode   string

	Rooms  []Item
	Addons []Item

	// AmountTotalPence is the processor's final charged amount.
	AmountTotalPence int64

	// Discount breakdown, read back from session metadata as decimal
	// pound amounts.
	Subtotal          float64
	MultiRoomDiscount float64
	VoucherDiscount   float64
	TotalDiscount     float64

	CreatedAt time.Time
}

// HasSavings reports whether the savings section is rendered at all.
func (o Order) HasSavings() bool {
	return o.TotalDiscount > 0
}

// TotalPaid renders the charged amount in pounds.
func (o Order) TotalPaid() string {
	return domain.Pounds(o.AmountTotalPence)
}

// OrderDate formats the session creation time for the ops email.
func (o Order) OrderDate() string {
	return o.CreatedAt.Format("02 Jan 2006, 15:04")
}

// CustomerSubject is the subject line of the receipt email.
const CustomerSubject = "Booking Confirmation"

// OpsSubject is the subject line of the internal notification.
func OpsSubject(o Order) string {
	return fmt.Sprintf("New Order from %s - £%s", o.CustomerName, o.TotalPaid())
}
