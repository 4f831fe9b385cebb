package email

import (
	"html/template"
	"strconv"

	"github.com/whereroomsbegin/payments-api/domain"
)

var tmplFuncs = template.FuncMap{
	"pounds": domain.Pounds,
	"money": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 2, 64)
	},
}

var customerTmpl = template.Must(template.New("customer").Funcs(tmplFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Booking Confirmation</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Arial, sans-serif; background-color: #ffffff; color: #000000;">

  <table cellpadding="0" cellspacing="0" style="width: 100%; max-width: 600px; margin: 0 auto; padding: 60px 20px;">
    <tr>
      <td>

        <div style="text-align: center; margin-bottom: 60px;">
          <h1 style="margin: 0; font-size: 24px; font-weight: 400; letter-spacing: 2px; text-transform: uppercase;">Booking Confirmed</h1>
        </div>

        <p style="margin: 0 0 40px 0; font-size: 16px; line-height: 1.6;">
          Hi {{.CustomerName}},
        </p>

        <p style="margin: 0 0 40px 0; font-size: 16px; line-height: 1.6;">
          Thank you for your booking. Your payment has been successfully processed.
        </p>

        <div style="margin: 40px 0;">
          <h2 style="margin: 0 0 20px 0; font-size: 14px; font-weight: 400; letter-spacing: 2px; text-transform: uppercase; color: #000;">Room Packages</h2>
          <table style="width: 100%; border-collapse: collapse;">
            {{- range .Rooms}}
            <tr>
              <td style="padding: 12px 0; border-bottom: 1px solid #e5e5e5;">{{.Description}}</td>
              <td style="padding: 12px 0; border-bottom: 1px solid #e5e5e5; text-align: right;">£{{pounds .AmountPence}}</td>
            </tr>
            {{- end}}
          </table>
        </div>

        {{- if .Addons}}
        <div style="margin: 40px 0;">
          <h2 style="margin: 0 0 20px 0; font-size: 14px; font-weight: 400; letter-spacing: 2px; text-transform: uppercase; color: #000;">Add-ons</h2>
          <table style="width: 100%; border-collapse: collapse;">
            {{- range .Addons}}
            <tr>
              <td style="padding: 12px 0; border-bottom: 1px solid #e5e5e5;">{{.Description}}</td>
              <td style="padding: 12px 0; border-bottom: 1px solid #e5e5e5; text-align: right;">£{{pounds .AmountPence}}</td>
            </tr>
            {{- end}}
          </table>
        </div>
        {{- end}}

        {{- if .HasSavings}}
        <div style="margin: 40px 0;">
          <h2 style="margin: 0 0 20px 0; font-size: 14px; font-weight: 400; letter-spacing: 2px; text-transform: uppercase; color: #000;">Savings</h2>
          <table style="width: 100%; border-collapse: collapse;">
            {{- if gt .MultiRoomDiscount 0.0}}
            <tr>
              <td style="padding: 8px 0; border-bottom: 1px solid #e5e5e5;">Multi-room discount (15%)</td>
              <td style="padding: 8px 0; border-bottom: 1px solid #e5e5e5; text-align: right;">-£{{money .MultiRoomDiscount}}</td>
            </tr>
            {{- end}}
            {{- if gt .VoucherDiscount 0.0}}
            <tr>
              <td style="padding: 8px 0; border-bottom: 1px solid #e5e5e5;">Voucher ({{.VoucherCode}})</td>
              <td style="padding: 8px 0; border-bottom: 1px solid #e5e5e5; text-align: right;">-£{{money .VoucherDiscount}}</td>
            </tr>
            {{- end}}
            <tr>
              <td style="padding: 12px 0;">Total savings</td>
              <td style="padding: 12px 0; text-align: right;">-£{{money .TotalDiscount}}</td>
            </tr>
          </table>
        </div>
        {{- end}}

        <div style="margin: 40px 0; padding: 20px 0; border-top: 2px solid #000; border-bottom: 2px solid #000;">
          <table style="width: 100%;">
            <tr>
              <td style="font-size: 18px; letter-spacing: 1px;">Total paid</td>
              <td style="text-align: right; font-size: 18px; letter-spacing: 1px;">£{{.TotalPaid}}</td>
            </tr>
          </table>
        </div>

        <div style="margin: 40px 0;">
          <h2 style="margin: 0 0 20px 0; font-size: 14px; font-weight: 400; letter-spacing: 2px; text-transform: uppercase; color: #000;">Your Details</h2>
          <table style="width: 100%;">
            <tr>
              <td style="padding: 8px 0; width: 120px;">Name</td>
              <td style="padding: 8px 0;">{{.CustomerName}}</td>
            </tr>
            <tr>
              <td style="padding: 8px 0;">Email</td>
              <td style="padding: 8px 0;">{{.CustomerEmail}}</td>
            </tr>
            <tr>
              <td style="padding: 8px 0;">Phone</td>
              <td style="padding: 8px 0;">{{.CustomerPhone}}</td>
            </tr>
          </table>
        </div>

        <div style="margin: 60px 0 40px 0; padding: 40px; border: 1px solid #000;">
          <h2 style="margin: 0 0 30px 0; font-size: 14px; font-weight: 400; letter-spacing: 2px; text-transform: uppercase; text-align: center;">What's Next</h2>
          <table style="width: 100%; border-collapse: collapse;">
            <tr>
              <td style="padding: 20px 0; border-bottom: 1px solid #e5e5e5;">
                <div style="font-size: 16px; margin-bottom: 8px;">1. Schedule a meeting with us</div>
                <a href="https://calendly.com/" style="color: #000; text-decoration: underline;">Book your consultation →</a>
              </td>
            </tr>
            <tr>
              <td style="padding: 20px 0;">
                <div style="font-size: 16px; margin-bottom: 8px;">2. How to measure your room</div>
                <a href="https://cdn.prod.website-files.com/68fb85ec75c72f4adb7abbd4/6920b82fa56fbee1fc06f973_Measuring%20Your%20Room.pdf" style="color: #000; text-decoration: underline;">View measurement guide →</a>
              </td>
            </tr>
          </table>
        </div>

        <div style="margin-top: 60px; padding-top: 40px; border-top: 1px solid #e5e5e5; text-align: center; color: #666;">
          <p style="margin: 0 0 10px 0; font-size: 12px; line-height: 1.6;">
            This is an automated confirmation email.
          </p>
          <p style="margin: 0; font-size: 12px; line-height: 1.6;">
            Payment ID: {{.SessionID}}
          </p>
        </div>

      </td>
    </tr>
  </table>

</body>
</html>
`))

var opsTmpl = template.Must(template.New("ops").Funcs(tmplFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Order Notification</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Arial, sans-serif; background-color: #ffffff; color: #000000;">

  <table cellpadding="0" cellspacing="0" style="width: 100%; max-width: 600px; margin: 0 auto; padding: 60px 20px;">
    <tr>
      <td>

        <div style="margin-bottom: 40px; padding-bottom: 20px; border-bottom: 2px solid #000;">
          <h1 style="margin: 0 0 10px 0; font-size: 24px; font-weight: 400; letter-spacing: 2px; text-transform: uppercase;">New Order Received</h1>
          <p style="margin: 0; font-size: 14px; color: #666;">{{.OrderDate}}</p>
        </div>

        <div style="background: #f5f5f5; padding: 30px; margin-bottom: 40px;">
          <table style="width: 100%;">
            <tr>
              <td style="padding: 8px 0; width: 150px;">Order Total</td>
              <td style="padding: 8px 0; font-size: 24px;">£{{.TotalPaid}}</td>
            </tr>
            <tr>
              <td style="padding: 8px 0;">Payment Status</td>
              <td style="padding: 8px 0; color: #16a34a;">✓ Paid</td>
            </tr>
            <tr>
              <td style="padding: 8px 0;">Payment ID</td>
              <td style="padding: 8px 0; font-size: 12px; font-family: monospace;">{{.SessionID}}</td>
            </tr>
            {{- if .Reference}}
            <tr>
              <td style="padding: 8px 0;">Order Reference</td>
              <td style="padding: 8px 0; font-size: 12px; font-family: monospace;">{{.Reference}}</td>
            </tr>
            {{- end}}
          </table>
        </div>

        <div style="margin: 40px 0;">
          <h2 style="margin: 0 0 20px 0; font-size: 14px; font-weight: 400; letter-spacing: 2px; text-transform: uppercase;">Customer Details</h2>
          <table style="width: 100%; border-collapse: collapse;">
            <tr>
              <td style="padding: 12px 0; border-bottom: 1px solid #e5e5e5; width: 150px;">Name</td>
              <td style="padding: 12px 0; border-bottom: 1px solid #e5e5e5;">{{.CustomerName}}</td>
            </tr>
            <tr>
              <td style="padding: 12px 0; border-bottom: 1px solid #e5e5e5;">Email</td>
              <td style="padding: 12px 0; border-bottom: 1px solid #e5e5e5;"><a href="mailto:{{.CustomerEmail}}" style="color: #000; text-decoration: underline;">{{.CustomerEmail}}</a></td>
            </tr>
            <tr>
              <td style="padding: 12px 0; border-bottom: 1px solid #e5e5e5;">Phone</td>
              <td style="padding: 12px 0; border-bottom: 1px solid #e5e5e5;"><a href="tel:{{.CustomerPhone}}" style="color: #000; text-decoration: underline;">{{.CustomerPhone}}</a></td>
            </tr>
          </table>
        </div>

        <div style="margin: 40px 0;">
          <h2 style="margin: 0 0 20px 0; font-size: 14px; font-weight: 400; letter-spacing: 2px; text-transform: uppercase;">Order Items</h2>
          <table style="width: 100%; border-collapse: collapse;">
            {{- range .Rooms}}
            <tr>
              <td style="padding: 12px 0; border-bottom: 1px solid #e5e5e5;">{{.Description}}</td>
              <td style="padding: 12px 0; border-bottom: 1px solid #e5e5e5; text-align: right;">£{{pounds .AmountPence}}</td>
            </tr>
            {{- end}}
            {{- range .Addons}}
            <tr>
              <td style="padding: 12px 0; border-bottom: 1px solid #e5e5e5;">{{.Description}}</td>
              <td style="padding: 12px 0; border-bottom: 1px solid #e5e5e5; text-align: right;">£{{pounds .AmountPence}}</td>
            </tr>
            {{- end}}
            <tr>
              <td style="padding: 12px 0;">Subtotal</td>
              <td style="padding: 12px 0; text-align: right;">£{{money .Subtotal}}</td>
            </tr>
          </table>
        </div>

        {{- if .HasSavings}}
        <div style="margin: 30px 0;">
          <h2 style="margin: 0 0 15px 0; font-size: 14px; font-weight: 400; letter-spacing: 2px; text-transform: uppercase;">Discounts Applied</h2>
          <table style="width: 100%; border-collapse: collapse;">
            {{- if gt .MultiRoomDiscount 0.0}}
            <tr>
              <td style="padding: 8px 0;">Multi-room discount (15%)</td>
              <td style="padding: 8px 0; text-align: right;">-£{{money .MultiRoomDiscount}}</td>
            </tr>
            {{- end}}
            {{- if gt .VoucherDiscount 0.0}}
            <tr>
              <td style="padding: 8px 0;">Voucher ({{.VoucherCode}})</td>
              <td style="padding: 8px 0; text-align: right;">-£{{money .VoucherDiscount}}</td>
            </tr>
            {{- end}}
          </table>
        </div>
        {{- end}}

        <div style="margin: 40px 0; padding: 20px 0; border-top: 2px solid #000;">
          <table style="width: 100%;">
            <tr>
              <td style="font-size: 18px; letter-spacing: 1px;">Total Paid</td>
              <td style="text-align: right; font-size: 24px; letter-spacing: 1px;">£{{.TotalPaid}}</td>
            </tr>
          </table>
        </div>

        <div style="margin: 40px 0; padding: 30px; background: #000; color: #fff;">
          <h2 style="margin: 0 0 15px 0; font-size: 14px; font-weight: 400; letter-spacing: 2px; text-transform: uppercase;">Action Required</h2>
          <p style="margin: 0; font-size: 14px; line-height: 1.6;">
            Please reach out to {{.CustomerName}} to schedule their consultation and begin the design process.
          </p>
        </div>

        <div style="margin: 40px 0;">
          <table style="width: 100%; border-collapse: collapse;">
            <tr>
              <td style="padding: 15px 0; border-bottom: 1px solid #e5e5e5;">
                <a href="https://dashboard.stripe.com/test/payments/{{.PaymentIntentID}}" style="color: #000; text-decoration: underline;">View in Stripe Dashboard →</a>
              </td>
            </tr>
            <tr>
              <td style="padding: 15px 0;">
                <a href="mailto:{{.CustomerEmail}}" style="color: #000; text-decoration: underline;">Email Customer →</a>
              </td>
            </tr>
          </table>
        </div>

        <div style="margin-top: 60px; padding-top: 40px; border-top: 1px solid #e5e5e5; text-align: center; color: #666;">
          <p style="margin: 0; font-size: 12px;">
            This is an automated admin notification from Where Rooms Begin
          </p>
        </div>

      </td>
    </tr>
  </table>

</body>
</html>
`))
