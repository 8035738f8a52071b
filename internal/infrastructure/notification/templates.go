package notification

import (
	"fmt"
	"html/template"

	"github.com/griffix/backend/internal/domain/order"
)

var templateFuncs = template.FuncMap{
	"money": func(f float64) string { return fmt.Sprintf("%.2f", f) },
	"line":  func(qty int, price float64) string { return fmt.Sprintf("%.2f", price*float64(qty)) },
}

// emailData is the view model shared by both order emails.
type emailData struct {
	Order     *order.Order
	PayPalURL string
}

func newEmailData(o *order.Order, paypalMeURL string) emailData {
	data := emailData{Order: o}
	if paypalMeURL != "" {
		data.PayPalURL = fmt.Sprintf("%s/%.2f", paypalMeURL, o.Total)
	}
	return data
}

const ownerTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="background:#0f0f0f;margin:0;padding:32px;font-family:Helvetica,sans-serif;">
<div style="max-width:600px;margin:0 auto;background:#181818;border:1px solid #2a2a2a;">
  <div style="background:#D4FF00;padding:20px 28px;">
    <h1 style="margin:0;font-size:22px;color:#0f0f0f;text-transform:uppercase;">New Order — Griffix Racing</h1>
  </div>
  <div style="padding:28px;">
    <p style="color:#aaa;font-size:14px;">Order <strong style="color:#fff;">#{{.Order.OrderID}}</strong> received {{.Order.CreatedAt.Format "02 Jan 2006 15:04 MST"}}.</p>

    <h2 style="color:#fff;font-size:15px;text-transform:uppercase;">Customer</h2>
    <table style="width:100%;margin-bottom:24px;">
      <tr><td style="color:#777;font-size:13px;width:120px;">Name</td><td style="color:#e5e5e5;font-size:13px;">{{.Order.Customer.Name}}</td></tr>
      <tr><td style="color:#777;font-size:13px;">Email</td><td style="color:#e5e5e5;font-size:13px;">{{.Order.Customer.Email}}</td></tr>
      {{if .Order.Customer.Phone}}<tr><td style="color:#777;font-size:13px;">Phone</td><td style="color:#e5e5e5;font-size:13px;">{{.Order.Customer.Phone}}</td></tr>{{end}}
    </table>

    <h2 style="color:#fff;font-size:15px;text-transform:uppercase;">Ship To</h2>
    <p style="color:#e5e5e5;font-size:13px;">
      {{.Order.Shipping.Address.Street1}}{{if .Order.Shipping.Address.Street2}}, {{.Order.Shipping.Address.Street2}}{{end}}<br>
      {{.Order.Shipping.Address.City}}, {{.Order.Shipping.Address.State}} {{.Order.Shipping.Address.Zip}}<br>
      {{.Order.Shipping.Address.Country}}
    </p>

    <h2 style="color:#fff;font-size:15px;text-transform:uppercase;">Items</h2>
    <table style="width:100%;border-collapse:collapse;">
      {{range .Order.Items}}
      <tr>
        <td style="padding:8px 12px;color:#ccc;font-size:14px;">{{.Name}}</td>
        <td style="padding:8px 12px;text-align:center;color:#ccc;">{{.Make}} {{.Model}} {{.Year}}</td>
        <td style="padding:8px 12px;text-align:center;color:#ccc;">{{.Qty}}</td>
        <td style="padding:8px 12px;text-align:right;color:#D4FF00;">${{line .Qty .Price}}</td>
      </tr>
      {{end}}
    </table>

    <table style="width:100%;margin-top:16px;">
      <tr><td style="color:#777;font-size:13px;">Subtotal</td><td style="text-align:right;color:#ccc;font-size:13px;">${{money .Order.Subtotal}}</td></tr>
      <tr><td style="color:#777;font-size:13px;">Shipping ({{.Order.Shipping.Provider}} {{.Order.Shipping.ServiceLevel}})</td><td style="text-align:right;color:#ccc;font-size:13px;">${{money .Order.Shipping.Amount}}</td></tr>
      <tr><td style="color:#fff;font-size:15px;font-weight:700;">Total</td><td style="text-align:right;color:#D4FF00;font-size:18px;font-weight:700;">${{money .Order.Total}}</td></tr>
    </table>

    <div style="background:#111;border:1px solid #2a2a2a;padding:16px;margin-top:28px;">
      <p style="color:#777;font-size:12px;margin:0 0 6px;text-transform:uppercase;">Payment Method</p>
      <p style="color:#e5e5e5;font-size:14px;margin:0;">{{.Order.PaymentMethod}}</p>
    </div>
  </div>
  <div style="padding:16px 28px;border-top:1px solid #2a2a2a;">
    <p style="color:#444;font-size:11px;margin:0;">Griffix Racing — Auto-generated order notification. Do not reply.</p>
  </div>
</div>
</body>
</html>`

const customerTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="background:#0f0f0f;margin:0;padding:32px;font-family:Helvetica,sans-serif;">
<div style="max-width:600px;margin:0 auto;background:#181818;border:1px solid #2a2a2a;">
  <div style="background:#D4FF00;padding:20px 28px;">
    <h1 style="margin:0;font-size:22px;color:#0f0f0f;text-transform:uppercase;">Order Confirmed</h1>
  </div>
  <div style="padding:28px;">
    <p style="color:#aaa;font-size:15px;line-height:1.6;">
      Thanks {{.Order.Customer.Name}}! Your order <strong style="color:#D4FF00;">#{{.Order.OrderID}}</strong> has been received.
      We'll get it packed and shipped within 48 hours.
    </p>

    <div style="background:#111;border-left:3px solid #D4FF00;padding:16px 20px;margin:24px 0;">
      <h2 style="color:#D4FF00;font-size:14px;text-transform:uppercase;margin:0 0 12px;">Payment Instructions</h2>
      <p style="color:#aaa;font-size:13px;margin:0 0 8px;">Total due: <strong style="color:#fff;font-size:16px;">${{money .Order.Total}} {{if .Order.Shipping.Currency}}{{.Order.Shipping.Currency}}{{else}}AUD{{end}}</strong></p>
      <p style="color:#aaa;font-size:13px;margin:0 0 4px;">Please include your order number <strong style="color:#D4FF00;">#{{.Order.OrderID}}</strong> in the payment reference.</p>
      {{if .PayPalURL}}<p style="color:#ccc;font-size:13px;margin:10px 0 0;">PayPal: <a href="{{.PayPalURL}}" style="color:#D4FF00;">{{.PayPalURL}}</a></p>{{end}}
    </div>

    <p style="color:#666;font-size:12px;">Order will not be dispatched until payment is confirmed. Questions? Reply to this email.</p>
  </div>
</div>
</body>
</html>`
