package services

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/utils"
)

// Notification previews only. Nothing here sends anything; the admin
// console renders these so staff can see what a buyer would receive.

var orderEmailTemplate = template.Must(template.New("orderEmail").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; color: #262622; margin: 0; }
    .wrap { max-width: 600px; margin: 0 auto; padding: 24px; }
    .header { font-size: 20px; font-weight: bold; }
    .muted { color: #79776d; font-size: 13px; }
    table { width: 100%; border-collapse: collapse; margin-top: 16px; }
    th, td { text-align: left; padding: 8px 4px; border-bottom: 1px solid #e5e5e0; font-size: 14px; }
    td.num, th.num { text-align: right; }
    .total { font-weight: bold; }
  </style>
</head>
<body>
  <div class="wrap">
    <div class="header">ElectroStore</div>
    <p>Hi {{.Order.CustomerName}},</p>
    <p>Thank you for your order <strong>#{{.Order.ID}}</strong>. We are preparing it for delivery.</p>
    <table>
      <tr><th>Item</th><th class="num">Qty</th><th class="num">Price</th><th class="num">Total</th></tr>
      {{range .Order.Items}}
      <tr>
        <td>{{.ProductName}}</td>
        <td class="num">{{.Quantity}}</td>
        <td class="num">{{index $.Prices .ProductID}}</td>
        <td class="num">{{index $.LineTotals .ProductID}}</td>
      </tr>
      {{end}}
      <tr><td colspan="3" class="num">Subtotal</td><td class="num">{{.Subtotal}}</td></tr>
      {{if .HasDiscount}}<tr><td colspan="3" class="num">Discount</td><td class="num">-{{.Discount}}</td></tr>{{end}}
      <tr class="total"><td colspan="3" class="num">Total</td><td class="num">{{.Total}}</td></tr>
    </table>
    <p>Delivery to: {{.Order.RecipientName}}, {{.Order.Address}}</p>
    <p>Estimated delivery: {{.Order.EstimatedDelivery.Format "Jan 02, 2006"}} (payment on delivery)</p>
    <p class="muted">This is a preview of the order confirmation email.</p>
  </div>
</body>
</html>`))

type orderEmailData struct {
	Order       models.Order
	Prices      map[string]string
	LineTotals  map[string]string
	Subtotal    string
	Discount    string
	Total       string
	HasDiscount bool
}

// RenderOrderEmailPreview renders the order confirmation email as HTML.
func RenderOrderEmailPreview(order models.Order) (string, error) {
	prices := make(map[string]string, len(order.Items))
	lineTotals := make(map[string]string, len(order.Items))
	for _, item := range order.Items {
		prices[item.ProductID] = utils.FormatVND(item.Price)
		lineTotals[item.ProductID] = utils.FormatVND(item.LineTotal)
	}

	var buf bytes.Buffer
	err := orderEmailTemplate.Execute(&buf, orderEmailData{
		Order:       order,
		Prices:      prices,
		LineTotals:  lineTotals,
		Subtotal:    utils.FormatVND(order.Subtotal),
		Discount:    utils.FormatVND(order.Discount),
		Total:       utils.FormatVND(order.Total),
		HasDiscount: order.Discount > 0,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderOrderSMSPreview renders the short order confirmation SMS text.
func RenderOrderSMSPreview(order models.Order) string {
	return fmt.Sprintf(
		"ElectroStore: don hang #%s da duoc xac nhan. Tong: %s (COD). Du kien giao: %s.",
		order.ID,
		utils.FormatVND(order.Total),
		order.EstimatedDelivery.Format("02/01/2006"),
	)
}
