// Package checkout holds the pricing rules and payload assembly for
// placing an order.
package checkout

import (
	"time"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// PricingPolicy is the storefront discount rule: a flat amount off once
// the subtotal strictly exceeds the threshold.
type PricingPolicy struct {
	Threshold float64
	Discount  float64
}

func (p PricingPolicy) Subtotal(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// DiscountFor applies strictly-greater-than: a subtotal exactly at the
// threshold earns nothing.
func (p PricingPolicy) DiscountFor(subtotal float64) float64 {
	if subtotal > p.Threshold {
		return p.Discount
	}
	return 0
}

// Summarize computes the cart totals shown alongside the line items.
func (p PricingPolicy) Summarize(items []models.CartItem) models.CartSummary {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	subtotal := p.Subtotal(items)
	discount := p.DiscountFor(subtotal)
	return models.CartSummary{
		ItemCount: count,
		Subtotal:  subtotal,
		Discount:  discount,
		Total:     subtotal - discount,
	}
}

// BuildPayload reduces cart lines to product id and quantity for the
// upstream checkout call. Prices never travel with the request: the
// upstream API prices the order from its own catalog.
func BuildPayload(req models.CheckoutRequest, items []models.CartItem, customerID int) models.CheckoutPayload {
	lines := make([]models.CheckoutItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.CheckoutItem{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}
	return models.CheckoutPayload{
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		RecipientName:  req.RecipientName,
		RecipientPhone: req.RecipientPhone,
		Address:        req.Address,
		Note:           req.Note,
		Items:          lines,
		CustomerID:     customerID,
	}
}

// BuildConfirmation merges the upstream echo with the submitted contact
// details into the order confirmation. Totals and line items come from
// the echo only; delivery is estimated at 72 hours out.
func BuildConfirmation(req models.CheckoutRequest, resp models.CheckoutResponse, customerID int, now time.Time) models.Order {
	items := make([]models.OrderItem, 0, len(resp.Items))
	for _, line := range resp.Items {
		items = append(items, models.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Price:       line.UnitPrice,
			Quantity:    line.Quantity,
			LineTotal:   line.LineTotal,
		})
	}
	status := resp.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	return models.Order{
		ID:                resp.ID,
		CustomerID:        customerID,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		RecipientName:     req.RecipientName,
		RecipientPhone:    req.RecipientPhone,
		Address:           req.Address,
		Note:              req.Note,
		Items:             items,
		Subtotal:          resp.Subtotal,
		Discount:          resp.Discount,
		Total:             resp.Total,
		Status:            status,
		PaymentMethod:     models.PaymentMethodCOD,
		CreatedAt:         now,
		UpdatedAt:         now,
		EstimatedDelivery: now.Add(72 * time.Hour),
	}
}
