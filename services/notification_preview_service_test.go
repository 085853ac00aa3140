package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

func previewOrder() models.Order {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	return models.Order{
		ID:            "ORD-001",
		CustomerName:  "Nguyen Van An",
		RecipientName: "Nguyen Van An",
		Address:       "123 Le Loi",
		Items: []models.OrderItem{
			{ProductID: "PH_001", ProductName: "iPhone 15", Price: 29990000, Quantity: 1, LineTotal: 29990000},
		},
		Subtotal:          29990000,
		Discount:          500000,
		Total:             29490000,
		EstimatedDelivery: now.Add(72 * time.Hour),
	}
}

func TestRenderOrderEmailPreview(t *testing.T) {
	html, err := RenderOrderEmailPreview(previewOrder())
	require.NoError(t, err)
	assert.Contains(t, html, "ORD-001")
	assert.Contains(t, html, "Nguyen Van An")
	assert.Contains(t, html, "iPhone 15")
	assert.Contains(t, html, "29.490.000 ₫")
	assert.Contains(t, html, "500.000 ₫")
}

func TestRenderOrderEmailPreviewWithoutDiscount(t *testing.T) {
	order := previewOrder()
	order.Discount = 0
	html, err := RenderOrderEmailPreview(order)
	require.NoError(t, err)
	assert.NotContains(t, html, ">Discount<")
}

func TestRenderOrderSMSPreview(t *testing.T) {
	sms := RenderOrderSMSPreview(previewOrder())
	assert.Contains(t, sms, "ORD-001")
	assert.Contains(t, sms, "29.490.000 ₫")
	assert.Contains(t, sms, "COD")
}
