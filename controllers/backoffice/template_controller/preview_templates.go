package template_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/services"
)

// sampleOrder feeds the previews so staff see a realistic rendering
// without touching real orders.
func sampleOrder() models.Order {
	now := time.Now()
	return models.Order{
		ID:             "ORD-SAMPLE-001",
		CustomerID:     1,
		CustomerName:   "Nguyen Van An",
		CustomerEmail:  "an.nguyen@example.com",
		CustomerPhone:  "0901234567",
		RecipientName:  "Nguyen Van An",
		RecipientPhone: "0901234567",
		Address:        "123 Le Loi, Quan 1, TP. Ho Chi Minh",
		Items: []models.OrderItem{
			{ProductID: "PH_001", ProductName: "iPhone 15 Pro Max", Price: 29990000, Quantity: 1, LineTotal: 29990000},
			{ProductID: "ACC_014", ProductName: "USB-C Charging Cable", Price: 249000, Quantity: 2, LineTotal: 498000},
		},
		Subtotal:          30488000,
		Discount:          500000,
		Total:             29988000,
		Status:            models.OrderStatusPending,
		PaymentMethod:     models.PaymentMethodCOD,
		CreatedAt:         now,
		UpdatedAt:         now,
		EstimatedDelivery: now.Add(72 * time.Hour),
	}
}

// PreviewTemplate godoc
// @Summary Preview a notification template
// @Description Render the order confirmation email (HTML) or SMS (text) with sample data. Nothing is sent.
// @Tags Backoffice - Templates
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Template kind" Enums(email, sms)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Unknown template kind"
// @Router /api/v1/backoffice/templates/{kind}/preview [get]
func PreviewTemplate(c *gin.Context) {
	order := sampleOrder()

	switch c.Param("kind") {
	case "email":
		html, err := services.RenderOrderEmailPreview(order)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to render template"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Template rendered", gin.H{
			"type":    "email",
			"subject": "Your ElectroStore order " + order.ID,
			"body":    html,
		}))
	case "sms":
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Template rendered", gin.H{
			"type": "sms",
			"body": services.RenderOrderSMSPreview(order),
		}))
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Template kind must be email or sms"))
	}
}
