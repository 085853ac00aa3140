package order_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/services"
)

// DownloadOrderInvoicePDF godoc
// @Summary Download an order invoice
// @Description Render the order confirmation as a PDF invoice
// @Tags Orders
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {file} binary
// @Failure 404 {object} models.ApiResponse "Order not found or expired"
// @Failure 500 {object} models.ApiResponse "PDF generation failed"
// @Router /api/v1/orders/{id}/invoice [get]
func DownloadOrderInvoicePDF(c *gin.Context) {
	order, err := loadConfirmation(c.Param("id"))
	if err != nil || order.CustomerID != c.GetInt("userID") {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	buf, err := services.GenerateOrderInvoicePDF(order)
	if err != nil {
		log.Printf("[order.invoice] PDF generation failed for %s: %v", order.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, order.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
