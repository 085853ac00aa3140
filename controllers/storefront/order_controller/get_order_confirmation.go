package order_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// GetOrderConfirmation godoc
// @Summary Get an order confirmation
// @Description Fetch a stored confirmation. Buyers can only read their own orders.
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Order not found or expired"
// @Router /api/v1/orders/{id} [get]
func GetOrderConfirmation(c *gin.Context) {
	order, err := loadConfirmation(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}
	if order.CustomerID != c.GetInt("userID") {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order retrieved", order))
}
