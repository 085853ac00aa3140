package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// GetBackofficeOrders godoc
// @Summary List stored orders
// @Description Order confirmations placed through the storefront, newest first, filterable by order ID or name
// @Tags Backoffice - Orders
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search by order ID, customer name or recipient name"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Order store unavailable"
// @Router /api/v1/backoffice/orders [get]
func GetBackofficeOrders(c *gin.Context) {
	orders, err := listConfirmations()
	if err != nil {
		log.Printf("[backoffice.orders] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Order store unavailable"))
		return
	}

	q := c.Query("q")
	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if matchesSearch(order, q) {
			filtered = append(filtered, order)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders retrieved", gin.H{
		"orders": filtered,
		"total":  len(filtered),
	}))
}
