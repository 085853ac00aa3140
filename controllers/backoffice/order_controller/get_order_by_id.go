package order_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// GetBackofficeOrderByID godoc
// @Summary Get one stored order
// @Description Full confirmation detail for the order management dialog
// @Tags Backoffice - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Order not found or expired"
// @Router /api/v1/backoffice/orders/{id} [get]
func GetBackofficeOrderByID(c *gin.Context) {
	order, err := loadConfirmation(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order retrieved", order))
}
