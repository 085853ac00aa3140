package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/catalog"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/middleware"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/services"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/upstream"
)

// UpdateProductStatus godoc
// @Summary Activate or deactivate a product
// @Description Flip a product's status. Deactivated products disappear from the storefront. Requires confirm=true.
// @Tags Backoffice - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body models.UpdateProductStatusRequest true "New status with confirmation"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request or missing confirmation"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /api/v1/backoffice/products/{id}/status [put]
func UpdateProductStatus(c *gin.Context) {
	productID := c.Param("id")

	var req models.UpdateProductStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	if !req.Confirm {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Status change requires confirm=true"))
		return
	}

	token, _ := middleware.GetUpstreamTokenFromContext(c)
	ctx, cancel := config.WithTimeout()
	defer cancel()

	apiStatus := catalog.NormalizeStatusToAPI(req.Status)
	if err := client.StaffUpdateProductStatus(ctx, token, productID, apiStatus); err != nil {
		log.Printf("[backoffice.products] status change failed for %s: %v", productID, err)
		c.JSON(upstream.StatusOf(err), models.ErrorResponse(c, "Failed to update status"))
		return
	}

	staffName, _ := middleware.GetUserNameFromContext(c)
	services.GetAdminDirectoryService().RecordAudit(
		staffName, "Product "+productID, "status", "", req.Status)

	refreshStorefront(ctx)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Status updated", gin.H{
		"id":     productID,
		"status": req.Status,
	}))
}
