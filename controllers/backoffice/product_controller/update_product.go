package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/middleware"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/services"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/upstream"
)

// UpdateProduct godoc
// @Summary Edit a product
// @Description Forward changed fields (multipart, optional new image) to the commerce API
// @Tags Backoffice - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid form"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /api/v1/backoffice/products/{id} [put]
func UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var form models.StaffProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product form"))
		return
	}

	image, err := readImageFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unreadable image file"))
		return
	}

	token, _ := middleware.GetUpstreamTokenFromContext(c)
	ctx, cancel := config.WithTimeout()
	defer cancel()

	updated, err := client.StaffUpdateProduct(ctx, token, productID, form, image)
	if err != nil {
		log.Printf("[backoffice.products] update failed for %s: %v", productID, err)
		c.JSON(upstream.StatusOf(err), models.ErrorResponse(c, "Failed to update product"))
		return
	}

	staffName, _ := middleware.GetUserNameFromContext(c)
	services.GetAdminDirectoryService().RecordAudit(
		staffName, "Product "+productID, "record", "", "updated")

	refreshStorefront(ctx)

	product, mapErr := mapper.MapProduct(updated)
	if mapErr != nil {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated", updated))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated", product))
}
