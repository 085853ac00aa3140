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

// CreateProduct godoc
// @Summary Add a product
// @Description Forward a new product (multipart, optional image) to the commerce API. New products start Active.
// @Tags Backoffice - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param productName formData string true "Product name"
// @Param price formData number false "Price"
// @Param quantity formData int false "Stock quantity"
// @Param image formData file false "Product image"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid form"
// @Failure 502 {object} models.ApiResponse "Commerce API unavailable"
// @Router /api/v1/backoffice/products [post]
func CreateProduct(c *gin.Context) {
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

	created, err := client.StaffCreateProduct(ctx, token, form, image)
	if err != nil {
		log.Printf("[backoffice.products] create failed for %q: %v", form.ProductName, err)
		c.JSON(upstream.StatusOf(err), models.ErrorResponse(c, "Failed to create product"))
		return
	}

	staffName, _ := middleware.GetUserNameFromContext(c)
	services.GetAdminDirectoryService().RecordAudit(
		staffName, "Product "+created.ProductID, "record", "", "created")

	refreshStorefront(ctx)

	product, mapErr := mapper.MapProduct(created)
	if mapErr != nil {
		// The upstream accepted it; answer with the raw record.
		c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created", created))
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created", product))
}
