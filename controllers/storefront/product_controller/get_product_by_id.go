package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/cuongluu0705/Online-Electronics-Selling-System/cache"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// GetStorefrontProductByID godoc
// @Summary Get one storefront product
// @Description Look a product up in the catalog snapshot
// @Tags Store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /api/v1/store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	id := c.Param("id")

	products, _, _, ok := catalog_cache.Snapshot()
	if !ok {
		ctx, cancel := config.WithTimeout()
		defer cancel()
		_, _ = poller.RefreshNow(ctx)
		products, _, _, _ = catalog_cache.Snapshot()
	}

	for _, p := range products {
		if p.ID == id {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved", p))
			return
		}
	}
	c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
}
