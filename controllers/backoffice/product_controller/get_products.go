package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/middleware"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/upstream"
)

// GetBackofficeProducts godoc
// @Summary List products for management
// @Description Fetch the staff product list fresh from the commerce API, deactivated products included
// @Tags Backoffice - Products
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search query"
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse "Commerce API unavailable"
// @Router /api/v1/backoffice/products [get]
func GetBackofficeProducts(c *gin.Context) {
	token, _ := middleware.GetUpstreamTokenFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	records, err := client.StaffListProducts(ctx, token, c.Query("q"))
	if err != nil {
		log.Printf("[backoffice.products] list failed: %v", err)
		c.JSON(upstream.StatusOf(err), models.ErrorResponse(c, "Failed to load products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products retrieved", mapper.MapProducts(records)))
}
