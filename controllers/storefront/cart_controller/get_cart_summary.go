package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// GetCartSummary godoc
// @Summary Get the cart totals
// @Description Subtotal, discount and total for the current cart. Display-only; checkout recomputes authoritatively.
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Cart unavailable"
// @Router /api/v1/cart/summary [get]
func GetCartSummary(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, err := store.Get(ctx, buyerID(c))
	if err != nil {
		log.Printf("[cart.summary] failed for buyer %d: %v", buyerID(c), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Cart unavailable"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Summary computed", policy.Summarize(items)))
}
