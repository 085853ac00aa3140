package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// RemoveCartItem godoc
// @Summary Remove a cart line
// @Description Delete a product from the cart. Requires confirm=true; removal is not undoable.
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing confirmation"
// @Router /api/v1/cart/items/{productId} [delete]
func RemoveCartItem(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Removal requires confirm=true"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, err := store.Remove(ctx, buyerID(c), c.Param("productId"))
	if err != nil {
		log.Printf("[cart.remove] failed for buyer %d: %v", buyerID(c), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed", cartView(items)))
}
