package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// UpdateCartItem godoc
// @Summary Change a cart line's quantity
// @Description Set the quantity for a product already in the cart, clamped to available stock
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Router /api/v1/cart/items/{productId} [put]
func UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, err := store.UpdateQuantity(ctx, buyerID(c), c.Param("productId"), req.Quantity)
	if err != nil {
		log.Printf("[cart.update] failed for buyer %d: %v", buyerID(c), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", cartView(items)))
}
