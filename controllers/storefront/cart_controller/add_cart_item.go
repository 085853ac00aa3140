package cart_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/cuongluu0705/Online-Electronics-Selling-System/cache"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/cart"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// AddCartItem godoc
// @Summary Add a product to the cart
// @Description Add quantity units of a catalog product, merging with an existing line and capping at stock
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 404 {object} models.ApiResponse "Product not in catalog"
// @Failure 409 {object} models.ApiResponse "Out of stock"
// @Router /api/v1/cart/items [post]
func AddCartItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	products, _, _, ok := catalog_cache.Snapshot()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Catalog not loaded yet"))
		return
	}

	var product *models.Product
	for i := range products {
		if products[i].ID == req.ProductID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, err := store.Add(ctx, buyerID(c), *product, req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrOutOfStock) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Product is out of stock"))
			return
		}
		log.Printf("[cart.add] failed for buyer %d: %v", buyerID(c), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added", cartView(items)))
}
