package order_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/checkout"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/middleware"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/upstream"
)

// Checkout godoc
// @Summary Place an order
// @Description Submit the server-side cart with the delivery details. The cart is cleared only when the order succeeds.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CheckoutRequest true "Contact and delivery details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request or empty cart"
// @Failure 409 {object} models.ApiResponse "Stock changed since the cart was built"
// @Router /api/v1/orders/checkout [post]
func Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	buyerID := c.GetInt("userID")
	token, _ := middleware.GetUpstreamTokenFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, err := store.Get(ctx, buyerID)
	if err != nil {
		log.Printf("[order.checkout] cart load failed for buyer %d: %v", buyerID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Cart unavailable"))
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	payload := checkout.BuildPayload(req, items, buyerID)
	resp, err := client.Checkout(ctx, token, payload)
	if err != nil {
		// The cart is untouched so the buyer can retry.
		log.Printf("[order.checkout] upstream rejected order for buyer %d: %v", buyerID, err)
		c.JSON(upstream.StatusOf(err), models.ErrorResponse(c, "Checkout failed"))
		return
	}

	order := checkout.BuildConfirmation(req, resp, buyerID, time.Now())
	if err := saveConfirmation(order); err != nil {
		log.Printf("[order.checkout] failed to store confirmation %s: %v", order.ID, err)
	}

	if err := store.Clear(ctx, buyerID); err != nil {
		log.Printf("[order.checkout] failed to clear cart for buyer %d: %v", buyerID, err)
	}

	log.Printf("[order.checkout] order %s placed by buyer %d, total %.0f", order.ID, buyerID, order.Total)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order placed", order))
}
