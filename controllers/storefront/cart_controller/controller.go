package cart_controller

import (
	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/cart"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/checkout"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

var (
	store  *cart.Store
	policy checkout.PricingPolicy
)

// Init wires the cart store and pricing policy. Call once at startup.
func Init(s *cart.Store, p checkout.PricingPolicy) {
	store = s
	policy = p
}

func cartView(items []models.CartItem) models.CartView {
	return models.CartView{
		Items:   items,
		Summary: policy.Summarize(items),
	}
}

func buyerID(c *gin.Context) int {
	return c.GetInt("userID")
}
