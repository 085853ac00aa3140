package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/controllers/storefront/cart_controller"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/controllers/storefront/order_controller"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/middleware"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

func SetupBuyerRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	cart.Use(middleware.AuthMiddleware())
	cart.Use(middleware.RequireRole(models.RoleBuyer))
	{
		cart.GET("", cart_controller.GetCart)
		cart.GET("/summary", cart_controller.GetCartSummary)
		cart.POST("/items", cart_controller.AddCartItem)
		cart.PUT("/items/:productId", cart_controller.UpdateCartItem)
		cart.DELETE("/items/:productId", cart_controller.RemoveCartItem)
	}

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	orders.Use(middleware.RequireRole(models.RoleBuyer))
	{
		orders.POST("/checkout", order_controller.Checkout)
		orders.GET("/:id", order_controller.GetOrderConfirmation)
		orders.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)
	}
}
