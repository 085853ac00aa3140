package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/controllers/storefront/product_controller"
)

func SetupStorefrontRoutes(rg *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := rg.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", product_controller.GetStorefrontProducts)
		products.GET("/:id", product_controller.GetStorefrontProductByID)
	}
}
