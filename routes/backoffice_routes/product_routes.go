package backoffice_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/controllers/backoffice/product_controller"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/middleware"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.Use(middleware.RequireRole(models.RoleStaff, models.RoleAdmin))
	{
		products.GET("", product_controller.GetBackofficeProducts)
		products.POST("", product_controller.CreateProduct)
		products.PUT("/:id", product_controller.UpdateProduct)
		products.PUT("/:id/status", product_controller.UpdateProductStatus)
	}
}
