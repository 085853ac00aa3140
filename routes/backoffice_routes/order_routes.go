package backoffice_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/controllers/backoffice/order_controller"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/middleware"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(middleware.RequireRole(models.RoleStaff, models.RoleAdmin))
	{
		orders.GET("", order_controller.GetBackofficeOrders)
		orders.GET("/:id", order_controller.GetBackofficeOrderByID)
	}
}
