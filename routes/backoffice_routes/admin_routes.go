package backoffice_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/controllers/backoffice/admin_controller"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/middleware"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", admin_controller.GetUsers)
		admin.POST("/users", admin_controller.CreateUser)
		admin.PUT("/users/:id/status", admin_controller.UpdateUserStatus)

		admin.GET("/settings", admin_controller.GetSettings)
		admin.PUT("/settings/:id", admin_controller.UpdateSetting)

		admin.GET("/audit-logs", admin_controller.GetAuditLogs)
	}
}
