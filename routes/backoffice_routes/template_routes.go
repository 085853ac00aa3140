package backoffice_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/controllers/backoffice/template_controller"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/middleware"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

func SetupTemplateRoutes(rg *gin.RouterGroup) {
	templates := rg.Group("/templates")
	templates.Use(middleware.RequireRole(models.RoleStaff, models.RoleAdmin))
	{
		templates.GET("/:kind/preview", template_controller.PreviewTemplate)
	}
}
