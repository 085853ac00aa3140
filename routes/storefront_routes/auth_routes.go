package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/controllers/storefront/auth_controller"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/middleware"
)

func SetupAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", auth_controller.Login)
		auth.POST("/register", auth_controller.Register)
		auth.POST("/logout", auth_controller.Logout)
	}

	protected := auth.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", auth_controller.GetMe)
	}
}
