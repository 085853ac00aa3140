package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/services"
)

// GetUsers godoc
// @Summary List directory users
// @Tags Backoffice - Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/backoffice/users [get]
func GetUsers(c *gin.Context) {
	users := services.GetAdminDirectoryService().ListUsers()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Users retrieved", users))
}
