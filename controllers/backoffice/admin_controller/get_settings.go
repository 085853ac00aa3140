package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/services"
)

// GetSettings godoc
// @Summary List system settings
// @Tags Backoffice - Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/backoffice/settings [get]
func GetSettings(c *gin.Context) {
	settings := services.GetAdminDirectoryService().ListSettings()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings retrieved", settings))
}
