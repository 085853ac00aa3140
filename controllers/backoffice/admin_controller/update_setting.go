package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/middleware"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/services"
)

// UpdateSetting godoc
// @Summary Change a system setting
// @Tags Backoffice - Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Setting ID"
// @Param request body models.UpdateSettingRequest true "New value"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Setting not found"
// @Router /api/v1/backoffice/settings/{id} [put]
func UpdateSetting(c *gin.Context) {
	var req models.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	adminName, _ := middleware.GetUserNameFromContext(c)
	setting, err := services.GetAdminDirectoryService().UpdateSetting(c.Param("id"), req.Value, adminName)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Setting not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Setting updated", setting))
}
