package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/middleware"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/services"
)

type updateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Inactive"`
}

// UpdateUserStatus godoc
// @Summary Activate or deactivate a directory user
// @Tags Backoffice - Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body updateUserStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "User not found"
// @Router /api/v1/backoffice/users/{id}/status [put]
func UpdateUserStatus(c *gin.Context) {
	var req updateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	adminName, _ := middleware.GetUserNameFromContext(c)
	user, err := services.GetAdminDirectoryService().SetUserStatus(c.Param("id"), req.Status, adminName)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "User updated", user))
}
