package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/middleware"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/services"
)

// CreateUser godoc
// @Summary Add a directory user
// @Tags Backoffice - Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateDirectoryUserRequest true "User details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Router /api/v1/backoffice/users [post]
func CreateUser(c *gin.Context) {
	var req models.CreateDirectoryUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	adminName, _ := middleware.GetUserNameFromContext(c)
	user := services.GetAdminDirectoryService().CreateUser(req, adminName)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "User created", user))
}
