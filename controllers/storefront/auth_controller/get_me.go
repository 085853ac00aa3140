package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// GetMe godoc
// @Summary Current session
// @Description Report who the session token belongs to
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "No valid session"
// @Router /api/v1/auth/me [get]
func GetMe(c *gin.Context) {
	profile := models.SessionProfile{
		UserID:   c.GetInt("userID"),
		Username: c.GetString("username"),
		Name:     c.GetString("userName"),
		Role:     c.GetString("userRole"),
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session active", profile))
}
