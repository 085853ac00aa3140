package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/upstream"
)

// Register godoc
// @Summary Register a buyer account
// @Description Create a new buyer account in the commerce API
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Account details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 409 {object} models.ApiResponse "Username or email taken"
// @Router /api/v1/auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := client.Register(ctx, req); err != nil {
		log.Printf("[auth.register] registration failed for %s: %v", req.Email, err)
		c.JSON(upstream.StatusOf(err), models.ErrorResponse(c, "Registration failed"))
		return
	}

	log.Printf("[auth.register] account created for %s", req.Email)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", nil))
}
