package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/middleware"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/services"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/upstream"
)

// Login godoc
// @Summary Log in
// @Description Authenticate against the commerce API and start a gateway session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials and role"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 401 {object} models.ApiResponse "Bad credentials"
// @Router /api/v1/auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	resp, err := client.Login(ctx, req.Username, req.Password, req.Role)
	if err != nil {
		log.Printf("[auth.login] login failed for %s (%s): %v", req.Username, req.Role, err)
		c.JSON(upstream.StatusOf(err), models.ErrorResponse(c, "Invalid username or password"))
		return
	}

	profile := models.SessionProfile{
		UserID:   resp.UserID,
		Username: resp.Username,
		Name:     resp.Name,
		Role:     resp.Role,
	}
	token, err := services.GetSessionService().Issue(profile, resp.AccessToken)
	if err != nil {
		log.Printf("[auth.login] failed to issue session: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start session"))
		return
	}

	maxAge := int(config.Env.JWTExpiry.Seconds())
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", false, true)

	log.Printf("[auth.login] %s logged in as %s", profile.Username, profile.Role)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in", gin.H{
		"token":   token,
		"profile": profile,
	}))
}
