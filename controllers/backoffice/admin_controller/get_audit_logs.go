package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/services"
)

// GetAuditLogs godoc
// @Summary List audit log entries
// @Description Back-office changes, newest first
// @Tags Backoffice - Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/backoffice/audit-logs [get]
func GetAuditLogs(c *gin.Context) {
	logs := services.GetAdminDirectoryService().ListAuditLogs()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Audit logs retrieved", logs))
}
