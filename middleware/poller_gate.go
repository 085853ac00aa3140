package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/catalog"
)

// PausePolling suspends the catalog poller while a back-office console
// is in use; staff work against fresh per-request fetches instead.
func PausePolling(p *catalog.Poller) gin.HandlerFunc {
	return func(c *gin.Context) {
		p.Pause()
		c.Next()
	}
}

// ResumePolling restarts the poller when storefront routes are hit.
func ResumePolling(p *catalog.Poller) gin.HandlerFunc {
	return func(c *gin.Context) {
		p.Resume()
		c.Next()
	}
}
