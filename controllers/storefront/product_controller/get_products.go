package product_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/cuongluu0705/Online-Electronics-Selling-System/cache"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/upstream"
)

// GetStorefrontProducts godoc
// @Summary List storefront products
// @Description Serve the polled catalog snapshot, refetching immediately when the search query changes
// @Tags Store
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse "Catalog unavailable"
// @Router /api/v1/store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	query := c.Query("q")

	// A changed query can't wait for the next tick: refetch now so the
	// search result is correct on first render.
	products, activeQuery, fetchedAt, ok := catalog_cache.Snapshot()
	if !ok || query != activeQuery {
		poller.SetQuery(query)
		ctx, cancel := config.WithTimeout()
		defer cancel()
		fetched, err := poller.RefreshNow(ctx)
		if err != nil {
			log.Printf("[store.products] refresh failed: %v", err)
			if !ok {
				c.JSON(upstream.StatusOf(err), models.ErrorResponse(c, "Catalog unavailable"))
				return
			}
			// Stale snapshot beats an error page.
		} else {
			// Serve the fetch we just made, not the snapshot: a
			// concurrent buyer searching something else may have
			// replaced it already.
			products, fetchedAt = fetched, time.Now()
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products retrieved", gin.H{
		"products":  products,
		"fetchedAt": fetchedAt,
	}))
}
