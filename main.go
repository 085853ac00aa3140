// @title Online Electronics Selling System API
// @version 1.0
// @description Storefront gateway for the electronics commerce API
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/cart"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/catalog"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/checkout"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	backoffice_products "github.com/cuongluu0705/Online-Electronics-Selling-System/controllers/backoffice/product_controller"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/controllers/storefront/auth_controller"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/controllers/storefront/cart_controller"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/controllers/storefront/order_controller"
	storefront_products "github.com/cuongluu0705/Online-Electronics-Selling-System/controllers/storefront/product_controller"
	_ "github.com/cuongluu0705/Online-Electronics-Selling-System/docs"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/middleware"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/routes/backoffice_routes"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/routes/storefront_routes"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/services"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/upstream"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	config.LoadEnvironment()
	config.ConnectRedis()

	if config.Env.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	services.InitSessionService(config.Env.JWTSecret, config.Env.JWTExpiry)
	log.Println("✅ Session service initialized")

	client := upstream.NewClient(config.Env.UpstreamBaseURL, config.Env.UpstreamTimeout)
	mapper := catalog.NewMapper(client.BaseURL(), config.Env.DefaultReleaseYear)
	poller := catalog.NewPoller(client, mapper, config.Env.CatalogPollInterval)
	store := cart.NewStore(config.RedisClient)
	policy := checkout.PricingPolicy{
		Threshold: config.Env.DiscountThreshold,
		Discount:  config.Env.DiscountAmount,
	}

	auth_controller.Init(client)
	storefront_products.Init(poller)
	cart_controller.Init(store, policy)
	order_controller.Init(client, store, policy)
	backoffice_products.Init(client, mapper, poller)

	corsCfg := cors.Config{
		AllowOrigins:     config.Env.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // For invoice downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	// Public storefront + buyer routes keep the poller running
	storefrontGroup := api.Group("")
	storefrontGroup.Use(middleware.ResumePolling(poller))
	storefront_routes.SetupAuthRoutes(storefrontGroup)
	storefront_routes.SetupStorefrontRoutes(storefrontGroup)
	storefront_routes.SetupBuyerRoutes(storefrontGroup)
	log.Println("✅ Storefront routes registered")

	// Back-office consoles pause it and work against fresh fetches
	backofficeGroup := api.Group("/backoffice")
	backofficeGroup.Use(middleware.RateLimiter(100, time.Minute))
	backofficeGroup.Use(middleware.AuthMiddleware())
	backofficeGroup.Use(middleware.PausePolling(poller))
	backoffice_routes.SetupProductRoutes(backofficeGroup)
	backoffice_routes.SetupOrderRoutes(backofficeGroup)
	backoffice_routes.SetupAdminRoutes(backofficeGroup)
	backoffice_routes.SetupTemplateRoutes(backofficeGroup)
	log.Println("✅ Back-office routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	poller.Start()
	defer poller.Stop()

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", config.Env.Port)
	if err := router.Run(":" + config.Env.Port); err != nil {
		log.Fatalf("❌ Server exited: %v", err)
	}
}
