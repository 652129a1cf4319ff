package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Jevohngg/happy-valley-tree-orders/config"
	"github.com/Jevohngg/happy-valley-tree-orders/controllers"
	"github.com/Jevohngg/happy-valley-tree-orders/middleware"
	"github.com/Jevohngg/happy-valley-tree-orders/models"
	"github.com/Jevohngg/happy-valley-tree-orders/services"
)

func main() {
	log.Println("Starting Happy Valley Tree Orders API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.Species{},
		&models.FullnessVariant{},
		&models.SpeciesHeight{},
		&models.Stand{},
		&models.Wreath{},
		&models.DeliveryOption{},
		&models.Order{},
		&models.OrderTree{},
		&models.OrderStand{},
		&models.OrderWreath{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Initialize services
	services.InitDraftStore(services.DefaultSessionTTL)
	services.InitNotificationService(cfg)

	if cfg.AWSS3Bucket != "" {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		services.InitImageService(s3Service)
	} else {
		log.Println("AWS_S3_BUCKET not set, image uploads disabled")
	}

	router := setupRouter(cfg)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// The storefront and admin panel are browser apps on other origins
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Database status endpoint
		v1.GET("/database/status", databaseStatus)

		// Public catalog reads
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/species", controllers.ListSpecies)
			catalog.GET("/species/:id", controllers.GetSpecies)
			catalog.GET("/stands", controllers.ListStands)
			catalog.GET("/wreaths", controllers.ListWreaths)
			catalog.GET("/delivery-options", controllers.ListDeliveryOptions)
			catalog.GET("/variants/:id/image", controllers.GetVariantImage)
		}

		// Locally stored catalog images
		v1.GET("/uploads/:filename", controllers.GetUploadedImage)

		// Checkout wizard sessions
		checkout := v1.Group("/checkout/sessions")
		{
			checkout.POST("", controllers.CreateCheckoutSession)
			checkout.GET("/:token", controllers.GetCheckoutSession)
			checkout.POST("/:token/next", controllers.AdvanceStep)
			checkout.POST("/:token/back", controllers.StepBack)
			checkout.POST("/:token/trees", controllers.AddTree)
			checkout.PUT("/:token/trees/:index", controllers.UpdateTreeQuantity)
			checkout.DELETE("/:token/trees/:index", controllers.RemoveTreeFromCart)
			checkout.PUT("/:token/stands", controllers.SetStandSelection)
			checkout.POST("/:token/stands/own", controllers.ToggleOwnStand)
			checkout.PUT("/:token/wreaths", controllers.SetWreathSelection)
			checkout.PUT("/:token/delivery", controllers.SetDeliverySelection)
			checkout.PUT("/:token/schedule", controllers.SetSchedulePreference)
			checkout.PUT("/:token/contact", controllers.SetContactDetails)
			checkout.POST("/:token/submit", controllers.SubmitCheckout)
		}

		// Admin panel, JWT-gated and restricted to the admin role
		admin := v1.Group("/admin")
		admin.Use(middleware.EnsureValidToken(cfg), middleware.RequireAdmin())
		{
			admin.GET("/species", controllers.AdminListSpecies)
			admin.POST("/species", controllers.CreateSpecies)
			admin.GET("/species/:id", controllers.AdminGetSpecies)
			admin.PUT("/species/:id", controllers.UpdateSpecies)
			admin.DELETE("/species/:id", controllers.DeleteSpecies)
			admin.PUT("/species/:id/image", controllers.UpdateSpeciesImage)
			admin.POST("/species/:id/heights", controllers.AddSpeciesHeight)

			admin.PUT("/variants/:id", controllers.UpdateFullnessVariant)
			admin.POST("/variants/:id/image", controllers.UploadVariantImage)

			admin.PUT("/heights/:id", controllers.UpdateSpeciesHeight)
			admin.DELETE("/heights/:id", controllers.DeleteSpeciesHeight)

			admin.POST("/stands", controllers.CreateStand)
			admin.PUT("/stands/:id", controllers.UpdateStand)
			admin.DELETE("/stands/:id", controllers.DeleteStand)

			admin.POST("/wreaths", controllers.CreateWreath)
			admin.PUT("/wreaths/:id", controllers.UpdateWreath)
			admin.DELETE("/wreaths/:id", controllers.DeleteWreath)

			admin.POST("/delivery-options", controllers.CreateDeliveryOption)
			admin.PUT("/delivery-options/:id", controllers.UpdateDeliveryOption)
			admin.DELETE("/delivery-options/:id", controllers.DeleteDeliveryOption)

			admin.GET("/orders", controllers.ListOrders)
			admin.GET("/orders/:id", controllers.GetOrder)
			admin.PUT("/orders/:id/status", controllers.UpdateOrderStatus)
			admin.DELETE("/orders/:id", controllers.DeleteOrder)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Happy Valley Tree Orders API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	// Get list of tables
	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
