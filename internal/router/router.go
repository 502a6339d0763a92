// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/crownshop/storefront/internal/config"
	"github.com/crownshop/storefront/internal/handlers"
	"github.com/crownshop/storefront/internal/localstore"
	"github.com/crownshop/storefront/internal/middleware"
	"github.com/crownshop/storefront/internal/repository"
	"github.com/crownshop/storefront/internal/services"
	"github.com/crownshop/storefront/internal/session"
	"github.com/crownshop/storefront/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage")
	}
	catalogService := services.NewCatalogService(repository.NewGormCatalog(db), storageService)
	adminService := services.NewAdminService(repository.NewGormOwnership(db), catalogService, storageService)

	stateRoot, err := localstore.New(cfg.State.Dir)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open state directory")
	}
	sessions := session.NewManager(stateRoot)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, sessions, adminService)
	storefrontHandler := handlers.NewStorefrontHandler(catalogService)
	cartHandler := handlers.NewCartHandler(sessions)
	favoritesHandler := handlers.NewFavoritesHandler(sessions)
	preferencesHandler := handlers.NewPreferencesHandler(sessions)
	adminHandler := handlers.NewAdminHandler(sessions, adminService, catalogService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.Session.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/session", authHandler.CreateSession)
		}

		// Public catalog routes
		products := v1.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), storefrontHandler.GetProducts)
			products.GET("/:id", middleware.OptionalAuth(), storefrontHandler.GetProduct)
		}

		// Shopper state routes
		cart := v1.Group("/cart")
		cart.Use(middleware.AuthRequired())
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("", cartHandler.AddToCart)
			cart.DELETE("/:productId", cartHandler.RemoveFromCart)
			cart.DELETE("", cartHandler.ClearCart)
		}

		favorites := v1.Group("/favorites")
		favorites.Use(middleware.AuthRequired())
		{
			favorites.GET("", favoritesHandler.GetFavorites)
			favorites.POST("/toggle", favoritesHandler.ToggleFavorite)
		}

		preferences := v1.Group("/preferences")
		preferences.Use(middleware.AuthRequired())
		{
			preferences.GET("", preferencesHandler.GetPreferences)
			preferences.PUT("", preferencesHandler.UpdatePreferences)
		}

		// Store management routes; every handler re-checks the
		// ownership gate on top of authentication.
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired())
		{
			admin.GET("/access", adminHandler.GetAccess)

			admin.GET("/draft", adminHandler.GetDraft)
			admin.POST("/draft/files", middleware.PublishRateLimit(), adminHandler.AddDraftFiles)
			admin.PATCH("/draft/:index", adminHandler.UpdateDraftItem)
			admin.DELETE("/draft/:index", adminHandler.RemoveDraftItem)
			admin.POST("/draft/publish", middleware.PublishRateLimit(), adminHandler.PublishAll)
			admin.POST("/draft/:index/publish", middleware.PublishRateLimit(), adminHandler.PublishOne)

			admin.GET("/products", adminHandler.GetProducts)
			admin.PATCH("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)
			admin.POST("/products/:id/image", middleware.PublishRateLimit(), adminHandler.ChangeProductImage)
		}
	}

	return r
}
