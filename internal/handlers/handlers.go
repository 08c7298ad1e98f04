// Package handlers exposes the domain stores to the presentational layer
// as a JSON API. Handlers translate store results to HTTP statuses; all
// validation and business rules live in the stores.
package handlers

import (
	"chicchariot/internal/config"
	"chicchariot/internal/email"
	"chicchariot/internal/middleware"
	"chicchariot/internal/models"
	"chicchariot/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, stores *store.Stores, emailService *email.Service, log zerolog.Logger) {
	r.Use(middleware.LogRequests(log))
	r.Use(middleware.SecurityHeaders(cfg))
	r.Use(middleware.AddStores(stores))
	r.Use(addEmailServiceContext(emailService))

	api := r.Group("/api")

	api.GET("/catalog", handleCatalog)
	api.GET("/catalog/items/:id", handleItemDetail)
	api.GET("/catalog/items/:id/reviews", handleItemReviews)

	api.POST("/auth/login", middleware.AuthRateLimit(cfg), handleLogin)
	api.POST("/auth/signup", middleware.AuthRateLimit(cfg), handleSignup)
	api.POST("/auth/google", middleware.AuthRateLimit(cfg), handleGoogleLogin)
	api.GET("/auth/session", handleSession)

	protected := api.Group("/")
	protected.Use(middleware.AuthRequired(stores.Auth))
	{
		protected.POST("/auth/logout", handleLogout)

		protected.GET("/cart", handleCart)
		protected.POST("/cart/items", handleAddToCart)
		protected.PUT("/cart/items/:id", handleUpdateCartQuantity)
		protected.DELETE("/cart/items/:id", handleRemoveFromCart)
		protected.DELETE("/cart", handleClearCart)

		protected.GET("/wishlist", handleWishlist)
		protected.POST("/wishlist/items", handleAddToWishlist)
		protected.DELETE("/wishlist/items/:id", handleRemoveFromWishlist)

		protected.POST("/checkout", handleCheckout)
		protected.GET("/orders", handleOrderHistory)

		protected.POST("/reviews", handleAddReview)

		protected.POST("/account/password", handleChangePassword)
		protected.PUT("/account/profile", handleUpdateProfile)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AdminRequired(stores.Auth))
	{
		admin.POST("/items", handleAdminAddItem)
		admin.PUT("/items/:id", handleAdminUpdateItem)
		admin.DELETE("/items/:id", handleAdminDeleteItem)

		admin.POST("/categories", handleAdminAddCategory)
		admin.PUT("/categories/:name", handleAdminRenameCategory)
		admin.DELETE("/categories/:name", handleAdminDeleteCategory)

		admin.GET("/orders", handleAdminOrders)
		admin.PUT("/orders/:id/status", handleAdminSetOrderStatus)

		admin.GET("/admins", handleAdminList)
		admin.POST("/admins", handleAdminAdd)
		admin.PUT("/admins/:id", handleAdminUpdate)
		admin.DELETE("/admins/:id", handleAdminRemove)

		admin.DELETE("/reviews/:id", handleAdminDeleteReview)
	}
}

func addEmailServiceContext(emailService *email.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("email_service", emailService)
		c.Next()
	}
}

func getStores(c *gin.Context) *store.Stores {
	return c.MustGet("stores").(*store.Stores)
}

func currentUser(c *gin.Context) models.User {
	return c.MustGet("user").(models.User)
}
