package routes

import (
	"net/http"
	"time"

	"tourdesk/handlers"
	"tourdesk/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login, logout and password endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/auth")
	{
		auth.GET("/login", hb.Auth.LoginPage)
		auth.POST("/login", hb.Auth.Login)
		auth.POST("/logout", hb.Auth.Logout)
	}

	account := r.Group("/account")
	account.Use(middleware.SessionAuth(hb.Users))
	account.POST("/password", hb.Auth.ChangePassword)
}

// RegisterAdminRoutes registers company management for the admin.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/admin")
	admin.Use(middleware.SessionAuth(hb.Users), middleware.AdminOnly())
	{
		admin.GET("/dashboard", hb.Admin.Dashboard)
		admin.GET("/companies/data", hb.Admin.CompaniesTable)
		admin.GET("/companies/create", hb.Admin.CreatePage)
		admin.POST("/companies", hb.Admin.CreateCompany)
		admin.GET("/companies/:id/edit", hb.Admin.EditCompany)
		admin.PUT("/companies/:id", hb.Admin.UpdateCompany)
		admin.POST("/companies/:id", hb.Admin.UpdateCompany)
		admin.DELETE("/companies/:id", hb.Admin.DeleteCompany)
	}
}

// RegisterCompanyRoutes registers the tenant back office. Form posts use POST
// for updates as browsers cannot send PUT.
func RegisterCompanyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	company := r.Group("/company")
	company.Use(middleware.SessionAuth(hb.Users), middleware.CompanyOnly())

	company.GET("/dashboard", hb.Dashboard.Index)
	company.GET("/dashboard/stats", hb.Dashboard.Stats)
	company.GET("/dashboard/packages", hb.Dashboard.ActivePackages)
	company.GET("/dashboard/customers", hb.Dashboard.Customers)

	company.GET("/profile", hb.Admin.Profile)
	company.POST("/profile", hb.Admin.UpdateProfile)

	packages := company.Group("/tour-packages")
	{
		packages.GET("", hb.Packages.List)
		packages.GET("/create", hb.Packages.CreatePage)
		packages.POST("", hb.Packages.Create)
		packages.GET("/:id/edit", hb.Packages.Edit)
		packages.PUT("/:id", hb.Packages.Update)
		packages.POST("/:id", hb.Packages.Update)
		packages.DELETE("/:id", hb.Packages.Delete)
		packages.DELETE("/images/:imageId", hb.Packages.DeleteImage)
		packages.GET("/:id/booked-dates", hb.Bookings.BookedDates)
		packages.GET("/:id/availability", hb.Bookings.AvailabilityPage)
	}

	drivers := company.Group("/drivers")
	{
		drivers.GET("/data", hb.Drivers.Table)
		drivers.POST("", hb.Drivers.Create)
		drivers.GET("/:id/edit", hb.Drivers.Edit)
		drivers.PUT("/:id", hb.Drivers.Update)
		drivers.POST("/:id", hb.Drivers.Update)
		drivers.DELETE("/:id", hb.Drivers.Delete)
	}

	customers := company.Group("/customers")
	{
		customers.GET("/data", hb.Customers.Table)
		customers.POST("", hb.Customers.Create)
		customers.GET("/:id/edit", hb.Customers.Edit)
		customers.PUT("/:id", hb.Customers.Update)
		customers.POST("/:id", hb.Customers.Update)
		customers.DELETE("/:id", hb.Customers.Delete)
	}

	bookings := company.Group("/bookings")
	{
		bookings.GET("/create", hb.Bookings.CreatePage)
		bookings.GET("/availability", hb.Bookings.CheckAvailability)
		bookings.POST("", hb.Bookings.Create)
		bookings.GET("/data", hb.Bookings.Table)
		bookings.GET("/:id/edit", hb.Bookings.Edit)
		bookings.PUT("/:id", hb.Bookings.Update)
		bookings.POST("/:id", hb.Bookings.Update)
		bookings.DELETE("/:id", hb.Bookings.Delete)
		bookings.POST("/:id/cancel", hb.Bookings.Cancel)
		bookings.GET("/:id/voucher", hb.Bookings.Voucher)
	}
}

// RegisterPublicRoutes registers unauthenticated endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, middleware.LoginPath)
	})
	r.GET("/health", handlers.Health)
	r.GET("/constants", handlers.Constants)
	r.GET("/tour-packages", hb.Packages.PublicList)
	r.GET("/tour-packages/:id", hb.Packages.PublicDetail)
}

// RegisterWebhookRoutes registers the WhatsApp callbacks.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/webhooks/whatsapp", hb.Webhook.Verify)
	r.POST("/webhooks/whatsapp", hb.Webhook.Receive)
	if hb.TestChat {
		r.POST("/test-whatsapp", hb.Webhook.TestMessage)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(hb.RateLimit))

	RegisterPublicRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterCompanyRoutes(r, hb)
}
