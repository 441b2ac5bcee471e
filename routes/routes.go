package routes

import (
	"os"
	"strings"

	"glowbook-backend/config"
	"glowbook-backend/controllers"
	"glowbook-backend/models"
	"glowbook-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Marketing site data, no auth required
	public := r.Group("/api/public")
	{
		public.GET("/services", controllers.GetPublicServices)
		public.GET("/services/:id", controllers.GetService)
		public.GET("/staff", controllers.GetPublicStaff)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.POST("", controllers.CreateBooking)
			bookings.GET("", controllers.GetBookings)
			bookings.GET("/:id", controllers.GetBooking)
			bookings.PUT("/:id/status", controllers.UpdateBookingStatus)
			bookings.PUT("/:id/reschedule", controllers.RescheduleBooking)
			bookings.GET("/:id/receipt", controllers.BookingReceipt)
			bookings.DELETE("/:id", utils.RequireRoles(models.RoleAdmin), controllers.DeleteBooking)
		}

		// Slot availability for the booking form
		api.GET("/availability", controllers.GetAvailability)

		// Service routes (reads for everyone, writes for admin)
		services := api.Group("/services")
		{
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)

			services.Use(utils.RequireRoles(models.RoleAdmin))
			services.POST("", controllers.CreateService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		// Inventory routes
		inventory := api.Group("/inventory", utils.RequireRoles(models.RoleStaff, models.RoleAdmin))
		{
			inventory.POST("", controllers.CreateInventoryItem)
			inventory.GET("", controllers.GetInventory)
			inventory.GET("/:id", controllers.GetInventoryItem)
			inventory.PUT("/:id", controllers.UpdateInventoryItem)
			inventory.DELETE("/:id", utils.RequireRoles(models.RoleAdmin), controllers.DeleteInventoryItem)
		}

		// Staff account routes
		staff := api.Group("/staff", utils.RequireRoles(models.RoleAdmin))
		{
			staff.GET("", controllers.GetStaff)
			staff.POST("", controllers.AddStaff)
			staff.PUT("/:id", controllers.UpdateStaff)
			staff.DELETE("/:id", controllers.DeleteStaff)
		}

		// Reports routes
		reportController := controllers.ReportController{}
		reports := api.Group("/reports", utils.RequireRoles(models.RoleAdmin))
		{
			reports.GET("", reportController.GetReportAnalytics)
			reports.GET("/export", reportController.ExportBookingsCSV)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Business profile routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetBusinessProfile)

			profile.Use(utils.RequireRoles(models.RoleAdmin))
			profile.PUT("", controllers.UpdateBusinessProfile)
			profile.PUT("/hours", controllers.UpdateWorkingHours)
			profile.PUT("/notifications", controllers.UpdateNotificationSettings)
		}

		// Image uploads for service and staff photos
		api.POST("/uploads/image", utils.RequireRoles(models.RoleStaff, models.RoleAdmin), controllers.UploadImage)
	}

	return r
}
