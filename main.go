package main

import (
	"fmt"
	"os"

	"glowbook-backend/config"
	"glowbook-backend/controllers"
	"glowbook-backend/models"
	"glowbook-backend/routes"
	"glowbook-backend/services"
	"glowbook-backend/storage"
	"glowbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		utils.GetLogger().Info("No .env file found")
	}
	config.ConnectDB()
	config.ConnectRedis()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.InventoryItem{},
		&models.BusinessProfile{},
		&models.ReminderLog{},
	)

	controllers.InitScheduling(config.DB, config.Redis)

	if uploader, err := storage.NewUploader(); err != nil {
		utils.GetLogger().Warn("Image uploads disabled", zap.Error(err))
	} else {
		controllers.InitUploader(uploader)
	}
}

func main() {
	defer utils.GetLogger().Sync()

	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
