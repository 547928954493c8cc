package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/kitchify/kitchify-server/config"
	"github.com/kitchify/kitchify-server/database"
	"github.com/kitchify/kitchify-server/middlewares"
	"github.com/kitchify/kitchify-server/models"
	"github.com/kitchify/kitchify-server/router"
	"github.com/kitchify/kitchify-server/services"
	"github.com/kitchify/kitchify-server/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if os.Getenv("SEED_DB") == "true" {
		if err := database.Seed(db); err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed database: %v", err)
		}
	}

	alertCfg := config.LoadAlertConfig()
	var mailer services.Mailer
	if alertCfg.IsConfigured() {
		mailer = services.NewSMTPMailer(alertCfg)
	} else {
		utils.InfoLogger.Println("Warning: email alert delivery not configured")
	}

	ledger := services.NewStockLedger(db)
	notifier := services.NewAlertNotifier(ledger, mailer, alertCfg.Threshold, config.BusinessLocation())
	notifier.Start()
	defer notifier.Stop()

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db, notifier)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Order{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
