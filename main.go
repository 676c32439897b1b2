package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/waykaburger/station-app/config"
	"github.com/waykaburger/station-app/database"
	"github.com/waykaburger/station-app/middlewares"
	"github.com/waykaburger/station-app/models"
	"github.com/waykaburger/station-app/router"
	"github.com/waykaburger/station-app/services"
	"github.com/waykaburger/station-app/store"
	"github.com/waykaburger/station-app/utils"
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

	if err := database.SeedMenu(db); err != nil {
		utils.ErrorLogger.Printf("Error seeding menu catalog: %v", err)
	}

	st := store.New(db)

	// Delivered orders get swept off the board shortly after completion.
	janitor := services.NewOrderJanitor(st)
	if v := os.Getenv("CLEANUP_DELAY_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			janitor.Delay = time.Duration(secs) * time.Second
		}
	}
	janitor.Start()
	defer janitor.Stop()

	// Cash day opens and closes on a clock unless disabled.
	if os.Getenv("SALES_SCHEDULE_DISABLED") != "true" {
		scheduler := services.NewSalesScheduler(st)
		if v := os.Getenv("SALES_OPEN_AT"); v != "" {
			scheduler.OpenAt = v
		}
		if v := os.Getenv("SALES_CLOSE_AT"); v != "" {
			scheduler.CloseAt = v
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	r := router.SetupRouter(st)

	// Global rate limit, 50 requests per second per IP
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

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
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentRecord{},
		&models.Notification{},
		&models.DailySales{},
		&models.DailySalesItem{},
		&models.DailySalesDetail{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
