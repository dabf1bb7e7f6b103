package main

import (
	"log"
	"time"

	"smart_canteen/internal/config"
	"smart_canteen/internal/database"
	"smart_canteen/internal/handlers"
	"smart_canteen/internal/middleware"
	"smart_canteen/internal/migrations"
	"smart_canteen/internal/redis"
	"smart_canteen/internal/repository"
	"smart_canteen/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Seed default staff account and sample menu
	if err := migrations.SeedDefaultData(db, cfg.DefaultStaffUser, cfg.DefaultStaffPass, cfg.DefaultStaffEmail); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	staffRepo := repository.NewStaffRepository(db)

	// Initialize services
	menuService := services.NewMenuService(menuRepo, redisClient, time.Duration(cfg.MenuCacheTTL)*time.Second)
	orderService := services.NewOrderService(orderRepo, menuRepo, redisClient, time.Duration(cfg.StatusCacheTTL)*time.Second)
	staffService := services.NewStaffService(staffRepo)

	// Initialize handlers
	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Setup routes
	router := gin.Default()
	staffOnly := middleware.StaffOnly(cfg.AdminAPIKey, staffService)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Menu catalog
	router.GET("/menu", menuHandler.ListItems)
	router.GET("/menu/categories", menuHandler.ListCategories)
	router.GET("/menu/:id", menuHandler.GetItem)
	router.POST("/menu", staffOnly, menuHandler.CreateItem)
	router.PUT("/menu/:id", staffOnly, menuHandler.UpdateItem)
	router.DELETE("/menu/:id", staffOnly, menuHandler.DeleteItem)

	// Orders
	router.POST("/orders", orderHandler.CreateOrder)
	router.GET("/orders", staffOnly, orderHandler.ListOrders)
	router.GET("/orders/:id", orderHandler.GetOrder)
	router.PATCH("/orders/:id/status", staffOnly, orderHandler.UpdateStatus)

	// Customer status polling by tracking token
	router.GET("/status/:token", orderHandler.GetStatus)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
