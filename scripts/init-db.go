package main

import (
	"fmt"
	"log"

	"smart_canteen/internal/config"
	"smart_canteen/internal/database"
	"smart_canteen/internal/migrations"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Drop, recreate and seed
	if err := migrations.Reset(db, cfg.DefaultStaffUser, cfg.DefaultStaffPass, cfg.DefaultStaffEmail); err != nil {
		log.Fatal("Failed to reset database:", err)
	}

	fmt.Println("Database initialized successfully!")
	fmt.Printf("Default staff account: %s\n", cfg.DefaultStaffUser)
}
