package migrations

import (
	"log"
	"smart_canteen/internal/database"
	"smart_canteen/internal/models"
	"smart_canteen/internal/repository"
	"smart_canteen/internal/services"

	"gorm.io/gorm"
)

// Reset drops and recreates all tables, then seeds default data. Used by the
// init-db tool; the server itself only migrates and seeds.
func Reset(db *gorm.DB, staffUser, staffPass, staffEmail string) error {
	log.Println("Dropping existing tables...")
	err := db.Migrator().DropTable(
		&models.MenuItem{},
		&models.Order{},
		&models.OrderLine{},
		&models.Staff{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	log.Println("Creating tables...")
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	return SeedDefaultData(db, staffUser, staffPass, staffEmail)
}

// SeedDefaultData creates the default staff account and, when the catalog is
// empty, the sample menu.
func SeedDefaultData(db *gorm.DB, staffUser, staffPass, staffEmail string) error {
	log.Println("Creating default data...")

	staffService := services.NewStaffService(repository.NewStaffRepository(db))

	var staffCount int64
	if err := db.Model(&models.Staff{}).Where("username = ?", staffUser).Count(&staffCount).Error; err != nil {
		return err
	}
	if staffCount == 0 {
		staff := &models.Staff{
			Username: staffUser,
			Email:    staffEmail,
			IsActive: true,
		}
		if err := staffService.CreateStaff(staff, staffPass); err != nil {
			log.Printf("Warning: Failed to create default staff account: %v", err)
		} else {
			log.Printf("Default staff account created: %s", staffUser)
		}
	}

	var itemCount int64
	if err := db.Model(&models.MenuItem{}).Count(&itemCount).Error; err != nil {
		return err
	}
	if itemCount > 0 {
		return nil
	}

	log.Println("Seeding sample menu...")
	sampleItems := []models.MenuItem{
		{Name: "Veg Burger", Category: "Burgers", Price: 5.99, Description: "Fresh veggie patty with lettuce and tomato", Available: true, PrepTimeMinutes: 10},
		{Name: "Chicken Burger", Category: "Burgers", Price: 7.99, Description: "Grilled chicken with special sauce", Available: true, PrepTimeMinutes: 15},
		{Name: "Margherita Pizza", Category: "Pizza", Price: 9.99, Description: "Classic tomato and mozzarella", Available: true, PrepTimeMinutes: 20},
		{Name: "Pepperoni Pizza", Category: "Pizza", Price: 11.99, Description: "Loaded with pepperoni slices", Available: true, PrepTimeMinutes: 20},
		{Name: "Caesar Salad", Category: "Salads", Price: 6.99, Description: "Romaine lettuce with caesar dressing", Available: true, PrepTimeMinutes: 5},
		{Name: "Greek Salad", Category: "Salads", Price: 7.99, Description: "Fresh vegetables with feta cheese", Available: true, PrepTimeMinutes: 5},
		{Name: "French Fries", Category: "Sides", Price: 3.99, Description: "Crispy golden fries", Available: true, PrepTimeMinutes: 7},
		{Name: "Onion Rings", Category: "Sides", Price: 4.99, Description: "Battered and fried onion rings", Available: true, PrepTimeMinutes: 8},
		{Name: "Coke", Category: "Beverages", Price: 2.99, Description: "Chilled soft drink", Available: true, PrepTimeMinutes: 1},
		{Name: "Fresh Orange Juice", Category: "Beverages", Price: 4.99, Description: "Freshly squeezed orange juice", Available: true, PrepTimeMinutes: 3},
		{Name: "Coffee", Category: "Beverages", Price: 3.49, Description: "Hot brewed coffee", Available: true, PrepTimeMinutes: 2},
		{Name: "Chocolate Cake", Category: "Desserts", Price: 5.99, Description: "Rich chocolate layer cake", Available: true, PrepTimeMinutes: 2},
		{Name: "Ice Cream Sundae", Category: "Desserts", Price: 4.99, Description: "Vanilla ice cream with toppings", Available: true, PrepTimeMinutes: 3},
	}
	if err := db.Create(&sampleItems).Error; err != nil {
		return err
	}

	log.Println("Default data created successfully!")
	return nil
}
