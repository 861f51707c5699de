package db

import (
	"log"
	"os"

	"github.com/dobromiryor/yum-sub000/internal/models"
	"github.com/dobromiryor/yum-sub000/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=yum port=5432 sslmode=disable TimeZone=UTC"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Comment{},
		&models.Report{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedUsers()
	seedRecipes()
}

// seedUsers creates a default admin account on first boot so the
// moderation surface is reachable. Registration is out of scope here;
// accounts are provisioned externally.
func seedUsers() {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Println("Users already seeded, skipping")
		return
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changeme"
	}
	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("Failed to hash seed admin password: %v", err)
	}

	admin := models.User{
		Username: "admin",
		Email:    "admin@yum.local",
		Password: hash,
		Role:     "admin",
		Avatar:   utils.GetRandomEmoji(),
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to create admin user: %v", err)
		return
	}
	log.Println("Seed admin user created")
}

func seedRecipes() {
	var count int64
	DB.Model(&models.Recipe{}).Count(&count)
	if count > 0 {
		log.Println("Recipes already seeded, skipping")
		return
	}

	var admin models.User
	if err := DB.Where("role = ?", "admin").First(&admin).Error; err != nil {
		log.Printf("No admin user to own seed recipes: %v", err)
		return
	}

	recipes := []models.Recipe{
		{
			Pid:         utils.RandStringBytesMaskImpr(8),
			UserID:      admin.ID,
			Title:       "Shopska Salad",
			Description: "Chop tomatoes, cucumbers, peppers and onion. Top with grated sirene.",
			Servings:    2,
		},
		{
			Pid:         utils.RandStringBytesMaskImpr(8),
			UserID:      admin.ID,
			Title:       "Banitsa",
			Description: "Layer filo sheets with whisked eggs and cheese, bake until golden.",
			Servings:    6,
		},
	}

	for _, recipe := range recipes {
		if err := DB.Create(&recipe).Error; err != nil {
			log.Printf("Failed to create recipe %s: %v", recipe.Title, err)
		}
	}
	log.Println("Initial recipes created successfully")
}
