package config

import (
	"log"

	"pifah-api/models"
)

// MigrateDB creates or updates the schema for every persisted model.
func MigrateDB() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Country{},
		&models.Project{},
		&models.Notification{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database schema:", err)
	}

	log.Println("Database schema migrated")
}
