package main

import (
	"flag"
	"log"
	"time"

	"pifah-api/config"
	"pifah-api/models"
	"pifah-api/utils"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Bootstraps the first administrator account so the role-management
// endpoints have someone to call them.
func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	firstName := flag.String("first-name", "PIFAH", "admin first name")
	lastName := flag.String("last-name", "Administrator", "admin last name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Both -email and -password are required")
	}
	if !utils.ValidateEmail(*email) {
		log.Fatalf("Invalid email address: %s", *email)
	}
	if ok, msg := utils.ValidatePassword(*password); !ok {
		log.Fatal(msg)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()
	config.MigrateDB()

	var existing models.User
	if err := config.DB.Where("email = ?", *email).First(&existing).Error; err == nil {
		log.Fatalf("User %s already exists", *email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.User{
		UserID:    uuid.NewString(),
		Email:     *email,
		Password:  string(hash),
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      models.RoleAdmin,
		CreateAt:  time.Now(),
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Printf("Admin account created: %s (%s)", admin.Email, admin.UserID)
}
