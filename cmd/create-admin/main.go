package main

import (
	"log"

	"go-faktur-api/internal/config"
	"go-faktur-api/internal/model"
	"go-faktur-api/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

// One-shot tool: create the bootstrap admin account, or reset its
// password when it already exists.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := db.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPass), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var user model.User
	if err := db.Where("email = ?", cfg.AdminEmail).First(&user).Error; err == nil {
		if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
			log.Fatalf("failed to reset password: %v", err)
		}
		log.Printf("password for %s has been reset", cfg.AdminEmail)
		return
	}

	admin := &model.User{
		Username: "admin",
		Email:    cfg.AdminEmail,
		Password: string(hashedPassword),
		Role:     model.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}
	log.Printf("admin user created: %s", cfg.AdminEmail)
}
