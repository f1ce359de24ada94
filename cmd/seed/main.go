package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"halalfinder/internal/config"
	"halalfinder/internal/db"
	"halalfinder/internal/model"
	"halalfinder/internal/repository"
)

const (
	demoEmail    = "owner@example.com"
	demoPassword = "Owner123"
)

// Seeds a demo owner with a couple of claimed listings for local development.
func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Restaurant{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	restaurantRepo := repository.NewRestaurantRepository(gormDB)

	owner, err := userRepo.FindByEmail(ctx, demoEmail)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
		if hashErr != nil {
			log.Fatalf("Failed to hash demo password: %v", hashErr)
		}
		owner = &model.User{
			Email:        demoEmail,
			PasswordHash: string(hashed),
			PhoneNumber:  "+353 1 555 0100",
		}
		if err := userRepo.Create(ctx, owner); err != nil {
			log.Fatalf("Failed to create demo owner: %v", err)
		}
		log.Printf("Created demo owner %s (id=%d)", owner.Email, owner.ID)
	} else if err != nil {
		log.Fatalf("Failed to look up demo owner: %v", err)
	} else {
		log.Printf("Demo owner %s already exists (id=%d)", owner.Email, owner.ID)
	}

	listings := []model.Restaurant{
		{
			Name:               "Zaytoon",
			Address:            "14-15 Parliament St, Dublin 2",
			PlaceID:            "seed-zaytoon-parliament-st",
			OwnerID:            &owner.ID,
			PhoneNumber:        "+353 1 677 3595",
			Website:            "https://zaytoon.ie",
			HalalCertification: "certified by supplier",
		},
		{
			Name:               "Damascus Gate",
			Address:            "8 Camden St Lower, Dublin 2",
			PlaceID:            "seed-damascus-gate-camden-st",
			OwnerID:            &owner.ID,
			HalalCertification: "self-declared",
		},
	}

	created := 0
	for i := range listings {
		if _, err := restaurantRepo.FindByPlaceID(ctx, listings[i].PlaceID); err == nil {
			log.Printf("Listing %s already seeded, skipping", listings[i].Name)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check listing %s: %v", listings[i].Name, err)
		}
		if err := restaurantRepo.Create(ctx, &listings[i]); err != nil {
			log.Fatalf("Failed to seed listing %s: %v", listings[i].Name, err)
		}
		created++
	}

	log.Printf("Seed complete: %d new listing(s)", created)
}
