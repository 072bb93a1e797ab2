package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"placeshare/internal/config"
	"placeshare/internal/db"
	"placeshare/internal/model"
	"placeshare/internal/repository"
)

// seedUser is a demo account with a handful of places.
type seedUser struct {
	Name     string
	Email    string
	Password string
	Places   []seedPlace
}

type seedPlace struct {
	Title       string
	Description string
	Address     string
	Lat         float64
	Lng         float64
}

var demoUsers = []seedUser{
	{
		Name:     "Max Schwarz",
		Email:    "max@example.com",
		Password: "testers",
		Places: []seedPlace{
			{
				Title:       "Empire State Building",
				Description: "One of the most famous sky scrapers in the world!",
				Address:     "20 W 34th St, New York, NY 10001",
				Lat:         40.7484405,
				Lng:         -73.9878584,
			},
			{
				Title:       "Googleplex",
				Description: "Google headquarters in Mountain View.",
				Address:     "1600 Amphitheatre Parkway, Mountain View, CA",
				Lat:         37.4224,
				Lng:         -122.0842,
			},
		},
	},
	{
		Name:     "Julie Jones",
		Email:    "julie@example.com",
		Password: "testers",
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Place{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	placeRepo := repository.NewPlaceRepository(gormDB)
	ctx := context.Background()

	users, places, err := seed(ctx, userRepo, placeRepo)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", users)
	log.Printf("  - Places created: %d", places)
}

// seed creates the demo users and their places, skipping users that already
// exist so the script can run repeatedly.
func seed(ctx context.Context, userRepo repository.UserRepository, placeRepo repository.PlaceRepository) (users int, places int, err error) {
	for _, demo := range demoUsers {
		existing, err := userRepo.FindByEmail(ctx, demo.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return users, places, fmt.Errorf("error checking user %s: %w", demo.Email, err)
		}
		if existing != nil {
			log.Printf("User %s already exists, skipping", demo.Email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(demo.Password), bcrypt.DefaultCost)
		if err != nil {
			return users, places, fmt.Errorf("error hashing password for %s: %w", demo.Email, err)
		}

		user := &model.User{
			Name:         demo.Name,
			Email:        demo.Email,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return users, places, fmt.Errorf("error creating user %s: %w", demo.Email, err)
		}
		users++

		for _, p := range demo.Places {
			place := &model.Place{
				Title:       p.Title,
				Description: p.Description,
				Address:     p.Address,
				Location:    model.Location{Lat: p.Lat, Lng: p.Lng},
				CreatorID:   user.ID,
			}
			if err := placeRepo.CreateWithOwner(ctx, place); err != nil {
				return users, places, fmt.Errorf("error creating place %q: %w", p.Title, err)
			}
			places++
		}
	}

	return users, places, nil
}
