package main

import (
	"log"
	"net/http"

	_ "placeshare/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"placeshare/internal/auth"
	"placeshare/internal/cache"
	"placeshare/internal/config"
	"placeshare/internal/db"
	"placeshare/internal/geo"
	"placeshare/internal/handler"
	"placeshare/internal/model"
	"placeshare/internal/repository"
	"placeshare/internal/router"
	"placeshare/internal/service"
	"placeshare/internal/storage"
)

// @title Places Sharing API
// @version 1.0
// @description Backend for a places sharing application: users sign up, log in, and manage place records with geocoded addresses and image uploads.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Place{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	fileStore, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("file store init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	placeRepo := repository.NewPlaceRepository(gormDB)

	// Initialize auth and gateways
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	geocoder := geo.NewLocationIQ(cfg.LocationIQAPIKey)

	// Initialize services
	userService := service.NewUserService(userRepo, jwtService)
	placeService := service.NewPlaceService(placeRepo, userRepo, geocoder, fileStore, cacheClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService, fileStore)
	placeHandler := handler.NewPlaceHandler(placeService, fileStore)

	// Register routes
	router.Register(e, cfg, jwtService, userHandler, placeHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
