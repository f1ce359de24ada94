package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "halalfinder/docs" // swagger docs

	"halalfinder/internal/auth"
	"halalfinder/internal/cache"
	"halalfinder/internal/config"
	"halalfinder/internal/db"
	"halalfinder/internal/handler"
	"halalfinder/internal/model"
	"halalfinder/internal/places"
	"halalfinder/internal/repository"
	"halalfinder/internal/router"
	"halalfinder/internal/service"
)

// @title Halal Finder API
// @version 1.0
// @description Halal restaurant discovery and owner listings with JWT authentication.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Restaurant{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	restaurantRepo := repository.NewRestaurantRepository(gormDB)

	// Initialize gateway and auth components
	placesClient := places.NewClient(cfg.PlacesAPIKey)
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, restaurantRepo, cacheClient)
	restaurantService := service.NewRestaurantService(restaurantRepo)
	searchService := service.NewSearchService(placesClient)

	// Initialize handlers
	searchHandler := handler.NewSearchHandler(searchService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	restaurantHandler := handler.NewRestaurantHandler(restaurantService)

	// Register routes
	router.Register(
		e,
		cfg,
		searchHandler,
		authHandler,
		userHandler,
		restaurantHandler,
	)

	if cfg.PlacesAPIKey == "" {
		log.Println("Warning: GOOGLE_API_KEY is not set, searches will fail")
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
