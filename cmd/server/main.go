package main

import (
	"log"
	"net/http"
	"os"

	_ "pcosapi/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"pcosapi/internal/auth"
	"pcosapi/internal/cache"
	"pcosapi/internal/config"
	"pcosapi/internal/db"
	"pcosapi/internal/handler"
	"pcosapi/internal/model"
	"pcosapi/internal/predictor"
	"pcosapi/internal/repository"
	"pcosapi/internal/router"
	"pcosapi/internal/service"
)

// @title PCOS Prediction API
// @version 1.0
// @description PCOS risk prediction API with JWT authentication, prediction history, and lifestyle screening.
// @host localhost:8080
// @BasePath /
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

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.SymptomLog{},
			&model.Prediction{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Prediction{},
		&model.SymptomLog{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Model artifacts are loaded once; absence degrades /predict instead of
	// failing startup.
	artifacts, err := predictor.LoadArtifacts(cfg.ModelPath, cfg.ScalerPath, cfg.FeaturesPath)
	if err != nil {
		log.Printf("Warning: failed to load model artifacts: %v", err)
		artifacts = nil
	} else {
		log.Printf("Model loaded with features: %v", artifacts.Features)
	}
	gateway := predictor.New(artifacts)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	predictionRepo := repository.NewPredictionRepository(gormDB)
	symptomLogRepo := repository.NewSymptomLogRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, cacheClient, cfg.UpdateLastLogin)
	predictionService := service.NewPredictionService(gateway, predictionRepo)
	lifestyleService := service.NewLifestyleService(predictionRepo, symptomLogRepo)

	// Initialize handlers
	metaHandler := handler.NewMetaHandler(gateway, gormDB)
	authHandler := handler.NewAuthHandler(authService)
	predictionHandler := handler.NewPredictionHandler(predictionService)
	lifestyleHandler := handler.NewLifestyleHandler(lifestyleService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		metaHandler,
		authHandler,
		predictionHandler,
		lifestyleHandler,
	)

	// Log swagger full path
	var swaggerURL string
	if cfg.SwaggerHost != "" {
		// SwaggerHost may already include scheme (http:// or https://)
		if len(cfg.SwaggerHost) >= 7 && cfg.SwaggerHost[:7] == "http://" {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else if len(cfg.SwaggerHost) >= 8 && cfg.SwaggerHost[:8] == "https://" {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	} else {
		swaggerURL = "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
