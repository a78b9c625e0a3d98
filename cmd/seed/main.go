package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pcosapi/internal/config"
	"pcosapi/internal/db"
	"pcosapi/internal/model"
	"pcosapi/internal/predictor"
	"pcosapi/internal/repository"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "password123"
)

// sampleProfiles are the low/moderate/high demo feature sets.
var sampleProfiles = []map[string]interface{}{
	{"Age": 25, "BMI": 21, "Insulin": 8, "Testosterone": 25, "LH": 4, "FSH": 8, "Glucose": 80, "Cholesterol": 160},
	{"Age": 28, "BMI": 26, "Insulin": 15, "Testosterone": 45, "LH": 8, "FSH": 6, "Glucose": 95, "Cholesterol": 190},
	{"Age": 30, "BMI": 32, "Insulin": 25, "Testosterone": 70, "LH": 18, "FSH": 5, "Glucose": 120, "Cholesterol": 240},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Prediction{}, &model.SymptomLog{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	artifacts, err := predictor.LoadArtifacts(cfg.ModelPath, cfg.ScalerPath, cfg.FeaturesPath)
	if err != nil {
		log.Fatalf("Failed to load model artifacts: %v", err)
	}
	gateway := predictor.New(artifacts)

	userRepo := repository.NewUserRepository(gormDB)
	predictionRepo := repository.NewPredictionRepository(gormDB)
	ctx := context.Background()

	user, err := ensureDemoUser(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}
	log.Printf("Demo user ready: %s (id=%d)", user.Email, user.ID)

	seeded := 0
	for _, profile := range sampleProfiles {
		result, err := gateway.Predict(profile)
		if err != nil {
			log.Printf("Skipping profile, prediction failed: %v", err)
			continue
		}
		record := &model.Prediction{
			UserID:           user.ID,
			PredictionResult: result.Label,
			Probability:      result.Probability,
			RiskLevel:        result.RiskLevel,
			InputData:        model.JSONMap(profile),
		}
		if err := predictionRepo.Create(ctx, record); err != nil {
			log.Printf("Failed to save sample prediction: %v", err)
			continue
		}
		seeded++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Sample predictions created: %d", seeded)
}

// ensureDemoUser returns the demo user, creating it when absent.
func ensureDemoUser(ctx context.Context, repo repository.UserRepository) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, demoEmail)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:        demoEmail,
		PasswordHash: string(hash),
		FullName:     "Demo User",
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
