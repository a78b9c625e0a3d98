package repository

import (
	"context"

	"gorm.io/gorm"

	"pcosapi/internal/model"
)

// PredictionRepository defines prediction persistence operations.
type PredictionRepository interface {
	Create(ctx context.Context, prediction *model.Prediction) error
	ListByUser(ctx context.Context, userID uint) ([]model.Prediction, error)
}

type predictionRepository struct {
	db *gorm.DB
}

// NewPredictionRepository creates a new prediction repository.
func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

// Create appends a prediction record.
func (r *predictionRepository) Create(ctx context.Context, prediction *model.Prediction) error {
	return r.db.WithContext(ctx).Create(prediction).Error
}

// ListByUser returns the user's predictions, newest first.
func (r *predictionRepository) ListByUser(ctx context.Context, userID uint) ([]model.Prediction, error) {
	var predictions []model.Prediction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}
