package service

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"pcosapi/internal/model"
	"pcosapi/internal/predictor"
	"pcosapi/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// PredictionService runs the trained classifier and keeps the per-user
// prediction ledger.
type PredictionService interface {
	Predict(ctx context.Context, userID uint, input model.JSONMap) (*predictor.Result, error)
	History(ctx context.Context, userID uint) ([]model.Prediction, error)
}

type predictionService struct {
	gateway        *predictor.Gateway
	predictionRepo repository.PredictionRepository
}

// NewPredictionService creates a new prediction service.
func NewPredictionService(gateway *predictor.Gateway, predictionRepo repository.PredictionRepository) PredictionService {
	return &predictionService{
		gateway:        gateway,
		predictionRepo: predictionRepo,
	}
}

// Predict invokes the model gateway and records the result. Persistence is
// best-effort: a failed insert is logged, never retried, and the inference
// result is still returned to the caller.
func (s *predictionService) Predict(ctx context.Context, userID uint, input model.JSONMap) (*predictor.Result, error) {
	result, err := s.gateway.Predict(input)
	if err != nil {
		return nil, err
	}

	record := &model.Prediction{
		UserID:           userID,
		PredictionResult: result.Label,
		Probability:      result.Probability,
		RiskLevel:        result.RiskLevel,
		InputData:        input,
	}
	if err := s.predictionRepo.Create(ctx, record); err != nil {
		logger.Warn().Err(err).Uint("user_id", userID).Msg("failed to save prediction")
	}

	return result, nil
}

// History returns the user's predictions, newest first. An unreachable store
// yields an empty list rather than an error so the endpoint stays non-fatal.
func (s *predictionService) History(ctx context.Context, userID uint) ([]model.Prediction, error) {
	predictions, err := s.predictionRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Warn().Err(err).Uint("user_id", userID).Msg("failed to fetch prediction history")
		return []model.Prediction{}, nil
	}
	return predictions, nil
}
