package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pcosapi/internal/model"
	"pcosapi/internal/predictor"
)

// MockPredictionRepository is a mock implementation of PredictionRepository.
type MockPredictionRepository struct {
	mock.Mock
}

func (m *MockPredictionRepository) Create(ctx context.Context, prediction *model.Prediction) error {
	args := m.Called(ctx, prediction)
	return args.Error(0)
}

func (m *MockPredictionRepository) ListByUser(ctx context.Context, userID uint) ([]model.Prediction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Prediction), args.Error(1)
}

func testGateway() *predictor.Gateway {
	return predictor.New(&predictor.Artifacts{
		Model:    &predictor.LogisticModel{Coefficients: []float64{1.0}, Intercept: 0.0},
		Scaler:   &predictor.StandardScaler{Mean: []float64{0.0}, Scale: []float64{1.0}},
		Features: []string{"X"},
	})
}

func TestPredictionService_Predict(t *testing.T) {
	mockRepo := new(MockPredictionRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Prediction")).Return(nil)

	service := NewPredictionService(testGateway(), mockRepo)
	input := model.JSONMap{"X": 2.0}

	result, err := service.Predict(context.Background(), 42, input)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Label)
	assert.Equal(t, predictor.RiskLevelFor(result.Probability), result.RiskLevel)

	saved := mockRepo.Calls[0].Arguments.Get(1).(*model.Prediction)
	assert.Equal(t, uint(42), saved.UserID)
	assert.Equal(t, result.Label, saved.PredictionResult)
	assert.Equal(t, result.Probability, saved.Probability)
	assert.Equal(t, input, saved.InputData)
	mockRepo.AssertExpectations(t)
}

func TestPredictionService_PredictSurvivesFailedSave(t *testing.T) {
	mockRepo := new(MockPredictionRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Prediction")).Return(errors.New("db down"))

	service := NewPredictionService(testGateway(), mockRepo)

	result, err := service.Predict(context.Background(), 42, model.JSONMap{"X": 2.0})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	mockRepo.AssertExpectations(t)
}

func TestPredictionService_PredictMissingFeatureDoesNotRecord(t *testing.T) {
	mockRepo := new(MockPredictionRepository)

	service := NewPredictionService(testGateway(), mockRepo)

	_, err := service.Predict(context.Background(), 42, model.JSONMap{"Y": 1.0})

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPredictionService_History(t *testing.T) {
	now := time.Now()
	rows := []model.Prediction{
		{ID: 2, UserID: 42, CreatedAt: now},
		{ID: 1, UserID: 42, CreatedAt: now.Add(-time.Hour)},
	}

	mockRepo := new(MockPredictionRepository)
	mockRepo.On("ListByUser", mock.Anything, uint(42)).Return(rows, nil)

	service := NewPredictionService(testGateway(), mockRepo)

	got, err := service.History(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, rows, got)
	mockRepo.AssertExpectations(t)
}

func TestPredictionService_HistoryEmptyOnStoreFailure(t *testing.T) {
	mockRepo := new(MockPredictionRepository)
	mockRepo.On("ListByUser", mock.Anything, uint(42)).Return(nil, errors.New("db down"))

	service := NewPredictionService(testGateway(), mockRepo)

	got, err := service.History(context.Background(), 42)

	assert.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	mockRepo.AssertExpectations(t)
}
