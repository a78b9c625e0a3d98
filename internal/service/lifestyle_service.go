package service

import (
	"context"
	"encoding/json"
	"time"

	"pcosapi/internal/model"
	"pcosapi/internal/predictor"
	"pcosapi/internal/repository"
)

// LifestyleHistoryItem is one row of the lifestyle-facing history view.
// Screening results stored through Assess carry the extra fields; rows from
// the trained-model path only fill the basic ones.
type LifestyleHistoryItem struct {
	ID              uint            `json:"id"`
	RiskLevel       model.RiskLevel `json:"risk_level"`
	Probability     float64         `json:"probability"`
	Confidence      interface{}     `json:"confidence,omitempty"`
	PredictionText  interface{}     `json:"prediction_text,omitempty"`
	Recommendations interface{}     `json:"recommendations,omitempty"`
	RiskScore       interface{}     `json:"risk_score,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	Input           interface{}     `json:"input"`
}

// LifestyleService covers the rule-based screening path and the symptom
// tracker.
type LifestyleService interface {
	Assess(ctx context.Context, userID uint, input model.JSONMap) *predictor.Assessment
	SaveSymptomLog(ctx context.Context, userID uint, data model.JSONMap) error
	History(ctx context.Context, userID uint) ([]LifestyleHistoryItem, error)
}

type lifestyleService struct {
	predictionRepo repository.PredictionRepository
	symptomLogRepo repository.SymptomLogRepository
}

// NewLifestyleService creates a new lifestyle service.
func NewLifestyleService(predictionRepo repository.PredictionRepository, symptomLogRepo repository.SymptomLogRepository) LifestyleService {
	return &lifestyleService{
		predictionRepo: predictionRepo,
		symptomLogRepo: symptomLogRepo,
	}
}

// Assess scores the lifestyle payload and persists the full screening result
// into the prediction ledger for unified history. Persistence is best-effort.
func (s *lifestyleService) Assess(ctx context.Context, userID uint, input model.JSONMap) *predictor.Assessment {
	assessment := predictor.AssessLifestyle(input)

	label := 0
	if assessment.Probability >= 0.5 {
		label = 1
	}
	record := &model.Prediction{
		UserID:           userID,
		PredictionResult: label,
		Probability:      assessment.Probability,
		RiskLevel:        assessment.RiskLevel,
		InputData:        toJSONMap(assessment),
	}
	if err := s.predictionRepo.Create(ctx, record); err != nil {
		logger.Warn().Err(err).Uint("user_id", userID).Msg("failed to persist lifestyle assessment")
	}

	return assessment
}

// SaveSymptomLog appends a symptom tracker entry. Unlike Assess, a failed
// write here is surfaced to the caller.
func (s *lifestyleService) SaveSymptomLog(ctx context.Context, userID uint, data model.JSONMap) error {
	return s.symptomLogRepo.Create(ctx, &model.SymptomLog{
		UserID:  userID,
		LogData: data,
	})
}

// History returns the user's prediction rows mapped for the lifestyle
// frontend, newest first. Store failures yield an empty list.
func (s *lifestyleService) History(ctx context.Context, userID uint) ([]LifestyleHistoryItem, error) {
	predictions, err := s.predictionRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Warn().Err(err).Uint("user_id", userID).Msg("failed to fetch lifestyle history")
		return []LifestyleHistoryItem{}, nil
	}

	items := make([]LifestyleHistoryItem, 0, len(predictions))
	for _, p := range predictions {
		item := LifestyleHistoryItem{
			ID:          p.ID,
			RiskLevel:   p.RiskLevel,
			Probability: p.Probability,
			CreatedAt:   p.CreatedAt,
			Input:       p.InputData,
		}
		// Rows written by Assess carry the full screening result.
		if _, ok := p.InputData["prediction_text"]; ok {
			item.Confidence = p.InputData["confidence"]
			item.PredictionText = p.InputData["prediction_text"]
			item.Recommendations = p.InputData["recommendations"]
			item.RiskScore = p.Probability
			if inner, ok := p.InputData["input"]; ok {
				item.Input = inner
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// toJSONMap round-trips a value through JSON into a schema-less map.
func toJSONMap(v interface{}) model.JSONMap {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m model.JSONMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}
