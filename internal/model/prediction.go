package model

import "time"

// RiskLevel is the discretized risk tier derived from the positive-class
// probability.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// Prediction represents one inference event recorded for a user.
type Prediction struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"user_id" gorm:"not null;index"`
	PredictionResult int       `json:"prediction_result" gorm:"not null"`
	Probability      float64   `json:"probability" gorm:"not null"`
	RiskLevel        RiskLevel `json:"risk_level" gorm:"size:50"`
	InputData        JSONMap   `json:"input_data" gorm:"type:json"`
	CreatedAt        time.Time `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
