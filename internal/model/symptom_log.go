package model

import "time"

// SymptomLog is an append-only log entry from the symptom tracker.
type SymptomLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	LogData   JSONMap   `json:"log_data" gorm:"type:json"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
