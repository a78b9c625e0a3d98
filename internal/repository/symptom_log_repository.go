package repository

import (
	"context"

	"gorm.io/gorm"

	"pcosapi/internal/model"
)

// SymptomLogRepository defines symptom log persistence operations. Logs are
// append-only.
type SymptomLogRepository interface {
	Create(ctx context.Context, log *model.SymptomLog) error
}

type symptomLogRepository struct {
	db *gorm.DB
}

// NewSymptomLogRepository creates a new symptom log repository.
func NewSymptomLogRepository(db *gorm.DB) SymptomLogRepository {
	return &symptomLogRepository{db: db}
}

func (r *symptomLogRepository) Create(ctx context.Context, log *model.SymptomLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
