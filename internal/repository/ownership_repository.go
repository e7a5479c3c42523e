package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vehicle-query-service/internal/model"
)

type OwnershipRepository struct {
	db *gorm.DB
}

func NewOwnershipRepository(db *gorm.DB) *OwnershipRepository {
	return &OwnershipRepository{db: db}
}

// ListByVehicle returns the ownership records most recent first.
func (r *OwnershipRepository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.OwnershipRecord, error) {
	var records []model.OwnershipRecord
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("owned_from DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
