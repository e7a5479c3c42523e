package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vehicle-query-service/internal/model"
)

type FineRepository struct {
	db *gorm.DB
}

func NewFineRepository(db *gorm.DB) *FineRepository {
	return &FineRepository{db: db}
}

func (r *FineRepository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.Fine, error) {
	var fines []model.Fine
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("issued_on DESC").
		Find(&fines).Error
	if err != nil {
		return nil, err
	}
	return fines, nil
}
