package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vehicle-query-service/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// GetByPlateAndOwner returns the vehicle registered under plate whose current
// owner holds identityNumber, with the owner loaded. plate must already be
// normalized. A missing vehicle yields nil, nil.
func (r *VehicleRepository) GetByPlateAndOwner(ctx context.Context, plate, identityNumber string) (*model.Vehicle, error) {
	if plate == "" || identityNumber == "" {
		return nil, nil
	}
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Joins("JOIN owners ON owners.id = vehicles.owner_id").
		Where("vehicles.plate_number = ? AND owners.identity_number = ?", plate, identityNumber).
		First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

// Ping checks that the database answers.
func (r *VehicleRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
