package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnershipRecord is one past or current holder of a vehicle. OwnedTo is nil
// for the current owner.
type OwnershipRecord struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	VehicleID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	IdentityNumber string     `gorm:"type:varchar(10);not null" json:"identity_number"`
	FullName       *string    `gorm:"type:varchar(128)" json:"full_name"`
	OwnedFrom      time.Time  `gorm:"type:date;not null" json:"owned_from"`
	OwnedTo        *time.Time `gorm:"type:date" json:"owned_to"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (OwnershipRecord) TableName() string {
	return "ownership_records"
}

func (r *OwnershipRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
