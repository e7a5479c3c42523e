package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vehicle struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	OwnerID             uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner               *Owner     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	PlateNumber         string     `gorm:"type:varchar(16);uniqueIndex;not null" json:"plate_number"`
	Make                *string    `gorm:"type:varchar(64)" json:"make"`
	ModelYear           *int       `json:"model_year"`
	VehicleType         *string    `gorm:"type:varchar(32)" json:"vehicle_type"`
	DisplacementCC      *int       `gorm:"column:displacement_cc" json:"displacement_cc"`
	SoatStatus          *string    `gorm:"type:varchar(32)" json:"soat_status"`
	SoatExpiresOn       *time.Time `gorm:"type:date" json:"soat_expires_on"`
	InspectionStatus    *string    `gorm:"type:varchar(32)" json:"inspection_status"`
	InspectionExpiresOn *time.Time `gorm:"type:date" json:"inspection_expires_on"`
	TaxStatus           *string    `gorm:"type:varchar(32)" json:"tax_status"`
	TaxExpiresOn        *time.Time `gorm:"type:date" json:"tax_expires_on"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// HasTaxRecord reports whether the vehicle tax columns were filled in.
func (v *Vehicle) HasTaxRecord() bool {
	return v.TaxStatus != nil && v.TaxExpiresOn != nil
}
