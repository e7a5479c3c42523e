package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FineStatus string

const (
	FineStatusPending FineStatus = "Pendiente"
	FineStatusPaid    FineStatus = "Pagado"
)

type Fine struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	VehicleID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	IssuedOn      time.Time       `gorm:"type:date;not null" json:"issued_on"`
	ViolationType string          `gorm:"type:varchar(128);not null" json:"violation_type"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Status        FineStatus      `gorm:"type:varchar(32);not null" json:"status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Fine) TableName() string {
	return "fines"
}

func (f *Fine) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
