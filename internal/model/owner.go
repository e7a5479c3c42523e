package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Owner struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	IdentityNumber string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"identity_number"`
	FullName       string    `gorm:"type:varchar(128);not null" json:"full_name"`
	Phone          *string   `gorm:"type:varchar(32)" json:"phone"`
	Email          *string   `gorm:"type:varchar(128)" json:"email"`
	Address        *string   `gorm:"type:text" json:"address"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Owner) TableName() string {
	return "owners"
}

func (o *Owner) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
