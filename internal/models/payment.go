package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentRecord is an append-only audit row for a completed external
// charge. Amount is in the smallest currency unit.
type PaymentRecord struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	BiodataID int       `gorm:"not null;index" json:"biodata_id"`
	Amount    int64     `gorm:"not null" json:"amount"`
	IntentID  string    `gorm:"size:100" json:"intent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *PaymentRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (PaymentRecord) TableName() string {
	return "payment_records"
}
