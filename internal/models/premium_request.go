package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Premium request lifecycle. Accepted is terminal.
const (
	PremiumStatusPending  = "pending"
	PremiumStatusAccepted = "accepted"
)

// PremiumRequest tracks a purchase-to-approval workflow before premium
// is granted on the owning Biodata and Account.
type PremiumRequest struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	BiodataID int       `gorm:"not null;index" json:"biodata_id"`
	Name      string    `gorm:"size:100" json:"name"`
	Status    string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *PremiumRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (PremiumRequest) TableName() string {
	return "premium_requests"
}
