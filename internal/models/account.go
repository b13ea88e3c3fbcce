package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account roles.
const (
	RoleMember  = "member"
	RolePremium = "premium"
	RoleAdmin   = "admin"
)

// Account is the platform membership record. One account per email;
// Role is only ever elevated by the premium workflow or an admin.
type Account struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"size:100" json:"name"`
	Role      string    `gorm:"size:20;not null;default:'member'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (Account) TableName() string {
	return "accounts"
}
