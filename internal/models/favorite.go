package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavoriteLink is a bookmark from one viewer to one biodata. The
// composite unique index keeps one link per (viewer, biodata) pair.
type FavoriteLink struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	ViewerEmail string    `gorm:"size:255;not null;uniqueIndex:idx_viewer_biodata" json:"viewer_email"`
	BiodataID   int       `gorm:"not null;uniqueIndex:idx_viewer_biodata" json:"biodata_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (f *FavoriteLink) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (FavoriteLink) TableName() string {
	return "favorite_links"
}
