package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Biodata type values.
const (
	BiodataTypeMale   = "Male"
	BiodataTypeFemale = "Female"
)

// Biodata is a matrimonial profile. BiodataID is the public sequential
// identifier; it is assigned once at creation and never reused.
type Biodata struct {
	ID                uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	BiodataID         int       `gorm:"uniqueIndex;not null" json:"biodata_id"`
	Email             string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	BiodataType       string    `gorm:"size:10;not null" json:"biodata_type"`
	Premium           bool      `gorm:"not null;default:false" json:"premium"`
	MarriageCompleted bool      `gorm:"not null;default:false" json:"marriage_completed"`

	Name                  string `gorm:"size:100;not null" json:"name"`
	ProfileImage          string `gorm:"size:255" json:"profile_image"`
	DateOfBirth           string `gorm:"size:20" json:"date_of_birth"`
	Height                string `gorm:"size:20" json:"height"`
	Weight                string `gorm:"size:20" json:"weight"`
	Age                   int    `json:"age"`
	Occupation            string `gorm:"size:100" json:"occupation"`
	Race                  string `gorm:"size:50" json:"race"`
	FathersName           string `gorm:"size:100" json:"fathers_name"`
	MothersName           string `gorm:"size:100" json:"mothers_name"`
	PermanentDivision     string `gorm:"size:50" json:"permanent_division"`
	PresentDivision       string `gorm:"size:50" json:"present_division"`
	ExpectedPartnerAge    string `gorm:"size:20" json:"expected_partner_age"`
	ExpectedPartnerHeight string `gorm:"size:20" json:"expected_partner_height"`
	ExpectedPartnerWeight string `gorm:"size:20" json:"expected_partner_weight"`
	Mobile                string `gorm:"size:30" json:"mobile"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Biodata) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (Biodata) TableName() string {
	return "biodatas"
}
