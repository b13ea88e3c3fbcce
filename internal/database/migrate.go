package database

import (
	"gorm.io/gorm"

	"github.com/nikahlink/backend/internal/models"
)

// RunMigrations applies the schema for every model. AutoMigrate is
// used for both Postgres and the in-memory SQLite test database; the
// unique indexes it creates (biodata_id, email, viewer+biodata pair)
// are load-bearing for the identity and favorite invariants.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Biodata{},
		&models.Account{},
		&models.PremiumRequest{},
		&models.FavoriteLink{},
		&models.PaymentRecord{},
	)
}
