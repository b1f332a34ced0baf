package postgres

import (
	"cargo/internal/adapters/out/postgres/cargorepo"
	"cargo/internal/adapters/out/postgres/handlingrepo"
	"cargo/internal/adapters/out/postgres/locationrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables of every repository. Locations come
// first because cargoes reference them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&locationrepo.LocationDTO{},
		&cargorepo.CargoDTO{},
		&handlingrepo.HandlingEventDTO{},
	)
}
