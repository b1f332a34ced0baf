package cargorepo

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/report"
	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const expectedArrivalsQuery = `SELECT destination_unlocode AS city, COUNT(*) AS number_of_cargoes
FROM cargoes
GROUP BY destination_unlocode
ORDER BY destination_unlocode`

// GormCargoRepository reads and writes cargoes using GORM.
type GormCargoRepository struct {
	db *gorm.DB
}

// NewGormCargoRepository creates a repository bound to db, which may be a transaction.
func NewGormCargoRepository(db *gorm.DB) *GormCargoRepository {
	return &GormCargoRepository{db: db}
}

// Save inserts the cargo or overwrites the row with the same tracking id, then
// reads it back with its locations resolved. The referenced locations must exist.
func (r *GormCargoRepository) Save(ctx context.Context, c *cargo.Cargo) (*cargo.Cargo, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tracking_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error; err != nil {
		return nil, errs.NewPersistenceError("save cargo", err)
	}

	saved, err := r.Get(ctx, c.TrackingID())
	if err != nil {
		return nil, errs.NewPersistenceError("save cargo", err)
	}
	return saved, nil
}

// Get retrieves a cargo by tracking id.
func (r *GormCargoRepository) Get(ctx context.Context, id cargo.TrackingID) (*cargo.Cargo, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CargoDTO
	if err := r.db.WithContext(ctx).
		Preload("Origin").
		Preload("Destination").
		First(&dto, "tracking_id = ?", id.UUID().Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cargo", id.String())
		}
		return nil, errs.NewPersistenceError("obtain cargo", err)
	}

	c, err := toDomain(dto)
	if err != nil {
		return nil, errs.NewPersistenceError("obtain cargo", err)
	}
	return c, nil
}

func (r *GormCargoRepository) Exists(ctx context.Context, id cargo.TrackingID) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&CargoDTO{}).
		Where("tracking_id = ?", id.UUID().Bytes()).
		Count(&n).Error; err != nil {
		return false, errs.NewPersistenceError("cargo exists", err)
	}
	return n > 0, nil
}

// Delete removes the cargo row. It does not touch the handling history.
func (r *GormCargoRepository) Delete(ctx context.Context, id cargo.TrackingID) error {
	result := r.db.WithContext(ctx).Delete(&CargoDTO{}, "tracking_id = ?", id.UUID().Bytes())
	if result.Error != nil {
		return errs.NewPersistenceError("delete cargo", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cargo", id.String())
	}
	return nil
}

// ExpectedArrivals counts cargoes per destination, ordered by destination.
func (r *GormCargoRepository) ExpectedArrivals(ctx context.Context) ([]report.ExpectedArrivals, error) {
	var rows []expectedArrivalsRow
	if err := r.db.WithContext(ctx).Raw(expectedArrivalsQuery).Scan(&rows).Error; err != nil {
		return nil, errs.NewPersistenceError("query expected arrivals", err)
	}

	arrivals := make([]report.ExpectedArrivals, 0, len(rows))
	for _, row := range rows {
		city, err := kernel.NewUnLocode(row.City)
		if err != nil {
			return nil, errs.NewPersistenceError("query expected arrivals", err)
		}
		a, err := report.NewExpectedArrivals(city, row.NumberOfCargoes)
		if err != nil {
			return nil, errs.NewPersistenceError("query expected arrivals", err)
		}
		arrivals = append(arrivals, a)
	}

	return arrivals, nil
}

// Infos returns the listing projection of every cargo ordered by tracking id.
func (r *GormCargoRepository) Infos(ctx context.Context) ([]cargo.CargoInfo, error) {
	var dtos []CargoDTO
	if err := r.db.WithContext(ctx).Order("tracking_id").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("all cargoes", err)
	}

	infos := make([]cargo.CargoInfo, 0, len(dtos))
	for _, dto := range dtos {
		info, err := toInfo(dto)
		if err != nil {
			return nil, errs.NewPersistenceError("all cargoes", err)
		}
		infos = append(infos, info)
	}

	return infos, nil
}
