package locationrepo

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/location"
	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLocationRepository reads and writes locations using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a repository bound to db, which may be a transaction.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// All returns every location ordered by UN/LOCODE.
func (r *GormLocationRepository) All(ctx context.Context) ([]location.Location, error) {
	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).Order("unlocode").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("all locations", err)
	}

	locations := make([]location.Location, 0, len(dtos))
	for _, dto := range dtos {
		l, err := ToDomain(dto)
		if err != nil {
			return nil, errs.NewPersistenceError("all locations", err)
		}
		locations = append(locations, l)
	}

	return locations, nil
}

// Get retrieves a location by UN/LOCODE.
func (r *GormLocationRepository) Get(ctx context.Context, code kernel.UnLocode) (location.Location, error) {
	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "unlocode = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return location.Location{}, errs.NewObjectNotFoundError("location", code.String())
		}
		return location.Location{}, errs.NewPersistenceError("obtain location", err)
	}

	l, err := ToDomain(dto)
	if err != nil {
		return location.Location{}, errs.NewPersistenceError("obtain location", err)
	}
	return l, nil
}

func (r *GormLocationRepository) Exists(ctx context.Context, code kernel.UnLocode) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&LocationDTO{}).
		Where("unlocode = ?", code.String()).
		Count(&n).Error; err != nil {
		return false, errs.NewPersistenceError("location exists", err)
	}
	return n > 0, nil
}

// Save inserts l, or overwrites the name and region of the row with the same UN/LOCODE.
func (r *GormLocationRepository) Save(ctx context.Context, l location.Location) (location.Location, error) {
	if err := l.Validate(); err != nil {
		return location.Location{}, err
	}

	dto := FromDomain(l)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "unlocode"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "region"}),
		}).
		Create(&dto).Error; err != nil {
		return location.Location{}, errs.NewPersistenceError("save location", err)
	}

	return r.Get(ctx, l.UnLocode())
}
