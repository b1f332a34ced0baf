package handlingrepo

import (
	"context"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/handling"
	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHandlingRepository appends and reads handling events using GORM. It does
// not check that the cargo exists; callers do.
type GormHandlingRepository struct {
	db *gorm.DB
}

func NewGormHandlingRepository(db *gorm.DB) *GormHandlingRepository {
	return &GormHandlingRepository{db: db}
}

func (r *GormHandlingRepository) Add(ctx context.Context, event handling.HandlingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("record handling event", err)
	}
	return nil
}

// History returns the events of a cargo in completion order.
func (r *GormHandlingRepository) History(ctx context.Context, id cargo.TrackingID) (handling.HandlingHistory, error) {
	var dtos []HandlingEventDTO
	if err := r.db.WithContext(ctx).
		Where("tracking_id = ?", id.UUID().Bytes()).
		Order("completed_at, registered_at").
		Find(&dtos).Error; err != nil {
		return handling.HandlingHistory{}, errs.NewPersistenceError("handling history", err)
	}

	events := make([]handling.HandlingEvent, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return handling.HandlingHistory{}, errs.NewPersistenceError("handling history", err)
		}
		events = append(events, e)
	}

	history, err := handling.NewHandlingHistory(id, events)
	if err != nil {
		return handling.HandlingHistory{}, errs.NewPersistenceError("handling history", err)
	}
	return history, nil
}

// DeleteAll removes every event of a cargo.
func (r *GormHandlingRepository) DeleteAll(ctx context.Context, id cargo.TrackingID) error {
	if err := r.db.WithContext(ctx).
		Delete(&HandlingEventDTO{}, "tracking_id = ?", id.UUID().Bytes()).Error; err != nil {
		return errs.NewPersistenceError("delete handling history", err)
	}
	return nil
}
