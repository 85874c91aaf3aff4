package repository

import (
	"context"
	"errors"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultAvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *DefaultAvailabilityRepository {
	return &DefaultAvailabilityRepository{db: db}
}

func (a *DefaultAvailabilityRepository) FindByID(ctx context.Context, id int) (*entity.DoctorAvailability, error) {
	var row entity.DoctorAvailability
	err := conn(ctx, a.db).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &row, err
}

func (a *DefaultAvailabilityRepository) FindByDoctor(ctx context.Context, doctorID int) ([]*entity.DoctorAvailability, error) {
	var rows []*entity.DoctorAvailability
	err := conn(ctx, a.db).Where("doctor_id = ?", doctorID).Order("id asc").Find(&rows).Error
	return rows, err
}

// FindByDoctorAndDay returns the day's windows ordered by start time.
func (a *DefaultAvailabilityRepository) FindByDoctorAndDay(ctx context.Context, doctorID int, day string) ([]*entity.DoctorAvailability, error) {
	var rows []*entity.DoctorAvailability
	err := conn(ctx, a.db).
		Where("doctor_id = ? AND day = ?", doctorID, day).
		Order("start_time asc").
		Find(&rows).Error
	return rows, err
}

func (a *DefaultAvailabilityRepository) Save(ctx context.Context, row *entity.DoctorAvailability) error {
	return conn(ctx, a.db).Save(row).Error
}

func (a *DefaultAvailabilityRepository) Update(ctx context.Context, id int, update entity.AvailabilityUpdate) error {
	return conn(ctx, a.db).Model(&entity.DoctorAvailability{}).
		Where("id = ?", id).
		Updates(update.Columns()).Error
}

func (a *DefaultAvailabilityRepository) Delete(ctx context.Context, id int) error {
	return conn(ctx, a.db).Delete(&entity.DoctorAvailability{}, id).Error
}
