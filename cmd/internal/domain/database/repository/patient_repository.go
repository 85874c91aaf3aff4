package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultPatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *DefaultPatientRepository {
	return &DefaultPatientRepository{db: db}
}

func (p *DefaultPatientRepository) FindByID(ctx context.Context, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := conn(ctx, p.db).First(&patient, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &patient, err
}

func (p *DefaultPatientRepository) FindAll(ctx context.Context) ([]*entity.Patient, error) {
	var patients []*entity.Patient
	err := conn(ctx, p.db).Order("id asc").Find(&patients).Error
	return patients, err
}

// Search matches q case-insensitively against name, contact and address.
func (p *DefaultPatientRepository) Search(ctx context.Context, q string) ([]*entity.Patient, error) {
	pattern := likePattern(strings.ToLower(q))
	var patients []*entity.Patient
	err := conn(ctx, p.db).
		Where("LOWER(name) LIKE ? OR LOWER(contact) LIKE ? OR LOWER(address) LIKE ?", pattern, pattern, pattern).
		Order("id asc").
		Find(&patients).Error
	return patients, err
}

func (p *DefaultPatientRepository) Save(ctx context.Context, patient *entity.Patient) error {
	return conn(ctx, p.db).Save(patient).Error
}

func (p *DefaultPatientRepository) Update(ctx context.Context, id int, update entity.PatientUpdate) error {
	return conn(ctx, p.db).Model(&entity.Patient{}).
		Where("id = ?", id).
		Updates(update.Columns()).Error
}

func (p *DefaultPatientRepository) SetBlacklisted(ctx context.Context, id int, blacklisted bool) error {
	return conn(ctx, p.db).Model(&entity.Patient{}).
		Where("id = ?", id).
		Update("is_blacklisted", blacklisted).Error
}

func (p *DefaultPatientRepository) Delete(ctx context.Context, id int) error {
	return conn(ctx, p.db).Delete(&entity.Patient{}, id).Error
}

func (p *DefaultPatientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, p.db).Model(&entity.Patient{}).Count(&count).Error
	return count, err
}
