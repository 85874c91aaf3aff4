package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultDoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DefaultDoctorRepository {
	return &DefaultDoctorRepository{db: db}
}

func (d *DefaultDoctorRepository) FindByID(ctx context.Context, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := conn(ctx, d.db).First(&doctor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &doctor, err
}

// FindListedDetails returns a non-blacklisted doctor with its department name.
func (d *DefaultDoctorRepository) FindListedDetails(ctx context.Context, id int) (*entity.DoctorDetails, error) {
	var rows []*entity.DoctorDetails
	err := conn(ctx, d.db).Table("doctors AS d").
		Select("d.id AS doctor_id, d.name, d.specialization, dep.name AS department_name").
		Joins("LEFT JOIN departments dep ON d.department_id = dep.id").
		Where("d.id = ? AND d.is_blacklisted = ?", id, false).
		Limit(1).
		Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (d *DefaultDoctorRepository) FindAll(ctx context.Context) ([]*entity.Doctor, error) {
	var doctors []*entity.Doctor
	err := conn(ctx, d.db).Order("id asc").Find(&doctors).Error
	return doctors, err
}

// Search matches q case-insensitively against name, specialization, contact and email.
func (d *DefaultDoctorRepository) Search(ctx context.Context, q string) ([]*entity.Doctor, error) {
	pattern := likePattern(strings.ToLower(q))
	var doctors []*entity.Doctor
	err := conn(ctx, d.db).
		Where("LOWER(name) LIKE ? OR LOWER(specialization) LIKE ? OR LOWER(contact) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("id asc").
		Find(&doctors).Error
	return doctors, err
}

func (d *DefaultDoctorRepository) Save(ctx context.Context, doctor *entity.Doctor) error {
	return conn(ctx, d.db).Save(doctor).Error
}

func (d *DefaultDoctorRepository) Update(ctx context.Context, id int, update entity.DoctorUpdate) error {
	return conn(ctx, d.db).Model(&entity.Doctor{}).
		Where("id = ?", id).
		Updates(update.Columns()).Error
}

func (d *DefaultDoctorRepository) SetBlacklisted(ctx context.Context, id int, blacklisted bool) error {
	return conn(ctx, d.db).Model(&entity.Doctor{}).
		Where("id = ?", id).
		Update("is_blacklisted", blacklisted).Error
}

func (d *DefaultDoctorRepository) Delete(ctx context.Context, id int) error {
	return conn(ctx, d.db).Delete(&entity.Doctor{}, id).Error
}

func (d *DefaultDoctorRepository) CountByDepartment(ctx context.Context, departmentID int) (int64, error) {
	var count int64
	err := conn(ctx, d.db).Model(&entity.Doctor{}).Where("department_id = ?", departmentID).Count(&count).Error
	return count, err
}

func (d *DefaultDoctorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, d.db).Model(&entity.Doctor{}).Count(&count).Error
	return count, err
}
