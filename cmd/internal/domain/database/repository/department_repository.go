package repository

import (
	"context"
	"errors"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultDepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DefaultDepartmentRepository {
	return &DefaultDepartmentRepository{db: db}
}

func (d *DefaultDepartmentRepository) FindByID(ctx context.Context, id int) (*entity.Department, error) {
	var department entity.Department
	err := conn(ctx, d.db).First(&department, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &department, err
}

func (d *DefaultDepartmentRepository) FindAll(ctx context.Context) ([]*entity.Department, error) {
	var departments []*entity.Department
	err := conn(ctx, d.db).Order("id asc").Find(&departments).Error
	return departments, err
}

func (d *DefaultDepartmentRepository) Save(ctx context.Context, department *entity.Department) error {
	return conn(ctx, d.db).Save(department).Error
}

func (d *DefaultDepartmentRepository) Update(ctx context.Context, id int, update entity.DepartmentUpdate) error {
	return conn(ctx, d.db).Model(&entity.Department{}).
		Where("id = ?", id).
		Updates(update.Columns()).Error
}

func (d *DefaultDepartmentRepository) Delete(ctx context.Context, id int) error {
	return conn(ctx, d.db).Delete(&entity.Department{}, id).Error
}

func (d *DefaultDepartmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, d.db).Model(&entity.Department{}).Count(&count).Error
	return count, err
}
