package repository

import (
	"context"
	"errors"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

// FindByCredentials compares the stored secret verbatim.
func (u *DefaultUserRepository) FindByCredentials(ctx context.Context, username, password string) (*entity.User, error) {
	var user entity.User
	err := conn(ctx, u.db).
		Where("username = ? AND password = ?", username, password).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (u *DefaultUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := conn(ctx, u.db).Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (u *DefaultUserRepository) Save(ctx context.Context, user *entity.User) error {
	return conn(ctx, u.db).Save(user).Error
}

func (u *DefaultUserRepository) DeleteByReference(ctx context.Context, role entity.Role, referenceID int) error {
	return conn(ctx, u.db).
		Where("role = ? AND reference_id = ?", role, referenceID).
		Delete(&entity.User{}).Error
}
