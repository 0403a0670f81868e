// internal/repository/user_repository.go
package repository

import (
	"statusfeed/internal/model"

	"gorm.io/gorm"
)

// UserRepository persists accounts. Username lookups are case-insensitive
// so register, exists and authenticate can never disagree on a collision.
type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	Exists(username string) (bool, error)
	// Delete removes the account row and, through the FK cascade, every
	// status it owns. Returns the number of account rows removed.
	Delete(id uint) (int64, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("LOWER(username) = LOWER(?)", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Exists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepositoryImpl) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.User{}, id)
	return res.RowsAffected, res.Error
}
