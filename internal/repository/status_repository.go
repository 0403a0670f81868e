// internal/repository/status_repository.go
package repository

import (
	"statusfeed/internal/model"

	"gorm.io/gorm"
)

type StatusRepository interface {
	Create(status *model.Status) error
	FindByID(id uint) (*model.Status, error)
	// UpdateText replaces the text column only; created_at is never
	// touched. Returns the number of rows updated.
	UpdateText(id uint, text string) (int64, error)
	Delete(id uint) (int64, error)
	ListByUser(userID uint) ([]model.Status, error)
}

type StatusRepositoryImpl struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepositoryImpl {
	return &StatusRepositoryImpl{db: db}
}

func (r *StatusRepositoryImpl) Create(status *model.Status) error {
	return r.db.Create(status).Error
}

func (r *StatusRepositoryImpl) FindByID(id uint) (*model.Status, error) {
	var status model.Status
	if err := r.db.First(&status, id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *StatusRepositoryImpl) UpdateText(id uint, text string) (int64, error) {
	res := r.db.Model(&model.Status{}).
		Where("id = ?", id).
		Update("status_text", text)
	return res.RowsAffected, res.Error
}

func (r *StatusRepositoryImpl) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.Status{}, id)
	return res.RowsAffected, res.Error
}

func (r *StatusRepositoryImpl) ListByUser(userID uint) ([]model.Status, error) {
	var statuses []model.Status
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&statuses).Error
	return statuses, err
}
