// internal/service/status_service.go
package service

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"statusfeed/internal/apperrors"
	"statusfeed/internal/model"
	"statusfeed/internal/repository"
	"statusfeed/internal/validation"
)

// StatusService owns the feed rules: text is trimmed and length-checked,
// created_at never changes after insert, and only the owning account may
// edit or delete a status. Ownership misses report NotFound so callers
// cannot probe which ids exist.
type StatusService interface {
	Post(userID uint, text string) (*model.Status, error)
	Edit(userID, statusID uint, text string) error
	Delete(userID, statusID uint) error
	List(userID uint) ([]model.Status, error)
}

type StatusServiceImpl struct {
	statusRepo repository.StatusRepository
	userRepo   repository.UserRepository

	// one mutex per account so concurrent writers against the same feed
	// cannot interleave; reads take no lock
	locks sync.Map // map[uint]*sync.Mutex
}

func NewStatusService(statusRepo repository.StatusRepository, userRepo repository.UserRepository) *StatusServiceImpl {
	return &StatusServiceImpl{statusRepo: statusRepo, userRepo: userRepo}
}

func (s *StatusServiceImpl) lockUser(userID uint) func() {
	mu, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

func (s *StatusServiceImpl) Post(userID uint, text string) (*model.Status, error) {
	trimmed, err := validation.CheckStatusText(text)
	if err != nil {
		return nil, err
	}

	unlock := s.lockUser(userID)
	defer unlock()

	// every status must reference a live account
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user", userID)
		}
		return nil, apperrors.Storage(err)
	}

	status := &model.Status{UserID: userID, Text: trimmed}
	if err := s.statusRepo.Create(status); err != nil {
		return nil, apperrors.Storage(err)
	}
	return status, nil
}

func (s *StatusServiceImpl) Edit(userID, statusID uint, text string) error {
	trimmed, err := validation.CheckStatusText(text)
	if err != nil {
		return err
	}

	unlock := s.lockUser(userID)
	defer unlock()

	if err := s.ownedBy(userID, statusID); err != nil {
		return err
	}

	rows, err := s.statusRepo.UpdateText(statusID, trimmed)
	if err != nil {
		return apperrors.Storage(err)
	}
	if rows == 0 {
		return apperrors.NotFound("status", statusID)
	}
	return nil
}

func (s *StatusServiceImpl) Delete(userID, statusID uint) error {
	unlock := s.lockUser(userID)
	defer unlock()

	if err := s.ownedBy(userID, statusID); err != nil {
		return err
	}

	rows, err := s.statusRepo.Delete(statusID)
	if err != nil {
		return apperrors.Storage(err)
	}
	if rows == 0 {
		return apperrors.NotFound("status", statusID)
	}
	return nil
}

func (s *StatusServiceImpl) List(userID uint) ([]model.Status, error) {
	statuses, err := s.statusRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return statuses, nil
}

func (s *StatusServiceImpl) ownedBy(userID, statusID uint) error {
	status, err := s.statusRepo.FindByID(statusID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("status", statusID)
		}
		return apperrors.Storage(err)
	}
	if status.UserID != userID {
		return apperrors.NotFound("status", statusID)
	}
	return nil
}
