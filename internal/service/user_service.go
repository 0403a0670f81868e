// internal/service/user_service.go
package service

import (
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"statusfeed/internal/apperrors"
	"statusfeed/internal/credentials"
	"statusfeed/internal/model"
	"statusfeed/internal/repository"
	"statusfeed/internal/validation"
)

type UserService interface {
	// Register creates a local account. The username must be non-blank
	// and free (case-insensitive); the password must pass every policy
	// rule or the returned ValidationError lists each unmet one.
	Register(username, password string) (*model.User, error)
	// Authenticate checks a username/password pair. Unknown usernames,
	// wrong passwords and externally-authenticated accounts all report
	// ErrInvalidCredentials.
	Authenticate(username, password string) (*model.User, error)
	// LoginExternal resolves a successful external sign-in to a local
	// account, creating one on first sight. Such accounts carry no
	// local password and are marked external_auth.
	LoginExternal(email, displayName string) (*model.User, error)
	GetUserByID(id uint) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	Exists(username string) (bool, error)
	// DeleteUser hard-deletes an account; the FK cascade removes its
	// statuses. Not reachable from the normal login/feed flow.
	DeleteUser(id uint) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepository
	scheme   credentials.Scheme

	// serializes check-then-insert registrations so two concurrent
	// requests cannot both pass the uniqueness check
	registerMu sync.Mutex
}

func NewUserService(userRepo repository.UserRepository, scheme credentials.Scheme) *UserServiceImpl {
	return &UserServiceImpl{userRepo: userRepo, scheme: scheme}
}

func (s *UserServiceImpl) Register(username, password string) (*model.User, error) {
	if err := validation.CheckUsername(username); err != nil {
		return nil, err
	}
	if report := validation.CheckPassword(password); !report.OK() {
		return nil, apperrors.Validation("password", report.Reasons()...)
	}

	stored, err := s.scheme.Store(password)
	if err != nil {
		return nil, fmt.Errorf("failed to store credentials: %w", err)
	}

	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	taken, err := s.userRepo.Exists(username)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if taken {
		return nil, apperrors.ErrDuplicateUsername
	}

	user := &model.User{Username: username, Password: stored}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateUsername
		}
		return nil, apperrors.Storage(err)
	}
	return user, nil
}

func (s *UserServiceImpl) Authenticate(username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Storage(err)
	}

	// external accounts have no local password; no entered string may
	// ever authenticate them
	if user.ExternalAuth {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.scheme.Compare(user.Password, password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserServiceImpl) LoginExternal(email, displayName string) (*model.User, error) {
	if err := validation.CheckUsername(email); err != nil {
		return nil, err
	}

	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	user, err := s.userRepo.FindByUsername(email)
	if err == nil {
		// a local-password account under this email stays local; the
		// external provider cannot take it over
		if !user.ExternalAuth {
			return nil, apperrors.ErrDuplicateUsername
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Storage(err)
	}

	user = &model.User{
		Username:     email,
		ExternalAuth: true,
		DisplayName:  displayName,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateUsername
		}
		return nil, apperrors.Storage(err)
	}
	return user, nil
}

func (s *UserServiceImpl) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user", id)
		}
		return nil, apperrors.Storage(err)
	}
	return user, nil
}

func (s *UserServiceImpl) GetUserByUsername(username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user", username)
		}
		return nil, apperrors.Storage(err)
	}
	return user, nil
}

func (s *UserServiceImpl) Exists(username string) (bool, error) {
	taken, err := s.userRepo.Exists(username)
	if err != nil {
		return false, apperrors.Storage(err)
	}
	return taken, nil
}

func (s *UserServiceImpl) DeleteUser(id uint) error {
	rows, err := s.userRepo.Delete(id)
	if err != nil {
		return apperrors.Storage(err)
	}
	if rows == 0 {
		return apperrors.NotFound("user", id)
	}
	return nil
}
