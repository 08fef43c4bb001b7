package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"catalog-cms/internal/crypto"
	"catalog-cms/internal/domain"
	"catalog-cms/internal/repository"
)

const maxUsernameLen = 50

// UserService describes account lifecycle operations.
type UserService interface {
	Register(ctx context.Context, username, password, passwordCheck string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, username, password, passwordCheck, oldPassword string) error
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	users  repository.UserRepository
	hasher crypto.PasswordHasher
}

func NewUserService(users repository.UserRepository, hasher crypto.PasswordHasher) UserService {
	return &userService{users: users, hasher: hasher}
}

func (s *userService) Register(ctx context.Context, username, password, passwordCheck string) (*domain.User, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" || passwordCheck == "" {
		return nil, validationError("all fields are required")
	}
	if len(username) > maxUsernameLen {
		return nil, validationError("username is too long")
	}
	if password != passwordCheck {
		return nil, validationError("passwords do not match")
	}

	// Pre-check for a friendlier message; the UNIQUE constraint still
	// guards the race between two concurrent registrations.
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		RegisteredAt: time.Now().UTC(),
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return sanitizeUser(user), nil
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// Update replaces username and password. The caller must prove
// knowledge of the current password before anything is persisted.
func (s *userService) Update(ctx context.Context, id int64, username, password, passwordCheck, oldPassword string) error {
	username = strings.TrimSpace(username)

	if username == "" || password == "" || passwordCheck == "" || oldPassword == "" {
		return validationError("all fields are required")
	}
	if len(username) > maxUsernameLen {
		return validationError("username is too long")
	}
	if password != passwordCheck {
		return validationError("passwords do not match")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.hasher.Compare(user.PasswordHash, oldPassword); err != nil {
		return validationError("old password is incorrect")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.Username = username
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUserExists
		}
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:           user.ID,
		Username:     user.Username,
		RegisteredAt: user.RegisteredAt,
	}
}
