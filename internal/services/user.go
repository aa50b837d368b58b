package services

import (
	"context"
	"errors"
	"fmt"

	"eventhub/internal/domain"
)

type userService struct {
	userRepo domain.UserRepository
}

// NewUserService creates a UserService backed by the given repository.
func NewUserService(userRepo domain.UserRepository) domain.UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Create registers a user after a uniqueness pre-check on username and email.
// The pre-check and insert are two separate statements with no transaction
// around them; a concurrent insert between the two is caught only by the
// database unique constraints. Known limitation, kept deliberately.
func (s *userService) Create(ctx context.Context, user *domain.User) (*domain.ReducedUser, error) {
	existing, err := s.userRepo.GetByUsernameOrEmail(ctx, user.Username, user.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check username or email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user.Reduced(), nil
}

// Login matches credential against both username and email, and the password
// byte-for-byte against the stored plain text. Any mismatch is ErrNotFound,
// never a partial match.
func (s *userService) Login(ctx context.Context, credential, password string) (*domain.ReducedUser, error) {
	user, err := s.userRepo.GetByLogin(ctx, credential, password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("login user: %w", err)
	}
	return user.Reduced(), nil
}

// Update overwrites username, email, and password unconditionally. There is
// no uniqueness re-check on update; only the database constraints apply.
func (s *userService) Update(ctx context.Context, id int64, username, email, password string) (*domain.ReducedUser, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	user.Username = username
	user.Email = email
	user.Password = password
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user.Reduced(), nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
