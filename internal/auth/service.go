package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrlokans/storefront/internal/config"
	"github.com/mrlokans/storefront/internal/database/users"
	"github.com/mrlokans/storefront/internal/entities"
)

// UserRepository defines the interface for account data access.
type UserRepository interface {
	CreateUser(ctx context.Context, user *entities.User) error
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	GetUserByID(ctx context.Context, id string) (*entities.User, error)
}

// Service verifies customer and seller credentials.
type Service struct {
	users  UserRepository
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(repo UserRepository, cfg config.Auth) *Service {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = config.DefaultBcryptCost
	}
	return &Service{
		users:  repo,
		config: cfg,
	}
}

// Register creates a customer account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, name, email, password string) (*entities.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, users.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		if errors.Is(err, ErrPasswordTooLong) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent registration for the same email.
		if errors.Is(err, users.ErrEmailTaken) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate validates customer credentials and returns the account.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}

	return user, nil
}

// AuthenticateSeller compares the submitted pair with the configured seller
// credentials. An unconfigured seller never authenticates.
func (s *Service) AuthenticateSeller(email, password string) error {
	if !s.SellerConfigured() {
		return ErrInvalidCredentials
	}
	if email != s.config.SellerEmail || password != s.config.SellerPassword {
		return ErrInvalidCredentials
	}
	return nil
}

// SellerConfigured reports whether both seller credentials are set.
func (s *Service) SellerConfigured() bool {
	return s.config.SellerEmail != "" && s.config.SellerPassword != ""
}

// GetUserByID retrieves an account by its id.
func (s *Service) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
