package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"swiftdoc/internal/auth"
	"swiftdoc/internal/domain"
	"swiftdoc/internal/domain/repositories"
	"swiftdoc/internal/domain/services"
)

// authService implements the AuthService interface
type authService struct {
	userRepo repositories.UserRepository
	issuer   *auth.TokenIssuer
	logger   *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, issuer *auth.TokenIssuer, logger *slog.Logger) services.AuthService {
	return &authService{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// Register creates an account
func (s *authService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login checks credentials and returns a bearer token. Unknown emails and bad
// passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", &domain.UnauthorizedError{Message: "invalid credentials"}
		}
		return "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", &domain.UnauthorizedError{Message: "invalid credentials"}
	}

	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return "", err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return token, nil
}

func validateCredentials(email, password string) error {
	return validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.Email),
		"password": validation.Validate(password, validation.Required, validation.Length(8, 128)),
	}.Filter()
}
