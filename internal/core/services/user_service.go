package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yuanzhi/finledger/internal/apperrors"
	"github.com/yuanzhi/finledger/internal/core/domain"
	portsrepo "github.com/yuanzhi/finledger/internal/core/ports/repositories"
	portssvc "github.com/yuanzhi/finledger/internal/core/ports/services"
	"github.com/yuanzhi/finledger/internal/dto"
	"github.com/yuanzhi/finledger/internal/middleware"
	"github.com/yuanzhi/finledger/internal/utils"
)

// userService handles registration, authentication and user lookups.
type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// Register creates a new user after validating the username, password
// length, role, and email uniqueness. The password is stored bcrypt-hashed.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apperrors.NewValidationError("username", "must not be empty")
	}
	if len(req.Password) < 6 {
		return nil, apperrors.NewValidationError("password", "must be at least 6 characters")
	}
	if !req.Role.Valid() {
		return nil, apperrors.NewValidationError("role", "must be one of ACCOUNTANT, MANAGER, BOSS")
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		logger.Error("Failed to check username uniqueness", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		logger.Warn("Username already taken", slog.String("username", username))
		return nil, fmt.Errorf("%w: username %s is already taken", apperrors.ErrDuplicate, username)
	}

	email := strings.TrimSpace(req.Email)
	if email != "" {
		taken, err := s.userRepo.ExistsByEmail(ctx, email)
		if err != nil {
			logger.Error("Failed to check email uniqueness", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			logger.Warn("Email already in use", slog.String("email", email))
			return nil, fmt.Errorf("%w: email %s is already in use", apperrors.ErrDuplicate, email)
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         req.Role,
		Email:        email,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("User registered", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

// Authenticate verifies the credentials and returns the matching user.
// Unknown usernames and wrong passwords both come back as ErrUnauthorized so
// callers cannot probe for account existence.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		logger.Warn("Login attempt for unknown username", slog.String("username", username))
		return nil, apperrors.ErrUnauthorized
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Login attempt with wrong password", slog.String("username", username))
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// GetUserByID retrieves a single user.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	return user, nil
}

// GetUserByUsername retrieves a single user by username.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", username, err)
	}
	return user, nil
}

// ListUsers returns all users.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
