package services

import (
	"context"
	"time"

	"github.com/yuanzhi/finledger/internal/core/domain"
	"github.com/yuanzhi/finledger/internal/dto"
)

// UserSvcFacade exposes user registration, authentication and lookups.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Authenticate verifies the credentials and returns the user, or
	// apperrors.ErrUnauthorized when they do not match.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// TokenSvcFacade issues access tokens for authenticated users.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
