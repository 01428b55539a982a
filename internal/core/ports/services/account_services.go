package services

import (
	"context"

	"github.com/yuanzhi/finledger/internal/core/domain"
	"github.com/yuanzhi/finledger/internal/dto"
)

// AccountSvcFacade exposes the account directory operations. Mutating
// operations take the acting identity explicitly and consult the
// authorization gate before any side effect.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, actor domain.Actor, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ListAccountsByCategory(ctx context.Context, category domain.AccountCategory) ([]domain.Account, error)
	ListRootAccounts(ctx context.Context) ([]domain.Account, error)
	ListChildAccounts(ctx context.Context, parentAccountID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, actor domain.Actor, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, actor domain.Actor, accountID string) error
}
