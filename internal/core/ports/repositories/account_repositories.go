package repositories

import (
	"context"

	"github.com/yuanzhi/finledger/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ListAccountsByCategory(ctx context.Context, category domain.AccountCategory) ([]domain.Account, error)
	ListRootAccounts(ctx context.Context) ([]domain.Account, error)
	ListChildAccounts(ctx context.Context, parentAccountID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeleteAccount(ctx context.Context, accountID string) error
}
