package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yuanzhi/finledger/internal/apperrors"
	"github.com/yuanzhi/finledger/internal/core/authz"
	"github.com/yuanzhi/finledger/internal/core/domain"
	portsrepo "github.com/yuanzhi/finledger/internal/core/ports/repositories"
	portssvc "github.com/yuanzhi/finledger/internal/core/ports/services"
	"github.com/yuanzhi/finledger/internal/dto"
	"github.com/yuanzhi/finledger/internal/middleware"
)

const defaultCurrency = "CNY"

// accountService maintains the chart-of-accounts tree.
type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates a new chart-of-accounts node. The code must be
// unique; parent existence is not checked here and is left to the store's
// foreign key constraint.
func (s *accountService) CreateAccount(ctx context.Context, actor domain.Actor, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := authz.Authorize(actor.Role, authz.ActionCreateAccount); err != nil {
		logger.Warn("Authorization failed for CreateAccount", slog.String("role", string(actor.Role)))
		return nil, err
	}

	exists, err := s.accountRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to check account code uniqueness", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check account code: %w", err)
	}
	if exists {
		logger.Warn("Account code already exists", slog.String("code", req.Code))
		return nil, apperrors.NewDuplicateCodeError(req.Code)
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	account := domain.Account{
		AccountID: uuid.NewString(),
		Code:      req.Code,
		Name:      req.Name,
		Category:  req.Category,
		Currency:  currency,
	}
	if req.ParentAccountID != nil {
		account.ParentAccountID = *req.ParentAccountID
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

// ListAccounts returns all accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// ListAccountsByCategory returns all accounts of a given category.
func (s *accountService) ListAccountsByCategory(ctx context.Context, category domain.AccountCategory) ([]domain.Account, error) {
	if !category.Valid() {
		return nil, apperrors.NewValidationError("category", "must be one of ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE")
	}
	accounts, err := s.accountRepo.ListAccountsByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts by category: %w", err)
	}
	return accounts, nil
}

// ListRootAccounts returns accounts without a parent.
func (s *accountService) ListRootAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListRootAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list root accounts: %w", err)
	}
	return accounts, nil
}

// ListChildAccounts returns the direct children of an account.
func (s *accountService) ListChildAccounts(ctx context.Context, parentAccountID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListChildAccounts(ctx, parentAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list child accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount applies only the fields present in the request, leaving the
// rest untouched.
func (s *accountService) UpdateAccount(ctx context.Context, actor domain.Actor, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := authz.Authorize(actor.Role, authz.ActionUpdateAccount); err != nil {
		logger.Warn("Authorization failed for UpdateAccount", slog.String("role", string(actor.Role)))
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Category != nil {
		account.Category = *req.Category
	}
	if req.Currency != nil {
		account.Currency = *req.Currency
	}
	if req.ParentAccountID != nil {
		account.ParentAccountID = *req.ParentAccountID
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeleteAccount removes a childless account. Deletion is refused while any
// account still references it as parent.
func (s *accountService) DeleteAccount(ctx context.Context, actor domain.Actor, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := authz.Authorize(actor.Role, authz.ActionDeleteAccount); err != nil {
		logger.Warn("Authorization failed for DeleteAccount", slog.String("role", string(actor.Role)))
		return err
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	children, err := s.accountRepo.ListChildAccounts(ctx, accountID)
	if err != nil {
		logger.Error("Failed to check for child accounts", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return fmt.Errorf("failed to check for child accounts: %w", err)
	}
	if len(children) > 0 {
		logger.Warn("Account delete blocked by child accounts", slog.String("account_id", accountID), slog.Int("child_count", len(children)))
		return apperrors.NewHasChildrenError(accountID)
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		logger.Error("Failed to delete account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}

	logger.Info("Account deleted", slog.String("account_id", accountID))
	return nil
}
