package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yuanzhi/finledger/internal/apperrors"
	"github.com/yuanzhi/finledger/internal/core/authz"
	"github.com/yuanzhi/finledger/internal/core/domain"
	portsrepo "github.com/yuanzhi/finledger/internal/core/ports/repositories"
	portssvc "github.com/yuanzhi/finledger/internal/core/ports/services"
	"github.com/yuanzhi/finledger/internal/dto"
	"github.com/yuanzhi/finledger/internal/middleware"
)

// transactionService owns the transaction lifecycle. Status moves forward
// only along PENDING -> POSTED -> PAID; the POSTED write itself happens as a
// side effect of entry creation in the ledger engine.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: transactionRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records a new business event in PENDING status. The date
// defaults to the current time when absent.
func (s *transactionService) CreateTransaction(ctx context.Context, actor domain.Actor, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := authz.Authorize(actor.Role, authz.ActionCreateTransaction); err != nil {
		logger.Warn("Authorization failed for CreateTransaction", slog.String("role", string(actor.Role)))
		return nil, err
	}

	date := time.Now().UTC()
	if req.Date != nil {
		date = *req.Date
	}

	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		Date:           date,
		Counterparty:   req.Counterparty,
		Project:        req.Project,
		DueDate:        req.DueDate,
		ProductService: req.ProductService,
		Quantity:       req.Quantity,
		UnitPrice:      req.UnitPrice,
		TotalAmount:    req.TotalAmount,
		TaxRate:        req.TaxRate,
		Status:         domain.TransactionPending,
		UserID:         actor.UserID,
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("counterparty", txn.Counterparty))
	return &txn, nil
}

// GetTransactionByID retrieves a single transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions returns all transactions.
func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// ListPendingTransactions returns transactions not yet posted.
func (s *transactionService) ListPendingTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListPendingTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending transactions: %w", err)
	}
	return txns, nil
}

// ListTransactionsByUser returns the transactions recorded by a user.
func (s *transactionService) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	return txns, nil
}

// UpdateTransaction applies only the fields present in the request. A status
// change must be legal under the transaction transition table.
func (s *transactionService) UpdateTransaction(ctx context.Context, actor domain.Actor, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	if req.Counterparty != nil {
		txn.Counterparty = *req.Counterparty
	}
	if req.Project != nil {
		txn.Project = *req.Project
	}
	if req.DueDate != nil {
		txn.DueDate = req.DueDate
	}
	if req.ProductService != nil {
		txn.ProductService = *req.ProductService
	}
	if req.Quantity != nil {
		txn.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		txn.UnitPrice = *req.UnitPrice
	}
	if req.TotalAmount != nil {
		txn.TotalAmount = *req.TotalAmount
	}
	if req.TaxRate != nil {
		txn.TaxRate = *req.TaxRate
	}
	if req.Status != nil && *req.Status != txn.Status {
		if !txn.Status.CanTransitionTo(*req.Status) {
			logger.Warn("Illegal transaction status transition",
				slog.String("transaction_id", transactionID),
				slog.String("from", string(txn.Status)),
				slog.String("to", string(*req.Status)))
			return nil, fmt.Errorf("%w: transaction cannot move from %s to %s", apperrors.ErrConflict, txn.Status, *req.Status)
		}
		txn.Status = *req.Status
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

// DeleteTransaction removes a transaction.
func (s *transactionService) DeleteTransaction(ctx context.Context, actor domain.Actor, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := authz.Authorize(actor.Role, authz.ActionDeleteTransaction); err != nil {
		logger.Warn("Authorization failed for DeleteTransaction", slog.String("role", string(actor.Role)))
		return err
	}

	if _, err := s.transactionRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
