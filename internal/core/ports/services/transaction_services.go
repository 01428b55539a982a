package services

import (
	"context"

	"github.com/yuanzhi/finledger/internal/core/domain"
	"github.com/yuanzhi/finledger/internal/dto"
)

// TransactionSvcFacade exposes the transaction workflow operations.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, actor domain.Actor, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListPendingTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, actor domain.Actor, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, actor domain.Actor, transactionID string) error
}
