package repositories

import (
	"context"

	"github.com/yuanzhi/finledger/internal/core/domain"
)

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	ListPendingPayments(ctx context.Context) ([]domain.Payment, error)
	ListPaymentsByTransaction(ctx context.Context, transactionID string) ([]domain.Payment, error)
	UpdatePayment(ctx context.Context, payment domain.Payment) error
	DeletePayment(ctx context.Context, paymentID string) error
}
