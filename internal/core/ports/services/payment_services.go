package services

import (
	"context"

	"github.com/yuanzhi/finledger/internal/core/domain"
	"github.com/yuanzhi/finledger/internal/dto"
)

// PaymentSvcFacade exposes the payment approval workflow operations.
// Approve and reject record the acting user as the approver.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, actor domain.Actor, req dto.CreatePaymentRequest) (*domain.Payment, error)
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	ListPendingPayments(ctx context.Context) ([]domain.Payment, error)
	ListPaymentsByTransaction(ctx context.Context, transactionID string) ([]domain.Payment, error)
	ApprovePayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error)
	RejectPayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error)
	CompletePayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error)
	DeletePayment(ctx context.Context, actor domain.Actor, paymentID string) error
}
