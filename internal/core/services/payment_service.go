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

// paymentService owns the payment approval workflow:
// PENDING -> APPROVED/REJECTED -> PAID.
type paymentService struct {
	paymentRepo portsrepo.PaymentRepository
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepository) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// CreatePayment records a new payment in PENDING status. The payment date
// defaults to the current time when absent.
func (s *paymentService) CreatePayment(ctx context.Context, actor domain.Actor, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	paymentDate := time.Now().UTC()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		TransactionID: req.TransactionID,
		AccountID:     req.AccountID,
		Amount:        req.Amount,
		PaymentDate:   paymentDate,
		Status:        domain.PaymentPending,
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		logger.Error("Failed to save payment", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	logger.Info("Payment created", slog.String("payment_id", payment.PaymentID), slog.String("transaction_id", payment.TransactionID))
	return &payment, nil
}

// GetPaymentByID retrieves a single payment.
func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}
	return payment, nil
}

// ListPayments returns all payments.
func (s *paymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// ListPendingPayments returns payments awaiting approval.
func (s *paymentService) ListPendingPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPendingPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending payments: %w", err)
	}
	return payments, nil
}

// ListPaymentsByTransaction returns the payments tied to a transaction.
func (s *paymentService) ListPaymentsByTransaction(ctx context.Context, transactionID string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPaymentsByTransaction(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for transaction %s: %w", transactionID, err)
	}
	return payments, nil
}

// transition moves a payment to the requested status after verifying the
// move is legal under the payment transition table, independent of role.
func (s *paymentService) transition(ctx context.Context, paymentID string, next domain.PaymentStatus, approverID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}

	if !payment.Status.CanTransitionTo(next) {
		logger.Warn("Illegal payment status transition",
			slog.String("payment_id", paymentID),
			slog.String("from", string(payment.Status)),
			slog.String("to", string(next)))
		return nil, fmt.Errorf("%w: payment cannot move from %s to %s", apperrors.ErrConflict, payment.Status, next)
	}

	payment.Status = next
	if approverID != "" {
		payment.ApprovedBy = approverID
	}
	if next == domain.PaymentPaid {
		payment.PaymentDate = time.Now().UTC()
	}

	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		logger.Error("Failed to update payment", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	logger.Info("Payment status updated", slog.String("payment_id", paymentID), slog.String("status", string(next)))
	return payment, nil
}

// ApprovePayment moves a pending payment to APPROVED and records the actor
// as approver.
func (s *paymentService) ApprovePayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	if err := authz.Authorize(actor.Role, authz.ActionApprovePayment); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Authorization failed for ApprovePayment", slog.String("role", string(actor.Role)))
		return nil, err
	}
	return s.transition(ctx, paymentID, domain.PaymentApproved, actor.UserID)
}

// RejectPayment moves a pending payment to REJECTED and records the actor
// as approver.
func (s *paymentService) RejectPayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	if err := authz.Authorize(actor.Role, authz.ActionRejectPayment); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Authorization failed for RejectPayment", slog.String("role", string(actor.Role)))
		return nil, err
	}
	return s.transition(ctx, paymentID, domain.PaymentRejected, actor.UserID)
}

// CompletePayment moves an approved payment to PAID and refreshes its
// payment date.
func (s *paymentService) CompletePayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	if err := authz.Authorize(actor.Role, authz.ActionCompletePayment); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Authorization failed for CompletePayment", slog.String("role", string(actor.Role)))
		return nil, err
	}
	return s.transition(ctx, paymentID, domain.PaymentPaid, "")
}

// DeletePayment removes a payment.
func (s *paymentService) DeletePayment(ctx context.Context, actor domain.Actor, paymentID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.paymentRepo.FindPaymentByID(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}

	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		logger.Error("Failed to delete payment", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	logger.Info("Payment deleted", slog.String("payment_id", paymentID))
	return nil
}
