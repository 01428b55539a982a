package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yuanzhi/finledger/internal/apperrors"
	"github.com/yuanzhi/finledger/internal/core/domain"
	portsrepo "github.com/yuanzhi/finledger/internal/core/ports/repositories"
	"github.com/yuanzhi/finledger/internal/models"
	"github.com/yuanzhi/finledger/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepository
var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, transaction_id, account_id, amount, payment_date, status, approved_by`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.TransactionID,
		&m.AccountID,
		&m.Amount,
		&m.PaymentDate,
		&m.Status,
		&m.ApprovedBy,
	)
	return m, err
}

// SavePayment inserts a new payment.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)

	query := `
		INSERT INTO payments (payment_id, transaction_id, account_id, amount, payment_date, status, approved_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID,
		m.TransactionID,
		m.AccountID,
		m.Amount,
		m.PaymentDate,
		m.Status,
		m.ApprovedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("payment", paymentID)
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}

	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// ListPayments retrieves all payments, most recent first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY payment_date DESC;`
	return r.queryPayments(ctx, query)
}

// ListPendingPayments retrieves payments awaiting review.
func (r *PgxPaymentRepository) ListPendingPayments(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status = $1 ORDER BY payment_date DESC;`
	return r.queryPayments(ctx, query, string(domain.PaymentPending))
}

// ListPaymentsByTransaction retrieves all payments recorded against a transaction.
func (r *PgxPaymentRepository) ListPaymentsByTransaction(ctx context.Context, transactionID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id = $1 ORDER BY payment_date DESC;`
	return r.queryPayments(ctx, query, transactionID)
}

func (r *PgxPaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := make([]models.Payment, 0)
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return mapping.ToDomainPaymentSlice(payments), nil
}

// UpdatePayment persists changes to an existing payment.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)

	query := `
		UPDATE payments
		SET account_id = $2, amount = $3, payment_date = $4, status = $5, approved_by = $6
		WHERE payment_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.PaymentID,
		m.AccountID,
		m.Amount,
		m.PaymentDate,
		m.Status,
		m.ApprovedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", m.PaymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment", m.PaymentID)
	}
	return nil
}

// DeletePayment removes a payment by ID.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	query := `DELETE FROM payments WHERE payment_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment", paymentID)
	}
	return nil
}
