package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yuanzhi/finledger/internal/apperrors"
	"github.com/yuanzhi/finledger/internal/core/authz"
	"github.com/yuanzhi/finledger/internal/core/domain"
	portsrepo "github.com/yuanzhi/finledger/internal/core/ports/repositories"
	portssvc "github.com/yuanzhi/finledger/internal/core/ports/services"
	"github.com/yuanzhi/finledger/internal/dto"
	"github.com/yuanzhi/finledger/internal/middleware"
)

// entryService is the ledger engine: it validates and commits entries with
// their splits and drives the linked transaction's status forward.
type entryService struct {
	entryRepo       portsrepo.EntryRepository
	transactionRepo portsrepo.TransactionRepository
}

// NewEntryService creates a new entry service.
func NewEntryService(entryRepo portsrepo.EntryRepository, transactionRepo portsrepo.TransactionRepository) portssvc.EntrySvcFacade {
	return &entryService{
		entryRepo:       entryRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// validateEntryBalance checks the double-entry invariant: the sum of debit
// amounts must exactly equal the sum of credit amounts across all splits.
// Comparison is exact decimal equality, no rounding tolerance.
func validateEntryBalance(splits []dto.CreateSplitRequest) (decimal.Decimal, decimal.Decimal, error) {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, split := range splits {
		if split.DebitAmount.IsNegative() {
			return totalDebit, totalCredit, apperrors.NewValidationError("debitAmount", "must not be negative")
		}
		if split.CreditAmount.IsNegative() {
			return totalDebit, totalCredit, apperrors.NewValidationError("creditAmount", "must not be negative")
		}
		if split.TaxAmount.IsNegative() {
			return totalDebit, totalCredit, apperrors.NewValidationError("taxAmount", "must not be negative")
		}
		totalDebit = totalDebit.Add(split.DebitAmount)
		totalCredit = totalCredit.Add(split.CreditAmount)
	}
	if !totalDebit.Equal(totalCredit) {
		return totalDebit, totalCredit, apperrors.NewUnbalancedEntryError(totalDebit, totalCredit)
	}
	return totalDebit, totalCredit, nil
}

// CreateEntry validates the balance invariant and commits the entry, its
// splits, and the POSTED status write on the referenced transaction as one
// atomic unit. On any failure nothing is persisted.
func (s *entryService) CreateEntry(ctx context.Context, actor domain.Actor, req dto.CreateEntryRequest) (*domain.Entry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := authz.Authorize(actor.Role, authz.ActionCreateEntry); err != nil {
		logger.Warn("Authorization failed for CreateEntry", slog.String("role", string(actor.Role)))
		return nil, err
	}

	if len(req.Splits) == 0 {
		return nil, apperrors.NewValidationError("splits", "at least one split is required")
	}

	totalDebit, totalCredit, err := validateEntryBalance(req.Splits)
	if err != nil {
		logger.Warn("Entry rejected",
			slog.String("transaction_id", req.TransactionID),
			slog.String("total_debit", totalDebit.String()),
			slog.String("total_credit", totalCredit.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	// The referenced transaction must exist before anything is written.
	if _, err := s.transactionRepo.FindTransactionByID(ctx, req.TransactionID); err != nil {
		logger.Warn("Transaction not found for entry", slog.String("transaction_id", req.TransactionID))
		return nil, fmt.Errorf("failed to find transaction %s: %w", req.TransactionID, err)
	}

	status := domain.EntryDraft
	if req.Status != nil {
		status = *req.Status
	}

	entry := domain.Entry{
		EntryID:       uuid.NewString(),
		Summary:       req.Summary,
		TotalAmount:   req.TotalAmount,
		CreatedAt:     time.Now().UTC(),
		Status:        status,
		TransactionID: req.TransactionID,
		UserID:        actor.UserID,
	}

	splits := make([]domain.Split, len(req.Splits))
	for i, sp := range req.Splits {
		splits[i] = domain.Split{
			SplitID:      uuid.NewString(),
			EntryID:      entry.EntryID,
			AccountID:    sp.AccountID,
			Quantity:     sp.Quantity,
			UnitPrice:    sp.UnitPrice,
			DebitAmount:  sp.DebitAmount,
			CreditAmount: sp.CreditAmount,
			TaxAmount:    sp.TaxAmount,
		}
	}

	// Entry, splits and the transaction's POSTED write land in one store
	// transaction; a failure rolls everything back.
	if err := s.entryRepo.SaveEntry(ctx, entry, splits); err != nil {
		logger.Error("Failed to save entry", slog.String("error", err.Error()), slog.String("transaction_id", req.TransactionID))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	logger.Info("Entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("transaction_id", entry.TransactionID),
		slog.Int("split_count", len(splits)))
	return &entry, nil
}

// GetEntryByID retrieves a single entry.
func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	return entry, nil
}

// ListEntries returns all entries.
func (s *entryService) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// ListSubmittedEntries returns entries awaiting review.
func (s *entryService) ListSubmittedEntries(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.entryRepo.ListSubmittedEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submitted entries: %w", err)
	}
	return entries, nil
}

// ListEntriesByTransaction returns the entries posted against a transaction.
func (s *entryService) ListEntriesByTransaction(ctx context.Context, transactionID string) ([]domain.Entry, error) {
	entries, err := s.entryRepo.ListEntriesByTransaction(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for transaction %s: %w", transactionID, err)
	}
	return entries, nil
}

// GetSplitsByEntry returns the splits of an entry.
func (s *entryService) GetSplitsByEntry(ctx context.Context, entryID string) ([]domain.Split, error) {
	splits, err := s.entryRepo.FindSplitsByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find splits for entry %s: %w", entryID, err)
	}
	return splits, nil
}

// UpdateEntryStatus moves an entry through its review workflow. Submitting
// requires the accountant role, reviewing (approve/reject) the manager role,
// and the move must be legal under the entry transition table regardless of
// who asks.
func (s *entryService) UpdateEntryStatus(ctx context.Context, actor domain.Actor, entryID string, status domain.EntryStatus) (*domain.Entry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var action authz.Action
	switch status {
	case domain.EntrySubmitted:
		action = authz.ActionSubmitEntry
	case domain.EntryApproved, domain.EntryRejected:
		action = authz.ActionReviewEntry
	default:
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("cannot request status %s", status))
	}
	if err := authz.Authorize(actor.Role, action); err != nil {
		logger.Warn("Authorization failed for UpdateEntryStatus", slog.String("role", string(actor.Role)), slog.String("status", string(status)))
		return nil, err
	}

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	if !entry.Status.CanTransitionTo(status) {
		logger.Warn("Illegal entry status transition",
			slog.String("entry_id", entryID),
			slog.String("from", string(entry.Status)),
			slog.String("to", string(status)))
		return nil, fmt.Errorf("%w: entry cannot move from %s to %s", apperrors.ErrConflict, entry.Status, status)
	}

	if err := s.entryRepo.UpdateEntryStatus(ctx, entryID, status); err != nil {
		logger.Error("Failed to update entry status", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update entry status: %w", err)
	}

	entry.Status = status
	logger.Info("Entry status updated", slog.String("entry_id", entryID), slog.String("status", string(status)))
	return entry, nil
}

// DeleteEntry removes an entry and its splits. Splits go first so they never
// outlive their entry.
func (s *entryService) DeleteEntry(ctx context.Context, actor domain.Actor, entryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.entryRepo.FindEntryByID(ctx, entryID); err != nil {
		return fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		logger.Error("Failed to delete entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	logger.Info("Entry deleted", slog.String("entry_id", entryID))
	return nil
}
