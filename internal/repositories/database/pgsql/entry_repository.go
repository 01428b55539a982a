package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yuanzhi/finledger/internal/apperrors"
	"github.com/yuanzhi/finledger/internal/core/domain"
	portsrepo "github.com/yuanzhi/finledger/internal/core/ports/repositories"
	"github.com/yuanzhi/finledger/internal/middleware"
	"github.com/yuanzhi/finledger/internal/models"
	"github.com/yuanzhi/finledger/internal/utils/mapping"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for entry data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepository {
	return &PgxEntryRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepository
var _ portsrepo.EntryRepository = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, summary, total_amount, created_at, status, transaction_id, user_id`

func scanEntry(row pgx.Row) (models.Entry, error) {
	var m models.Entry
	err := row.Scan(
		&m.EntryID,
		&m.Summary,
		&m.TotalAmount,
		&m.CreatedAt,
		&m.Status,
		&m.TransactionID,
		&m.UserID,
	)
	return m, err
}

// SaveEntry persists the entry header, every split, and the POSTED status of
// the referenced transaction inside one database transaction. If any write
// fails, the whole operation is rolled back.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry, splits []domain.Split) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("failed to rollback entry save", slog.String("entry_id", entry.EntryID), slog.String("error", rbErr.Error()))
		}
	}()

	modelEntry := mapping.ToModelEntry(entry)

	entryQuery := `
		INSERT INTO entries (entry_id, summary, total_amount, created_at, status, transaction_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.Summary,
		modelEntry.TotalAmount,
		modelEntry.CreatedAt,
		modelEntry.Status,
		modelEntry.TransactionID,
		modelEntry.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry %s: %w", modelEntry.EntryID, err)
	}

	batch := &pgx.Batch{}
	splitQuery := `
		INSERT INTO splits (split_id, entry_id, account_id, quantity, unit_price, debit_amount, credit_amount, tax_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, split := range splits {
		modelSplit := mapping.ToModelSplit(split)
		batch.Queue(splitQuery,
			modelSplit.SplitID,
			modelSplit.EntryID,
			modelSplit.AccountID,
			modelSplit.Quantity,
			modelSplit.UnitPrice,
			modelSplit.DebitAmount,
			modelSplit.CreditAmount,
			modelSplit.TaxAmount,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute split batch for entry %s: %w", modelEntry.EntryID, err)
	}

	// Posting the entry moves the referenced transaction to POSTED in the
	// same database transaction, so a half-posted state is never visible.
	statusQuery := `UPDATE transactions SET status = $2 WHERE transaction_id = $1;`
	cmdTag, err := tx.Exec(ctx, statusQuery, modelEntry.TransactionID, string(domain.TransactionPosted))
	if err != nil {
		return fmt.Errorf("failed to post transaction %s: %w", modelEntry.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction", modelEntry.TransactionID)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit entry %s: %w", modelEntry.EntryID, err)
	}

	logger.Info("entry saved", slog.String("entry_id", modelEntry.EntryID), slog.Int("split_count", len(splits)))
	return nil
}

// FindEntryByID retrieves an entry by its ID.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("entry", entryID)
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}

	entry := mapping.ToDomainEntry(m)
	return &entry, nil
}

// ListEntries retrieves all entries, most recent first.
func (r *PgxEntryRepository) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries ORDER BY created_at DESC;`
	return r.queryEntries(ctx, query)
}

// ListSubmittedEntries retrieves entries awaiting review.
func (r *PgxEntryRepository) ListSubmittedEntries(ctx context.Context) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE status = $1 ORDER BY created_at DESC;`
	return r.queryEntries(ctx, query, string(domain.EntrySubmitted))
}

// ListEntriesByTransaction retrieves all entries posted against a transaction.
func (r *PgxEntryRepository) ListEntriesByTransaction(ctx context.Context, transactionID string) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE transaction_id = $1 ORDER BY created_at DESC;`
	return r.queryEntries(ctx, query, transactionID)
}

func (r *PgxEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.Entry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}
	return mapping.ToDomainEntrySlice(entries), nil
}

// FindSplitsByEntryID retrieves the split lines of an entry.
func (r *PgxEntryRepository) FindSplitsByEntryID(ctx context.Context, entryID string) ([]domain.Split, error) {
	query := `
		SELECT split_id, entry_id, account_id, quantity, unit_price, debit_amount, credit_amount, tax_amount
		FROM splits
		WHERE entry_id = $1
		ORDER BY split_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query splits for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	splits := make([]models.Split, 0)
	for rows.Next() {
		var m models.Split
		err := rows.Scan(
			&m.SplitID,
			&m.EntryID,
			&m.AccountID,
			&m.Quantity,
			&m.UnitPrice,
			&m.DebitAmount,
			&m.CreditAmount,
			&m.TaxAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan split row: %w", err)
		}
		splits = append(splits, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating split rows: %w", err)
	}
	return mapping.ToDomainSplitSlice(splits), nil
}

// UpdateEntryStatus sets the review status of an entry.
func (r *PgxEntryRepository) UpdateEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus) error {
	query := `UPDATE entries SET status = $2 WHERE entry_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, entryID, string(status))
	if err != nil {
		return fmt.Errorf("failed to update status of entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("entry", entryID)
	}
	return nil
}

// DeleteEntry removes an entry and its splits. Splits go first so they never
// outlive their entry.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("failed to rollback entry delete", slog.String("entry_id", entryID), slog.String("error", rbErr.Error()))
		}
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM splits WHERE entry_id = $1;`, entryID); err != nil {
		return fmt.Errorf("failed to delete splits of entry %s: %w", entryID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("entry", entryID)
	}

	return r.Commit(ctx, tx)
}
