package repositories

import (
	"context"

	"github.com/yuanzhi/finledger/internal/core/domain"
)

// EntryRepository defines persistence operations for entries and their splits.
type EntryRepository interface {
	// SaveEntry persists the entry, its splits, and the POSTED status write on
	// the referenced transaction within a single database transaction. Either
	// all three land or none do.
	SaveEntry(ctx context.Context, entry domain.Entry, splits []domain.Split) error
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)
	ListEntries(ctx context.Context) ([]domain.Entry, error)
	ListSubmittedEntries(ctx context.Context) ([]domain.Entry, error)
	ListEntriesByTransaction(ctx context.Context, transactionID string) ([]domain.Entry, error)
	FindSplitsByEntryID(ctx context.Context, entryID string) ([]domain.Split, error)
	UpdateEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus) error
	// DeleteEntry removes the entry's splits first, then the entry itself, so
	// splits never outlive their entry.
	DeleteEntry(ctx context.Context, entryID string) error
}
