package services

import (
	"context"

	"github.com/yuanzhi/finledger/internal/core/domain"
	"github.com/yuanzhi/finledger/internal/dto"
)

// EntrySvcFacade exposes the ledger engine operations.
type EntrySvcFacade interface {
	// CreateEntry validates the debit/credit balance invariant and commits
	// the entry, its splits, and the POSTED transition on the referenced
	// transaction as one atomic unit.
	CreateEntry(ctx context.Context, actor domain.Actor, req dto.CreateEntryRequest) (*domain.Entry, error)
	GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)
	ListEntries(ctx context.Context) ([]domain.Entry, error)
	ListSubmittedEntries(ctx context.Context) ([]domain.Entry, error)
	ListEntriesByTransaction(ctx context.Context, transactionID string) ([]domain.Entry, error)
	GetSplitsByEntry(ctx context.Context, entryID string) ([]domain.Split, error)
	UpdateEntryStatus(ctx context.Context, actor domain.Actor, entryID string, status domain.EntryStatus) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, actor domain.Actor, entryID string) error
}
