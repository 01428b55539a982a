package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the review state of a journal entry.
type EntryStatus string

const (
	EntryDraft     EntryStatus = "DRAFT"
	EntrySubmitted EntryStatus = "SUBMITTED"
	EntryApproved  EntryStatus = "APPROVED"
	EntryRejected  EntryStatus = "REJECTED"
)

// entryTransitions is the set of legal moves for an entry. A rejected entry
// may be resubmitted; an approved entry is terminal.
var entryTransitions = map[EntryStatus]map[EntryStatus]bool{
	EntryDraft:     {EntrySubmitted: true},
	EntrySubmitted: {EntryApproved: true, EntryRejected: true},
	EntryRejected:  {EntrySubmitted: true},
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
func (s EntryStatus) CanTransitionTo(next EntryStatus) bool {
	return entryTransitions[s][next]
}

// Valid reports whether s is one of the known entry statuses.
func (s EntryStatus) Valid() bool {
	switch s {
	case EntryDraft, EntrySubmitted, EntryApproved, EntryRejected:
		return true
	}
	return false
}

// Entry represents a balanced journal entry composed of splits, linked to
// one transaction.
type Entry struct {
	EntryID       string          `json:"entryID"` // Primary key (UUID)
	Summary       string          `json:"summary"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	CreatedAt     time.Time       `json:"createdAt"` // Set at creation, immutable
	Status        EntryStatus     `json:"status"`    // Default: DRAFT
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"` // Recording user
}

// Split is one debit-or-credit line item within an entry, tied to one account.
// A split with both sides nonzero is legal but unusual; it is stored as given.
type Split struct {
	SplitID      string          `json:"splitID"` // Primary key (UUID)
	EntryID      string          `json:"entryID"`
	AccountID    string          `json:"accountID"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	TaxAmount    decimal.Decimal `json:"taxAmount"`
}
