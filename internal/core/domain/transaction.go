package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus indicates where a transaction sits in its lifecycle.
type TransactionStatus string

const (
	TransactionPending TransactionStatus = "PENDING"
	TransactionPosted  TransactionStatus = "POSTED"
	TransactionPaid    TransactionStatus = "PAID"
)

// transactionTransitions is the set of legal forward moves for a transaction.
var transactionTransitions = map[TransactionStatus]map[TransactionStatus]bool{
	TransactionPending: {TransactionPosted: true},
	TransactionPosted:  {TransactionPaid: true},
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	return transactionTransitions[s][next]
}

// Valid reports whether s is one of the known transaction statuses.
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionPending, TransactionPosted, TransactionPaid:
		return true
	}
	return false
}

// Transaction represents a business event (sale/purchase) that an entry
// eventually posts to the ledger.
type Transaction struct {
	TransactionID  string            `json:"transactionID"` // Primary key (UUID)
	Date           time.Time         `json:"date"`
	Counterparty   string            `json:"counterparty"` // Supplier or client name
	Project        string            `json:"project,omitempty"`
	DueDate        *time.Time        `json:"dueDate,omitempty"`
	ProductService string            `json:"productService,omitempty"`
	Quantity       int64             `json:"quantity"`
	UnitPrice      decimal.Decimal   `json:"unitPrice"`
	TotalAmount    decimal.Decimal   `json:"totalAmount"`
	TaxRate        decimal.Decimal   `json:"taxRate"`
	Status         TransactionStatus `json:"status"` // Default: PENDING
	UserID         string            `json:"userID"` // Recording user
}
