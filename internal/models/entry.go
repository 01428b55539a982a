package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is the persistence shape of a journal entry header.
type Entry struct {
	EntryID       string          `db:"entry_id"`
	Summary       string          `db:"summary"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	CreatedAt     time.Time       `db:"created_at"`
	Status        string          `db:"status"`
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
}

// Split is the persistence shape of a single debit-or-credit line.
type Split struct {
	SplitID      string          `db:"split_id"`
	EntryID      string          `db:"entry_id"`
	AccountID    string          `db:"account_id"`
	Quantity     int64           `db:"quantity"`
	UnitPrice    decimal.Decimal `db:"unit_price"`
	DebitAmount  decimal.Decimal `db:"debit_amount"`
	CreditAmount decimal.Decimal `db:"credit_amount"`
	TaxAmount    decimal.Decimal `db:"tax_amount"`
}
