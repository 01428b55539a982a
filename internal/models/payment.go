package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the persistence shape of a payment record.
// ApprovedBy is null until a reviewer acts on the payment.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	TransactionID string          `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentDate   time.Time       `db:"payment_date"`
	Status        string          `db:"status"`
	ApprovedBy    sql.NullString  `db:"approved_by"`
}
