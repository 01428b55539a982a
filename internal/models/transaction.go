package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persistence shape of a business transaction.
type Transaction struct {
	TransactionID  string          `db:"transaction_id"`
	Date           time.Time       `db:"date"`
	Counterparty   string          `db:"counterparty"`
	Project        sql.NullString  `db:"project"`
	DueDate        sql.NullTime    `db:"due_date"`
	ProductService sql.NullString  `db:"product_service"`
	Quantity       int64           `db:"quantity"`
	UnitPrice      decimal.Decimal `db:"unit_price"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	TaxRate        decimal.Decimal `db:"tax_rate"`
	Status         string          `db:"status"`
	UserID         string          `db:"user_id"`
}
