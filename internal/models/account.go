package models

import "database/sql"

// Account is the persistence shape of a chart-of-accounts node.
// ParentAccountID is a nullable self-referencing foreign key.
type Account struct {
	AccountID       string         `db:"account_id"`
	Code            string         `db:"code"`
	Name            string         `db:"name"`
	Category        string         `db:"category"`
	Currency        string         `db:"currency"`
	ParentAccountID sql.NullString `db:"parent_account_id"`
}
