package domain

// AccountCategory defines the fundamental accounting category of an account.
type AccountCategory string

const (
	Asset     AccountCategory = "ASSET"
	Liability AccountCategory = "LIABILITY"
	Equity    AccountCategory = "EQUITY"
	Revenue   AccountCategory = "REVENUE"
	Expense   AccountCategory = "EXPENSE"
)

// Valid reports whether c is one of the known account categories.
func (c AccountCategory) Valid() bool {
	switch c {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents a node in the chart-of-accounts hierarchy.
type Account struct {
	AccountID       string          `json:"accountID"`       // Primary key (UUID)
	Code            string          `json:"code"`            // Unique, non-empty account code
	Name            string          `json:"name"`            // User-visible name
	Category        AccountCategory `json:"category"`        // ASSET, LIABILITY, etc.
	Currency        string          `json:"currency"`        // Currency code, defaults to CNY
	ParentAccountID string          `json:"parentAccountID"` // Empty for root accounts
}
