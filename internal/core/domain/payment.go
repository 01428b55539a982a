package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates where a payment sits in its approval workflow.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentApproved PaymentStatus = "APPROVED"
	PaymentRejected PaymentStatus = "REJECTED"
	PaymentPaid     PaymentStatus = "PAID"
)

// paymentTransitions is the set of legal moves for a payment. Completion
// requires prior approval; rejected and paid are terminal.
var paymentTransitions = map[PaymentStatus]map[PaymentStatus]bool{
	PaymentPending:  {PaymentApproved: true, PaymentRejected: true},
	PaymentApproved: {PaymentPaid: true},
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return paymentTransitions[s][next]
}

// Payment is a disbursement/receipt record tracked through an approval
// workflow, tied to a transaction.
type Payment struct {
	PaymentID     string          `json:"paymentID"` // Primary key (UUID)
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"` // Defaults to creation time
	Status        PaymentStatus   `json:"status"`      // Default: PENDING
	ApprovedBy    string          `json:"approvedBy,omitempty"`
}
