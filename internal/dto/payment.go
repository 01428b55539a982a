package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yuanzhi/finledger/internal/core/domain"
)

// CreatePaymentRequest defines the data needed to record a payment.
// The payment date defaults to the current time when absent.
type CreatePaymentRequest struct {
	TransactionID string          `json:"transactionID" binding:"required"`
	AccountID     string          `json:"accountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate   *time.Time      `json:"paymentDate"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string               `json:"paymentID"`
	TransactionID string               `json:"transactionID"`
	AccountID     string               `json:"accountID"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentDate   time.Time            `json:"paymentDate"`
	Status        domain.PaymentStatus `json:"status"`
	ApprovedBy    string               `json:"approvedBy,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		TransactionID: p.TransactionID,
		AccountID:     p.AccountID,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate,
		Status:        p.Status,
		ApprovedBy:    p.ApprovedBy,
	}
}

// ToPaymentResponses converts a slice of domain payments.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}
