package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yuanzhi/finledger/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// The date defaults to the current time when absent.
type CreateTransactionRequest struct {
	Date           *time.Time       `json:"date"`
	Counterparty   string           `json:"counterparty" binding:"required"`
	Project        string           `json:"project"`
	DueDate        *time.Time       `json:"dueDate"`
	ProductService string           `json:"productService"`
	Quantity       int64            `json:"quantity"`
	UnitPrice      decimal.Decimal  `json:"unitPrice"`
	TotalAmount    decimal.Decimal  `json:"totalAmount" binding:"required"`
	TaxRate        decimal.Decimal  `json:"taxRate"`
}

// UpdateTransactionRequest carries an apply-if-present merge: only non-nil
// fields replace the stored values.
type UpdateTransactionRequest struct {
	Counterparty   *string                   `json:"counterparty"`
	Project        *string                   `json:"project"`
	DueDate        *time.Time                `json:"dueDate"`
	ProductService *string                   `json:"productService"`
	Quantity       *int64                    `json:"quantity"`
	UnitPrice      *decimal.Decimal          `json:"unitPrice"`
	TotalAmount    *decimal.Decimal          `json:"totalAmount"`
	TaxRate        *decimal.Decimal          `json:"taxRate"`
	Status         *domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING POSTED PAID"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID  string                   `json:"transactionID"`
	Date           time.Time                `json:"date"`
	Counterparty   string                   `json:"counterparty"`
	Project        string                   `json:"project,omitempty"`
	DueDate        *time.Time               `json:"dueDate,omitempty"`
	ProductService string                   `json:"productService,omitempty"`
	Quantity       int64                    `json:"quantity"`
	UnitPrice      decimal.Decimal          `json:"unitPrice"`
	TotalAmount    decimal.Decimal          `json:"totalAmount"`
	TaxRate        decimal.Decimal          `json:"taxRate"`
	Status         domain.TransactionStatus `json:"status"`
	UserID         string                   `json:"userID"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  txn.TransactionID,
		Date:           txn.Date,
		Counterparty:   txn.Counterparty,
		Project:        txn.Project,
		DueDate:        txn.DueDate,
		ProductService: txn.ProductService,
		Quantity:       txn.Quantity,
		UnitPrice:      txn.UnitPrice,
		TotalAmount:    txn.TotalAmount,
		TaxRate:        txn.TaxRate,
		Status:         txn.Status,
		UserID:         txn.UserID,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
