package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yuanzhi/finledger/internal/core/domain"
)

// CreateSplitRequest is one debit-or-credit line of a new entry.
type CreateSplitRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	TaxAmount    decimal.Decimal `json:"taxAmount"`
}

// CreateEntryRequest defines the data needed to create an entry with its
// splits. Status defaults to DRAFT when absent.
type CreateEntryRequest struct {
	Summary       string               `json:"summary" binding:"required"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	TransactionID string               `json:"transactionID" binding:"required"`
	Status        *domain.EntryStatus  `json:"status" binding:"omitempty,oneof=DRAFT SUBMITTED APPROVED REJECTED"`
	Splits        []CreateSplitRequest `json:"splits" binding:"required,min=1,dive"`
}

// UpdateEntryStatusRequest carries the requested status for an entry.
type UpdateEntryStatusRequest struct {
	Status domain.EntryStatus `json:"status" binding:"required,oneof=DRAFT SUBMITTED APPROVED REJECTED"`
}

// EntryResponse defines the data returned for an entry.
type EntryResponse struct {
	EntryID       string             `json:"entryID"`
	Summary       string             `json:"summary"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	CreatedAt     time.Time          `json:"createdAt"`
	Status        domain.EntryStatus `json:"status"`
	TransactionID string             `json:"transactionID"`
	UserID        string             `json:"userID"`
}

// SplitResponse defines the data returned for a split.
type SplitResponse struct {
	SplitID      string          `json:"splitID"`
	EntryID      string          `json:"entryID"`
	AccountID    string          `json:"accountID"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	TaxAmount    decimal.Decimal `json:"taxAmount"`
}

// ToEntryResponse converts a domain.Entry to its response DTO.
func ToEntryResponse(entry *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:       entry.EntryID,
		Summary:       entry.Summary,
		TotalAmount:   entry.TotalAmount,
		CreatedAt:     entry.CreatedAt,
		Status:        entry.Status,
		TransactionID: entry.TransactionID,
		UserID:        entry.UserID,
	}
}

// ToEntryResponses converts a slice of domain entries.
func ToEntryResponses(entries []domain.Entry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i := range entries {
		res[i] = ToEntryResponse(&entries[i])
	}
	return res
}

// ToSplitResponses converts a slice of domain splits.
func ToSplitResponses(splits []domain.Split) []SplitResponse {
	res := make([]SplitResponse, len(splits))
	for i, s := range splits {
		res[i] = SplitResponse{
			SplitID:      s.SplitID,
			EntryID:      s.EntryID,
			AccountID:    s.AccountID,
			Quantity:     s.Quantity,
			UnitPrice:    s.UnitPrice,
			DebitAmount:  s.DebitAmount,
			CreditAmount: s.CreditAmount,
			TaxAmount:    s.TaxAmount,
		}
	}
	return res
}
