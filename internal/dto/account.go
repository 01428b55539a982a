package dto

import (
	"github.com/yuanzhi/finledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code            string                 `json:"code" binding:"required"`
	Name            string                 `json:"name" binding:"required"`
	Category        domain.AccountCategory `json:"category" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Currency        string                 `json:"currency"`                  // Optional, defaults to CNY
	ParentAccountID *string                `json:"parentAccountID"`           // Optional
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish "not provided" from zero values; only supplied fields
// are applied.
type UpdateAccountRequest struct {
	Name            *string                 `json:"name"`
	Category        *domain.AccountCategory `json:"category" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Currency        *string                 `json:"currency"`
	ParentAccountID *string                 `json:"parentAccountID"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string                 `json:"accountID"`
	Code            string                 `json:"code"`
	Name            string                 `json:"name"`
	Category        domain.AccountCategory `json:"category"`
	Currency        string                 `json:"currency"`
	ParentAccountID string                 `json:"parentAccountID,omitempty"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Code:            acc.Code,
		Name:            acc.Name,
		Category:        acc.Category,
		Currency:        acc.Currency,
		ParentAccountID: acc.ParentAccountID,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
