package dto

import (
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a financial account.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required"`
	Kind           domain.AccountKind `json:"kind" binding:"required,oneof=WALLET BANK CASH CREDIT_CARD"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
}

// UpdateAccountRequest defines the fields allowed for updating an account.
type UpdateAccountRequest struct {
	Name           *string          `json:"name"`
	InitialBalance *decimal.Decimal `json:"initialBalance"`
}

// AccountResponse mirrors domain.FinancialAccount.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	Name           string             `json:"name"`
	Kind           domain.AccountKind `json:"kind"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	CreatedAt      time.Time          `json:"createdAt"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.FinancialAccount to its response DTO.
func ToAccountResponse(a *domain.FinancialAccount) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		Name:           a.Name,
		Kind:           a.Kind,
		InitialBalance: a.InitialBalance,
		CreatedAt:      a.CreatedAt,
		LastUpdatedAt:  a.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of accounts.
func ToListAccountResponse(accounts []domain.FinancialAccount) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
