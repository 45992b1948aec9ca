package services

import (
	"context"
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/google/uuid"
)

type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates the financial account service.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.FinancialAccount, error) {
	account := domain.FinancialAccount{
		AccountID:      uuid.NewString(),
		Name:           req.Name,
		Kind:           req.Kind,
		InitialBalance: req.InitialBalance,
		AuditFields:    newAuditFields(userID, time.Now()),
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.FinancialAccount, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.FinancialAccount, error) {
	return s.accountRepo.ListAccounts(ctx)
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.FinancialAccount, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.InitialBalance != nil {
		account.InitialBalance = *req.InitialBalance
	}
	touch(&account.AuditFields, userID, time.Now())

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	return s.accountRepo.DeleteAccount(ctx, accountID)
}
