package services

import (
	"context"
	"fmt"
	"time"

	"github.com/frotaops/frota_backend/internal/apperrors"
	"github.com/frotaops/frota_backend/internal/core/domain"
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionService struct {
	transactionRepo portsrepo.TransactionRepository
}

// NewTransactionService creates the transaction ledger service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: transactionRepo}
}

func buildTransaction(req dto.CreateTransactionRequest, userID string, now time.Time) (domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.Transaction{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = domain.TransactionPending
	}
	paymentDate := req.PaymentDate
	if status == domain.TransactionPaid && paymentDate == nil {
		paymentDate = &now
	}

	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          req.Type,
		Status:        status,
		Amount:        req.Amount,
		Description:   req.Description,
		Category:      req.Category,
		DueDate:       req.DueDate,
		PaymentDate:   paymentDate,
		AccountID:     req.AccountID,
		VehicleID:     req.VehicleID,
		SupplierID:    req.SupplierID,
		CustomerID:    req.CustomerID,
		DriverID:      req.DriverID,
		TripID:        req.TripID,
		ChecklistID:   req.ChecklistID,
		AuditFields:   newAuditFields(userID, now),
	}, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	txn, err := buildTransaction(req, userID, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// CreateInstallments splits the base transaction into N monthly PENDING
// installments. The total amount is divided evenly; the last installment
// absorbs the rounding remainder so the sum always equals the original.
func (s *transactionService) CreateInstallments(ctx context.Context, req dto.CreateInstallmentsRequest, userID string) ([]domain.Transaction, error) {
	base, err := buildTransaction(req.CreateTransactionRequest, userID, time.Now())
	if err != nil {
		return nil, err
	}

	n := req.Installments
	per := base.Amount.Div(decimal.NewFromInt(int64(n))).RoundBank(2)
	last := base.Amount.Sub(per.Mul(decimal.NewFromInt(int64(n - 1))))

	txns := make([]domain.Transaction, 0, n)
	for i := 0; i < n; i++ {
		txn := base
		txn.TransactionID = uuid.NewString()
		txn.Status = domain.TransactionPending
		txn.PaymentDate = nil
		txn.Description = fmt.Sprintf("%s (%d/%d)", base.Description, i+1, n)
		txn.DueDate = base.DueDate.AddDate(0, i, 0)
		if i == n-1 {
			txn.Amount = last
		} else {
			txn.Amount = per
		}
		txns = append(txns, txn)
	}

	if err := s.transactionRepo.SaveTransactions(ctx, txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.transactionRepo.ListTransactions(ctx)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		txn.Status = *req.Status
		if txn.Status != domain.TransactionPaid {
			txn.PaymentDate = nil
		}
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.DueDate != nil {
		txn.DueDate = *req.DueDate
	}
	if req.PaymentDate != nil {
		txn.PaymentDate = req.PaymentDate
	}
	if req.AccountID != nil {
		txn.AccountID = *req.AccountID
	}
	touch(&txn.AuditFields, userID, time.Now())

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// PayTransaction settles a pending transaction. PaymentDate defaults to now.
func (s *transactionService) PayTransaction(ctx context.Context, transactionID string, req dto.PayTransactionRequest, userID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != domain.TransactionPending {
		return nil, fmt.Errorf("%w: only pending transactions can be paid", apperrors.ErrValidation)
	}

	now := time.Now()
	paymentDate := req.PaymentDate
	if paymentDate == nil {
		paymentDate = &now
	}
	txn.Status = domain.TransactionPaid
	txn.PaymentDate = paymentDate
	if req.AccountID != "" {
		txn.AccountID = req.AccountID
	}
	touch(&txn.AuditFields, userID, now)

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(ctx, transactionID)
}
