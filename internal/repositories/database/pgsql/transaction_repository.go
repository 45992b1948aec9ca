package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/frotaops/frota_backend/internal/apperrors"
	"github.com/frotaops/frota_backend/internal/core/domain"
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	"github.com/frotaops/frota_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Type:          domain.TransactionType(m.Type),
		Status:        domain.TransactionStatus(m.Status),
		Amount:        m.Amount,
		Description:   m.Description,
		Category:      m.Category,
		DueDate:       m.DueDate,
		PaymentDate:   m.PaymentDate,
		AccountID:     m.AccountID,
		VehicleID:     m.VehicleID,
		SupplierID:    m.SupplierID,
		CustomerID:    m.CustomerID,
		DriverID:      m.DriverID,
		TripID:        m.TripID,
		ChecklistID:   m.ChecklistID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const transactionColumns = `transaction_id, type, status, amount, description, category, due_date, payment_date, account_id, vehicle_id, supplier_id, customer_id, driver_id, trip_id, checklist_id, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	var accountID, vehicleID, supplierID, customerID, driverID, tripID, checklistID sql.NullString
	err := row.Scan(
		&m.TransactionID,
		&m.Type,
		&m.Status,
		&m.Amount,
		&m.Description,
		&m.Category,
		&m.DueDate,
		&m.PaymentDate,
		&accountID,
		&vehicleID,
		&supplierID,
		&customerID,
		&driverID,
		&tripID,
		&checklistID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.AccountID = fromNullString(accountID)
	m.VehicleID = fromNullString(vehicleID)
	m.SupplierID = fromNullString(supplierID)
	m.CustomerID = fromNullString(customerID)
	m.DriverID = fromNullString(driverID)
	m.TripID = fromNullString(tripID)
	m.ChecklistID = fromNullString(checklistID)
	return &m, nil
}

// execer abstracts pgxpool.Pool and pgx.Tx so composite writes in other
// repositories can reuse the insert.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// insertTransaction writes a transaction row using the given executor.
func insertTransaction(ctx context.Context, exec execer, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := exec.Exec(ctx, query,
		txn.TransactionID,
		string(txn.Type),
		string(txn.Status),
		txn.Amount,
		txn.Description,
		txn.Category,
		txn.DueDate,
		txn.PaymentDate,
		nullString(txn.AccountID),
		nullString(txn.VehicleID),
		nullString(txn.SupplierID),
		nullString(txn.CustomerID),
		nullString(txn.DriverID),
		nullString(txn.TripID),
		nullString(txn.ChecklistID),
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// SaveTransaction inserts a single transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return insertTransaction(ctx, r.Pool, txn)
}

// SaveTransactions inserts a batch of transactions atomically. Used for
// installment plans.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, txn := range txns {
		if err := insertTransaction(ctx, tx, txn); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	txn := toDomainTransaction(*m)
	return &txn, nil
}

// ListTransactions retrieves all transactions ordered by due date descending.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY due_date DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(*m))
	}
	return txns, rows.Err()
}

// UpdateTransaction overwrites all mutable columns of a transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET type = $2, status = $3, amount = $4, description = $5, category = $6,
		    due_date = $7, payment_date = $8, account_id = $9, vehicle_id = $10,
		    supplier_id = $11, customer_id = $12, driver_id = $13, trip_id = $14,
		    checklist_id = $15, last_updated_at = $16, last_updated_by = $17
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		string(txn.Type),
		string(txn.Status),
		txn.Amount,
		txn.Description,
		txn.Category,
		txn.DueDate,
		txn.PaymentDate,
		nullString(txn.AccountID),
		nullString(txn.VehicleID),
		nullString(txn.SupplierID),
		nullString(txn.CustomerID),
		nullString(txn.DriverID),
		nullString(txn.TripID),
		nullString(txn.ChecklistID),
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction hard-deletes a transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
