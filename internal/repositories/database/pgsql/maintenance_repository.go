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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMaintenanceRepository struct {
	BaseRepository
}

func newPgxMaintenanceRepository(pool *pgxpool.Pool) portsrepo.MaintenanceRepository {
	return &PgxMaintenanceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.MaintenanceRepository = (*PgxMaintenanceRepository)(nil)

func toDomainTask(m models.MaintenanceTask) domain.MaintenanceTask {
	return domain.MaintenanceTask{
		TaskID:        m.TaskID,
		VehicleID:     m.VehicleID,
		Description:   m.Description,
		Priority:      domain.TaskPriority(m.Priority),
		Cost:          m.Cost,
		DueDate:       m.DueDate,
		Status:        domain.TaskStatus(m.Status),
		TransactionID: m.TransactionID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const taskColumns = `task_id, vehicle_id, description, priority, cost, due_date, status, transaction_id, created_at, created_by, last_updated_at, last_updated_by`

func scanTask(row pgx.Row) (*models.MaintenanceTask, error) {
	var m models.MaintenanceTask
	var transactionID sql.NullString
	err := row.Scan(
		&m.TaskID,
		&m.VehicleID,
		&m.Description,
		&m.Priority,
		&m.Cost,
		&m.DueDate,
		&m.Status,
		&transactionID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.TransactionID = fromNullString(transactionID)
	return &m, nil
}

// SaveTask inserts a new maintenance task.
func (r *PgxMaintenanceRepository) SaveTask(ctx context.Context, task domain.MaintenanceTask) error {
	query := `
		INSERT INTO maintenance_alerts (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		task.TaskID,
		task.VehicleID,
		task.Description,
		string(task.Priority),
		task.Cost,
		task.DueDate,
		string(task.Status),
		nullString(task.TransactionID),
		task.CreatedAt,
		task.CreatedBy,
		task.LastUpdatedAt,
		task.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: maintenance task %s already exists", apperrors.ErrDuplicate, task.TaskID)
		}
		return fmt.Errorf("failed to save maintenance task %s: %w", task.TaskID, err)
	}
	return nil
}

// FindTaskByID retrieves a maintenance task by ID.
func (r *PgxMaintenanceRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.MaintenanceTask, error) {
	query := `SELECT ` + taskColumns + ` FROM maintenance_alerts WHERE task_id = $1;`
	m, err := scanTask(r.Pool.QueryRow(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find maintenance task %s: %w", taskID, err)
	}
	task := toDomainTask(*m)
	return &task, nil
}

func (r *PgxMaintenanceRepository) queryTasks(ctx context.Context, query string, args ...any) ([]domain.MaintenanceTask, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query maintenance tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.MaintenanceTask
	for rows.Next() {
		m, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance task row: %w", err)
		}
		tasks = append(tasks, toDomainTask(*m))
	}
	return tasks, rows.Err()
}

// ListTasks retrieves all maintenance tasks, most recent first.
func (r *PgxMaintenanceRepository) ListTasks(ctx context.Context) ([]domain.MaintenanceTask, error) {
	return r.queryTasks(ctx, `SELECT `+taskColumns+` FROM maintenance_alerts ORDER BY created_at DESC;`)
}

// ListPendingTasks retrieves open tasks in creation order for the alert feed.
func (r *PgxMaintenanceRepository) ListPendingTasks(ctx context.Context) ([]domain.MaintenanceTask, error) {
	return r.queryTasks(ctx, `SELECT `+taskColumns+` FROM maintenance_alerts WHERE status = $1 ORDER BY created_at;`, string(domain.TaskPending))
}

// UpdateTask overwrites all mutable columns of a task.
func (r *PgxMaintenanceRepository) UpdateTask(ctx context.Context, task domain.MaintenanceTask) error {
	query := `
		UPDATE maintenance_alerts
		SET description = $2, priority = $3, cost = $4, due_date = $5, status = $6,
		    transaction_id = $7, last_updated_at = $8, last_updated_by = $9
		WHERE task_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		task.TaskID,
		task.Description,
		string(task.Priority),
		task.Cost,
		task.DueDate,
		string(task.Status),
		nullString(task.TransactionID),
		task.LastUpdatedAt,
		task.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update maintenance task %s: %w", task.TaskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkDoneWithExpense flips the task to DONE and writes the optional generated
// expense transaction in a single database transaction. The task row is only
// updated while still PENDING so completion cannot double-book the expense.
func (r *PgxMaintenanceRepository) MarkDoneWithExpense(ctx context.Context, task domain.MaintenanceTask, txn *domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE maintenance_alerts
		SET status = $2, cost = $3, transaction_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE task_id = $1 AND status = $7;
	`
	tag, err := tx.Exec(ctx, query,
		task.TaskID,
		string(task.Status),
		task.Cost,
		nullString(task.TransactionID),
		task.LastUpdatedAt,
		task.LastUpdatedBy,
		string(domain.TaskPending),
	)
	if err != nil {
		return fmt.Errorf("failed to complete maintenance task %s: %w", task.TaskID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: maintenance task is not pending", apperrors.ErrValidation)
	}

	if txn != nil {
		if err := insertTransaction(ctx, tx, *txn); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}

// DeleteTask hard-deletes a maintenance task.
func (r *PgxMaintenanceRepository) DeleteTask(ctx context.Context, taskID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM maintenance_alerts WHERE task_id = $1;`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete maintenance task %s: %w", taskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
