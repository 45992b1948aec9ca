package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/frotaops/frota_backend/internal/apperrors"
	"github.com/frotaops/frota_backend/internal/core/domain"
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	"github.com/frotaops/frota_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDriverRepository struct {
	BaseRepository
}

func newPgxDriverRepository(pool *pgxpool.Pool) portsrepo.DriverRepository {
	return &PgxDriverRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.DriverRepository = (*PgxDriverRepository)(nil)

func toDomainDriver(m models.Driver) domain.Driver {
	return domain.Driver{
		DriverID:      m.DriverID,
		Name:          m.Name,
		CPF:           m.CPF,
		PasswordHash:  m.PasswordHash,
		CNHNumber:     m.CNHNumber,
		CNHCategory:   m.CNHCategory,
		CNHExpiration: m.CNHExpiration,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const driverColumns = `driver_id, name, cpf, password_hash, cnh_number, cnh_category, cnh_expiration, created_at, created_by, last_updated_at, last_updated_by`

func scanDriver(row pgx.Row) (*models.Driver, error) {
	var m models.Driver
	err := row.Scan(
		&m.DriverID,
		&m.Name,
		&m.CPF,
		&m.PasswordHash,
		&m.CNHNumber,
		&m.CNHCategory,
		&m.CNHExpiration,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveDriver inserts a new driver.
func (r *PgxDriverRepository) SaveDriver(ctx context.Context, driver domain.Driver) error {
	query := `
		INSERT INTO drivers (` + driverColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		driver.DriverID,
		driver.Name,
		driver.CPF,
		driver.PasswordHash,
		driver.CNHNumber,
		driver.CNHCategory,
		driver.CNHExpiration,
		driver.CreatedAt,
		driver.CreatedBy,
		driver.LastUpdatedAt,
		driver.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: driver with CPF %s already exists", apperrors.ErrDuplicate, driver.CPF)
		}
		return fmt.Errorf("failed to save driver %s: %w", driver.DriverID, err)
	}
	return nil
}

// FindDriverByID retrieves a driver by ID.
func (r *PgxDriverRepository) FindDriverByID(ctx context.Context, driverID string) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE driver_id = $1;`
	m, err := scanDriver(r.Pool.QueryRow(ctx, query, driverID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find driver %s: %w", driverID, err)
	}
	driver := toDomainDriver(*m)
	return &driver, nil
}

// FindDriverByCPF retrieves a driver by CPF for login.
func (r *PgxDriverRepository) FindDriverByCPF(ctx context.Context, cpf string) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE cpf = $1;`
	m, err := scanDriver(r.Pool.QueryRow(ctx, query, cpf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find driver by cpf: %w", err)
	}
	driver := toDomainDriver(*m)
	return &driver, nil
}

// ListDrivers retrieves all drivers ordered by name.
func (r *PgxDriverRepository) ListDrivers(ctx context.Context) ([]domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer rows.Close()

	var drivers []domain.Driver
	for rows.Next() {
		m, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan driver row: %w", err)
		}
		drivers = append(drivers, toDomainDriver(*m))
	}
	return drivers, rows.Err()
}

// UpdateDriver overwrites all mutable columns of a driver.
func (r *PgxDriverRepository) UpdateDriver(ctx context.Context, driver domain.Driver) error {
	query := `
		UPDATE drivers
		SET name = $2, cpf = $3, password_hash = $4, cnh_number = $5, cnh_category = $6,
		    cnh_expiration = $7, last_updated_at = $8, last_updated_by = $9
		WHERE driver_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		driver.DriverID,
		driver.Name,
		driver.CPF,
		driver.PasswordHash,
		driver.CNHNumber,
		driver.CNHCategory,
		driver.CNHExpiration,
		driver.LastUpdatedAt,
		driver.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: driver with CPF %s already exists", apperrors.ErrDuplicate, driver.CPF)
		}
		return fmt.Errorf("failed to update driver %s: %w", driver.DriverID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteDriver hard-deletes a driver.
func (r *PgxDriverRepository) DeleteDriver(ctx context.Context, driverID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM drivers WHERE driver_id = $1;`, driverID)
	if err != nil {
		return fmt.Errorf("failed to delete driver %s: %w", driverID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
