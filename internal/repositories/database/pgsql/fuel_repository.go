package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/frotaops/frota_backend/internal/apperrors"
	"github.com/frotaops/frota_backend/internal/core/domain"
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	"github.com/frotaops/frota_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFuelEntryRepository struct {
	BaseRepository
}

func newPgxFuelEntryRepository(pool *pgxpool.Pool) portsrepo.FuelEntryRepository {
	return &PgxFuelEntryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.FuelEntryRepository = (*PgxFuelEntryRepository)(nil)

func toDomainFuelEntry(m models.FuelEntry) domain.FuelEntry {
	return domain.FuelEntry{
		FuelEntryID:   m.FuelEntryID,
		VehicleID:     m.VehicleID,
		Date:          m.Date,
		Liters:        m.Liters,
		PricePerLiter: m.PricePerLiter,
		TotalCost:     m.TotalCost,
		Mileage:       m.Mileage,
		SupplierID:    m.SupplierID,
		TransactionID: m.TransactionID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const fuelEntryColumns = `fuel_entry_id, vehicle_id, date, liters, price_per_liter, total_cost, mileage, supplier_id, transaction_id, created_at, created_by, last_updated_at, last_updated_by`

func scanFuelEntry(row pgx.Row) (*models.FuelEntry, error) {
	var m models.FuelEntry
	var supplierID, transactionID sql.NullString
	err := row.Scan(
		&m.FuelEntryID,
		&m.VehicleID,
		&m.Date,
		&m.Liters,
		&m.PricePerLiter,
		&m.TotalCost,
		&m.Mileage,
		&supplierID,
		&transactionID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.SupplierID = fromNullString(supplierID)
	m.TransactionID = fromNullString(transactionID)
	return &m, nil
}

func insertFuelEntry(ctx context.Context, exec execer, entry domain.FuelEntry) error {
	query := `
		INSERT INTO fuel_entries (` + fuelEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := exec.Exec(ctx, query,
		entry.FuelEntryID,
		entry.VehicleID,
		entry.Date,
		entry.Liters,
		entry.PricePerLiter,
		entry.TotalCost,
		entry.Mileage,
		nullString(entry.SupplierID),
		nullString(entry.TransactionID),
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: fuel entry %s already exists", apperrors.ErrDuplicate, entry.FuelEntryID)
		}
		return fmt.Errorf("failed to save fuel entry %s: %w", entry.FuelEntryID, err)
	}
	return nil
}

// SaveFuelEntry inserts a fuel entry on its own.
func (r *PgxFuelEntryRepository) SaveFuelEntry(ctx context.Context, entry domain.FuelEntry) error {
	return insertFuelEntry(ctx, r.Pool, entry)
}

// SaveFuelEntryWithTransaction inserts the fuel entry, its generated expense
// transaction and the truck odometer update in one database transaction.
func (r *PgxFuelEntryRepository) SaveFuelEntryWithTransaction(ctx context.Context, entry domain.FuelEntry, txn *domain.Transaction, truckKmUpdate *portsrepo.TruckKmUpdate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertFuelEntry(ctx, tx, entry); err != nil {
		return err
	}
	if txn != nil {
		if err := insertTransaction(ctx, tx, *txn); err != nil {
			return err
		}
	}
	if truckKmUpdate != nil {
		tag, err := tx.Exec(ctx,
			`UPDATE vehicles SET current_km = $2, last_updated_at = $3, last_updated_by = $4 WHERE vehicle_id = $1;`,
			truckKmUpdate.VehicleID, truckKmUpdate.CurrentKm, entry.LastUpdatedAt, entry.LastUpdatedBy)
		if err != nil {
			return fmt.Errorf("failed to update truck %s odometer: %w", truckKmUpdate.VehicleID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
	}
	return r.Commit(ctx, tx)
}

func (r *PgxFuelEntryRepository) queryFuelEntries(ctx context.Context, query string, args ...any) ([]domain.FuelEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fuel entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.FuelEntry
	for rows.Next() {
		m, err := scanFuelEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fuel entry row: %w", err)
		}
		entries = append(entries, toDomainFuelEntry(*m))
	}
	return entries, rows.Err()
}

// ListFuelEntries retrieves all fuel entries, most recent first.
func (r *PgxFuelEntryRepository) ListFuelEntries(ctx context.Context) ([]domain.FuelEntry, error) {
	return r.queryFuelEntries(ctx, `SELECT `+fuelEntryColumns+` FROM fuel_entries ORDER BY date DESC;`)
}

// ListFuelEntriesByVehicle retrieves a vehicle's fuel entries, most recent first.
func (r *PgxFuelEntryRepository) ListFuelEntriesByVehicle(ctx context.Context, vehicleID string) ([]domain.FuelEntry, error) {
	return r.queryFuelEntries(ctx, `SELECT `+fuelEntryColumns+` FROM fuel_entries WHERE vehicle_id = $1 ORDER BY date DESC;`, vehicleID)
}

// DeleteFuelEntry hard-deletes a fuel entry.
func (r *PgxFuelEntryRepository) DeleteFuelEntry(ctx context.Context, fuelEntryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM fuel_entries WHERE fuel_entry_id = $1;`, fuelEntryID)
	if err != nil {
		return fmt.Errorf("failed to delete fuel entry %s: %w", fuelEntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
