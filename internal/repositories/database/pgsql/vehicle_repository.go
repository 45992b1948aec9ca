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

type PgxVehicleRepository struct {
	BaseRepository
}

func newPgxVehicleRepository(pool *pgxpool.Pool) portsrepo.VehicleRepository {
	return &PgxVehicleRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.VehicleRepository = (*PgxVehicleRepository)(nil)

func toModelVehicle(d domain.Vehicle) models.Vehicle {
	return models.Vehicle{
		VehicleID:           d.VehicleID,
		VehicleType:         string(d.VehicleType),
		Plate:               d.Plate,
		Model:               d.Model,
		CurrentKm:           d.CurrentKm,
		NextOilChangeKm:     d.NextOilChangeKm,
		Axles:               d.Axles,
		LastLubricationDate: d.LastLubricationDate,
		DefaultDriverID:     d.DefaultDriverID,
		DocumentURL:         d.DocumentURL,
		Photos:              d.Photos,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainVehicle(m models.Vehicle) domain.Vehicle {
	return domain.Vehicle{
		VehicleID:           m.VehicleID,
		VehicleType:         domain.VehicleType(m.VehicleType),
		Plate:               m.Plate,
		Model:               m.Model,
		CurrentKm:           m.CurrentKm,
		NextOilChangeKm:     m.NextOilChangeKm,
		Axles:               m.Axles,
		LastLubricationDate: m.LastLubricationDate,
		DefaultDriverID:     m.DefaultDriverID,
		DocumentURL:         m.DocumentURL,
		Photos:              m.Photos,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const vehicleColumns = `vehicle_id, vehicle_type, plate, model, current_km, next_oil_change_km, axles, last_lubrication_date, default_driver_id, document_url, photos, created_at, created_by, last_updated_at, last_updated_by`

func scanVehicle(row pgx.Row) (*models.Vehicle, error) {
	var m models.Vehicle
	var model, defaultDriverID, documentURL sql.NullString
	err := row.Scan(
		&m.VehicleID,
		&m.VehicleType,
		&m.Plate,
		&model,
		&m.CurrentKm,
		&m.NextOilChangeKm,
		&m.Axles,
		&m.LastLubricationDate,
		&defaultDriverID,
		&documentURL,
		&m.Photos,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.Model = fromNullString(model)
	m.DefaultDriverID = fromNullString(defaultDriverID)
	m.DocumentURL = fromNullString(documentURL)
	return &m, nil
}

// SaveVehicle inserts a new vehicle.
func (r *PgxVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	m := toModelVehicle(vehicle)
	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VehicleID,
		m.VehicleType,
		m.Plate,
		nullString(m.Model),
		m.CurrentKm,
		m.NextOilChangeKm,
		m.Axles,
		m.LastLubricationDate,
		nullString(m.DefaultDriverID),
		nullString(m.DocumentURL),
		m.Photos,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: vehicle with plate %s already exists", apperrors.ErrDuplicate, m.Plate)
		}
		return fmt.Errorf("failed to save vehicle %s: %w", m.VehicleID, err)
	}
	return nil
}

// FindVehicleByID retrieves a vehicle by its ID.
func (r *PgxVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE vehicle_id = $1;`
	m, err := scanVehicle(r.Pool.QueryRow(ctx, query, vehicleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle %s: %w", vehicleID, err)
	}
	vehicle := toDomainVehicle(*m)
	return &vehicle, nil
}

// ListVehicles retrieves all vehicles ordered by plate.
func (r *PgxVehicleRepository) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY plate;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		m, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, toDomainVehicle(*m))
	}
	return vehicles, rows.Err()
}

// UpdateVehicle overwrites all mutable columns of a vehicle.
func (r *PgxVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	m := toModelVehicle(vehicle)
	query := `
		UPDATE vehicles
		SET plate = $2, model = $3, current_km = $4, next_oil_change_km = $5, axles = $6,
		    last_lubrication_date = $7, default_driver_id = $8, document_url = $9, photos = $10,
		    last_updated_at = $11, last_updated_by = $12
		WHERE vehicle_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.VehicleID,
		m.Plate,
		nullString(m.Model),
		m.CurrentKm,
		m.NextOilChangeKm,
		m.Axles,
		m.LastLubricationDate,
		nullString(m.DefaultDriverID),
		nullString(m.DocumentURL),
		m.Photos,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: vehicle with plate %s already exists", apperrors.ErrDuplicate, m.Plate)
		}
		return fmt.Errorf("failed to update vehicle %s: %w", m.VehicleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteVehicle hard-deletes a vehicle.
func (r *PgxVehicleRepository) DeleteVehicle(ctx context.Context, vehicleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vehicles WHERE vehicle_id = $1;`, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle %s: %w", vehicleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
