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

type PgxTripRepository struct {
	BaseRepository
}

func newPgxTripRepository(pool *pgxpool.Pool) portsrepo.TripRepository {
	return &PgxTripRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TripRepository = (*PgxTripRepository)(nil)

func toDomainTrip(m models.Trip) domain.Trip {
	return domain.Trip{
		TripID:              m.TripID,
		VehicleID:           m.VehicleID,
		DriverID:            m.DriverID,
		CustomerID:          m.CustomerID,
		Status:              domain.TripStatus(m.Status),
		StartLocation:       m.StartLocation,
		StartKm:             m.StartKm,
		StartDate:           m.StartDate,
		EndLocation:         m.EndLocation,
		EndKm:               m.EndKm,
		EndDate:             m.EndDate,
		FreightAmount:       m.FreightAmount,
		ExtraExpensesAmount: m.ExtraExpensesAmount,
		FuelAmount:          m.FuelAmount,
		CommissionAmount:    m.CommissionAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const tripColumns = `trip_id, vehicle_id, driver_id, customer_id, status, start_location, start_km, start_date, end_location, end_km, end_date, freight_amount, extra_expenses_amount, fuel_amount, commission_amount, created_at, created_by, last_updated_at, last_updated_by`

func scanTrip(row pgx.Row) (*models.Trip, error) {
	var m models.Trip
	var driverID, customerID, endLocation sql.NullString
	err := row.Scan(
		&m.TripID,
		&m.VehicleID,
		&driverID,
		&customerID,
		&m.Status,
		&m.StartLocation,
		&m.StartKm,
		&m.StartDate,
		&endLocation,
		&m.EndKm,
		&m.EndDate,
		&m.FreightAmount,
		&m.ExtraExpensesAmount,
		&m.FuelAmount,
		&m.CommissionAmount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.DriverID = fromNullString(driverID)
	m.CustomerID = fromNullString(customerID)
	m.EndLocation = fromNullString(endLocation)
	return &m, nil
}

// SaveTrip inserts a new trip.
func (r *PgxTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		trip.TripID,
		trip.VehicleID,
		nullString(trip.DriverID),
		nullString(trip.CustomerID),
		string(trip.Status),
		trip.StartLocation,
		trip.StartKm,
		trip.StartDate,
		nullString(trip.EndLocation),
		trip.EndKm,
		trip.EndDate,
		trip.FreightAmount,
		trip.ExtraExpensesAmount,
		trip.FuelAmount,
		trip.CommissionAmount,
		trip.CreatedAt,
		trip.CreatedBy,
		trip.LastUpdatedAt,
		trip.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: trip %s already exists", apperrors.ErrDuplicate, trip.TripID)
		}
		return fmt.Errorf("failed to save trip %s: %w", trip.TripID, err)
	}
	return nil
}

// FindTripByID retrieves a trip by ID.
func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE trip_id = $1;`
	m, err := scanTrip(r.Pool.QueryRow(ctx, query, tripID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find trip %s: %w", tripID, err)
	}
	trip := toDomainTrip(*m)
	return &trip, nil
}

// ListTrips retrieves all trips ordered by start date descending.
func (r *PgxTripRepository) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY start_date DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		m, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		trips = append(trips, toDomainTrip(*m))
	}
	return trips, rows.Err()
}

// CompleteTripWithEntries writes the completed trip and its generated financial
// transactions in a single database transaction. The trip row is only updated
// while still IN_PROGRESS, so concurrent completions cannot double-book.
func (r *PgxTripRepository) CompleteTripWithEntries(ctx context.Context, trip domain.Trip, entries []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE trips
		SET status = $2, end_location = $3, end_km = $4, end_date = $5,
		    freight_amount = $6, extra_expenses_amount = $7, fuel_amount = $8,
		    commission_amount = $9, last_updated_at = $10, last_updated_by = $11
		WHERE trip_id = $1 AND status = $12;
	`
	tag, err := tx.Exec(ctx, query,
		trip.TripID,
		string(trip.Status),
		nullString(trip.EndLocation),
		trip.EndKm,
		trip.EndDate,
		trip.FreightAmount,
		trip.ExtraExpensesAmount,
		trip.FuelAmount,
		trip.CommissionAmount,
		trip.LastUpdatedAt,
		trip.LastUpdatedBy,
		string(domain.TripInProgress),
	)
	if err != nil {
		return fmt.Errorf("failed to complete trip %s: %w", trip.TripID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: trip is not in progress", apperrors.ErrValidation)
	}

	for _, entry := range entries {
		if err := insertTransaction(ctx, tx, entry); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}

// DeleteTrip hard-deletes a trip.
func (r *PgxTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM trips WHERE trip_id = $1;`, tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip %s: %w", tripID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
