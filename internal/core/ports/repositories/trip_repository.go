package repositories

import (
	"context"

	"github.com/frotaops/frota_backend/internal/core/domain"
)

// TripRepository persists trips. CompleteTripWithEntries applies the trip
// update and the generated financial transactions in a single database
// transaction so that completion can never be partially applied.
type TripRepository interface {
	SaveTrip(ctx context.Context, trip domain.Trip) error
	FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error)
	ListTrips(ctx context.Context) ([]domain.Trip, error)
	CompleteTripWithEntries(ctx context.Context, trip domain.Trip, entries []domain.Transaction) error
	DeleteTrip(ctx context.Context, tripID string) error
}
