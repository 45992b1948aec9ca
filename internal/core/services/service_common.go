package services

import (
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
)

// newAuditFields stamps creation audit data for a new entity.
func newAuditFields(userID string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// touch updates the last-updated audit data on a mutation.
func touch(fields *domain.AuditFields, userID string, now time.Time) {
	fields.LastUpdatedAt = now
	fields.LastUpdatedBy = userID
}
