package services

import (
	"context"

	"github.com/frotaops/frota_backend/internal/dto"
)

// BackupSvcFacade exports and restores the full dataset.
type BackupSvcFacade interface {
	Export(ctx context.Context) (*dto.BackupDocument, error)
	// Import upserts every row by primary key. created_at is stripped and
	// created_by rewritten to the importing user.
	Import(ctx context.Context, doc *dto.BackupDocument, userID string) (*dto.ImportSummary, error)
}
