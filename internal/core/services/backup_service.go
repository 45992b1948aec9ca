package services

import (
	"context"
	"fmt"

	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
)

type backupService struct {
	backupRepo portsrepo.BackupRepository
}

// NewBackupService creates the export/import service.
func NewBackupService(backupRepo portsrepo.BackupRepository) portssvc.BackupSvcFacade {
	return &backupService{backupRepo: backupRepo}
}

// Export reads every backed-up table into one document.
func (s *backupService) Export(ctx context.Context) (*dto.BackupDocument, error) {
	doc := &dto.BackupDocument{}
	for _, table := range portsrepo.BackupTables {
		rows, err := s.backupRepo.ExportTable(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("export of %s failed: %w", table, err)
		}
		doc.SetTable(table, rows)
	}
	return doc, nil
}

// Import upserts every row of the document by primary key in one database
// transaction. created_at is stripped so existing rows keep their original
// creation time, and created_by is rewritten to the importing user.
func (s *backupService) Import(ctx context.Context, doc *dto.BackupDocument, userID string) (*dto.ImportSummary, error) {
	tables := doc.Tables()

	summary := &dto.ImportSummary{RowsByTable: make(map[string]int)}
	normalized := make(map[string][]map[string]any, len(tables))
	for _, table := range portsrepo.BackupTables {
		rows := tables[table]
		if len(rows) == 0 {
			continue
		}
		cleaned := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			out := make(map[string]any, len(row))
			for col, val := range row {
				if col == "created_at" {
					continue
				}
				out[col] = val
			}
			out["created_by"] = userID
			cleaned = append(cleaned, out)
		}
		normalized[table] = cleaned
		summary.RowsByTable[table] = len(cleaned)
		summary.TotalRows += len(cleaned)
	}

	if err := s.backupRepo.ImportTables(ctx, normalized); err != nil {
		return nil, err
	}
	return summary, nil
}
