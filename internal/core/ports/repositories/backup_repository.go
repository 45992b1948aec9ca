package repositories

import "context"

// BackupTables lists the exported tables in dependency order. Import replays
// them in the same order so foreign keys resolve.
var BackupTables = []string{
	"vehicles",
	"drivers",
	"financial_accounts",
	"suppliers",
	"customers",
	"checklists",
	"transactions",
	"trips",
	"fuel_entries",
}

// BackupRepository reads and upserts raw snake_case rows per table.
type BackupRepository interface {
	ExportTable(ctx context.Context, table string) ([]map[string]any, error)
	// ImportTables upserts the rows of every given table by primary key inside
	// one database transaction. Rows must already be normalized (created_at
	// stripped, created_by rewritten).
	ImportTables(ctx context.Context, tables map[string][]map[string]any) error
}
