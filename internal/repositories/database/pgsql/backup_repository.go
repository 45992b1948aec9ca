package pgsql

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/frotaops/frota_backend/internal/apperrors"
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// tablePrimaryKeys maps each exportable table to its primary key column.
// Import upserts rows on this key.
var tablePrimaryKeys = map[string]string{
	"vehicles":           "vehicle_id",
	"drivers":            "driver_id",
	"financial_accounts": "account_id",
	"suppliers":          "supplier_id",
	"customers":          "customer_id",
	"checklists":         "checklist_id",
	"transactions":       "transaction_id",
	"trips":              "trip_id",
	"fuel_entries":       "fuel_entry_id",
}

type PgxBackupRepository struct {
	BaseRepository
}

func newPgxBackupRepository(pool *pgxpool.Pool) portsrepo.BackupRepository {
	return &PgxBackupRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BackupRepository = (*PgxBackupRepository)(nil)

// ExportTable reads all rows of a table as raw column-name keyed maps.
func (r *PgxBackupRepository) ExportTable(ctx context.Context, table string) ([]map[string]any, error) {
	if _, ok := tablePrimaryKeys[table]; !ok {
		return nil, fmt.Errorf("%w: table %s is not exportable", apperrors.ErrValidation, table)
	}

	rows, err := r.Pool.Query(ctx, `SELECT * FROM `+table+`;`)
	if err != nil {
		return nil, fmt.Errorf("failed to export table %s: %w", table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var out []map[string]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row of table %s: %w", table, err)
		}
		row := make(map[string]any, len(fields))
		for i, fd := range fields {
			row[fd.Name] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ImportTables upserts every given table's rows by primary key inside one
// database transaction. Tables are replayed in dependency order so foreign
// keys resolve regardless of map iteration order.
func (r *PgxBackupRepository) ImportTables(ctx context.Context, tables map[string][]map[string]any) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, table := range portsrepo.BackupTables {
		rows, ok := tables[table]
		if !ok {
			continue
		}
		pk := tablePrimaryKeys[table]
		for _, row := range rows {
			query, args := buildUpsert(table, pk, row)
			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("failed to import row into %s: %w", table, err)
			}
		}
	}
	return r.Commit(ctx, tx)
}

// buildUpsert renders INSERT ... ON CONFLICT (pk) DO UPDATE for one raw row.
// Columns are sorted so the statement text is stable for a given row shape.
func buildUpsert(table, pk string, row map[string]any) (string, []any) {
	columns := make([]string, 0, len(row))
	for col := range row {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	placeholders := make([]string, len(columns))
	updates := make([]string, 0, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row[col]
		if col != pk {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s;",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		pk,
		strings.Join(updates, ", "),
	)
	return query, args
}
