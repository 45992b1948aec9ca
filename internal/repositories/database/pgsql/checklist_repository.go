package pgsql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/frotaops/frota_backend/internal/apperrors"
	"github.com/frotaops/frota_backend/internal/core/domain"
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	"github.com/frotaops/frota_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChecklistRepository struct {
	BaseRepository
}

func newPgxChecklistRepository(pool *pgxpool.Pool) portsrepo.ChecklistRepository {
	return &PgxChecklistRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ChecklistRepository = (*PgxChecklistRepository)(nil)

// rawChecklistItem tolerates both the canonical storage keys and the legacy
// name/photo keys found in older exports.
type rawChecklistItem struct {
	ItemID   string `json:"item_id"`
	Label    string `json:"label"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Comment  string `json:"comment"`
	PhotoURL string `json:"photo_url"`
	Photo    string `json:"photo"`
}

func normalizeItems(raw []byte) ([]models.ChecklistItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rawItems []rawChecklistItem
	if err := json.Unmarshal(raw, &rawItems); err != nil {
		return nil, fmt.Errorf("failed to decode checklist items: %w", err)
	}
	items := make([]models.ChecklistItem, 0, len(rawItems))
	for _, ri := range rawItems {
		item := models.ChecklistItem{
			ItemID:   ri.ItemID,
			Label:    ri.Label,
			Status:   ri.Status,
			Comment:  ri.Comment,
			PhotoURL: ri.PhotoURL,
		}
		if item.Label == "" {
			item.Label = ri.Name
		}
		if item.PhotoURL == "" {
			item.PhotoURL = ri.Photo
		}
		items = append(items, item)
	}
	return items, nil
}

func toModelItems(items []domain.ChecklistItem) []models.ChecklistItem {
	out := make([]models.ChecklistItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.ChecklistItem{
			ItemID:   it.ItemID,
			Label:    it.Label,
			Status:   string(it.Status),
			Comment:  it.Comment,
			PhotoURL: it.PhotoURL,
		})
	}
	return out
}

func toDomainItems(items []models.ChecklistItem) []domain.ChecklistItem {
	out := make([]domain.ChecklistItem, 0, len(items))
	for _, it := range items {
		out = append(out, domain.ChecklistItem{
			ItemID:   it.ItemID,
			Label:    it.Label,
			Status:   domain.ItemStatus(it.Status),
			Comment:  it.Comment,
			PhotoURL: it.PhotoURL,
		})
	}
	return out
}

func toDomainChecklist(m models.Checklist) domain.Checklist {
	return domain.Checklist{
		ChecklistID: m.ChecklistID,
		VehicleID:   m.VehicleID,
		Date:        m.Date,
		Type:        domain.ChecklistType(m.Type),
		Items:       toDomainItems(m.Items),
		Status:      domain.ChecklistStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const checklistColumns = `checklist_id, vehicle_id, date, type, items, status, created_at, created_by, last_updated_at, last_updated_by`

func scanChecklist(row pgx.Row) (*models.Checklist, error) {
	var m models.Checklist
	var rawItems []byte
	err := row.Scan(
		&m.ChecklistID,
		&m.VehicleID,
		&m.Date,
		&m.Type,
		&rawItems,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.Items, err = normalizeItems(rawItems)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveChecklist inserts a new checklist with its items as jsonb.
func (r *PgxChecklistRepository) SaveChecklist(ctx context.Context, checklist domain.Checklist) error {
	itemsJSON, err := json.Marshal(toModelItems(checklist.Items))
	if err != nil {
		return fmt.Errorf("failed to encode checklist items: %w", err)
	}
	query := `
		INSERT INTO checklists (` + checklistColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = r.Pool.Exec(ctx, query,
		checklist.ChecklistID,
		checklist.VehicleID,
		checklist.Date,
		string(checklist.Type),
		itemsJSON,
		string(checklist.Status),
		checklist.CreatedAt,
		checklist.CreatedBy,
		checklist.LastUpdatedAt,
		checklist.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: checklist %s already exists", apperrors.ErrDuplicate, checklist.ChecklistID)
		}
		return fmt.Errorf("failed to save checklist %s: %w", checklist.ChecklistID, err)
	}
	return nil
}

// FindChecklistByID retrieves a checklist by ID.
func (r *PgxChecklistRepository) FindChecklistByID(ctx context.Context, checklistID string) (*domain.Checklist, error) {
	query := `SELECT ` + checklistColumns + ` FROM checklists WHERE checklist_id = $1;`
	m, err := scanChecklist(r.Pool.QueryRow(ctx, query, checklistID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find checklist %s: %w", checklistID, err)
	}
	checklist := toDomainChecklist(*m)
	return &checklist, nil
}

func (r *PgxChecklistRepository) queryChecklists(ctx context.Context, query string, args ...any) ([]domain.Checklist, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query checklists: %w", err)
	}
	defer rows.Close()

	var checklists []domain.Checklist
	for rows.Next() {
		m, err := scanChecklist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checklist row: %w", err)
		}
		checklists = append(checklists, toDomainChecklist(*m))
	}
	return checklists, rows.Err()
}

// ListChecklists retrieves all checklists, most recent first.
func (r *PgxChecklistRepository) ListChecklists(ctx context.Context) ([]domain.Checklist, error) {
	return r.queryChecklists(ctx, `SELECT `+checklistColumns+` FROM checklists ORDER BY date DESC;`)
}

// ListChecklistsByVehicle retrieves a vehicle's checklists, most recent first.
func (r *PgxChecklistRepository) ListChecklistsByVehicle(ctx context.Context, vehicleID string) ([]domain.Checklist, error) {
	return r.queryChecklists(ctx, `SELECT `+checklistColumns+` FROM checklists WHERE vehicle_id = $1 ORDER BY date DESC;`, vehicleID)
}

// UpdateChecklistStatus overwrites the derived status of a checklist.
func (r *PgxChecklistRepository) UpdateChecklistStatus(ctx context.Context, checklistID string, status domain.ChecklistStatus, updatedBy string) error {
	query := `
		UPDATE checklists
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE checklist_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, checklistID, string(status), time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update checklist %s status: %w", checklistID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteChecklist hard-deletes a checklist and its corrective actions.
func (r *PgxChecklistRepository) DeleteChecklist(ctx context.Context, checklistID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM corrective_actions WHERE checklist_id = $1;`, checklistID); err != nil {
		return fmt.Errorf("failed to delete corrective actions of checklist %s: %w", checklistID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM checklists WHERE checklist_id = $1;`, checklistID)
	if err != nil {
		return fmt.Errorf("failed to delete checklist %s: %w", checklistID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}

const correctiveActionColumns = `action_id, checklist_id, item_id, corrected_by, action_taken, verified, verified_by, verified_at, created_at, created_by, last_updated_at, last_updated_by`

func scanCorrectiveAction(row pgx.Row) (*models.CorrectiveAction, error) {
	var m models.CorrectiveAction
	var verifiedBy sql.NullString
	err := row.Scan(
		&m.ActionID,
		&m.ChecklistID,
		&m.ItemID,
		&m.CorrectedBy,
		&m.ActionTaken,
		&m.Verified,
		&verifiedBy,
		&m.VerifiedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.VerifiedBy = fromNullString(verifiedBy)
	return &m, nil
}

func toDomainCorrectiveAction(m models.CorrectiveAction) domain.CorrectiveAction {
	return domain.CorrectiveAction{
		ActionID:    m.ActionID,
		ChecklistID: m.ChecklistID,
		ItemID:      m.ItemID,
		CorrectedBy: m.CorrectedBy,
		ActionTaken: m.ActionTaken,
		Verified:    m.Verified,
		VerifiedBy:  m.VerifiedBy,
		VerifiedAt:  m.VerifiedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveCorrectiveAction inserts a new corrective action.
func (r *PgxChecklistRepository) SaveCorrectiveAction(ctx context.Context, action domain.CorrectiveAction) error {
	query := `
		INSERT INTO corrective_actions (` + correctiveActionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		action.ActionID,
		action.ChecklistID,
		action.ItemID,
		action.CorrectedBy,
		action.ActionTaken,
		action.Verified,
		nullString(action.VerifiedBy),
		action.VerifiedAt,
		action.CreatedAt,
		action.CreatedBy,
		action.LastUpdatedAt,
		action.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save corrective action %s: %w", action.ActionID, err)
	}
	return nil
}

// FindCorrectiveActionByID retrieves a corrective action by ID.
func (r *PgxChecklistRepository) FindCorrectiveActionByID(ctx context.Context, actionID string) (*domain.CorrectiveAction, error) {
	query := `SELECT ` + correctiveActionColumns + ` FROM corrective_actions WHERE action_id = $1;`
	m, err := scanCorrectiveAction(r.Pool.QueryRow(ctx, query, actionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find corrective action %s: %w", actionID, err)
	}
	action := toDomainCorrectiveAction(*m)
	return &action, nil
}

// ListCorrectiveActionsByChecklist retrieves all actions of a checklist in
// creation order.
func (r *PgxChecklistRepository) ListCorrectiveActionsByChecklist(ctx context.Context, checklistID string) ([]domain.CorrectiveAction, error) {
	query := `SELECT ` + correctiveActionColumns + ` FROM corrective_actions WHERE checklist_id = $1 ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, checklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list corrective actions: %w", err)
	}
	defer rows.Close()

	var actions []domain.CorrectiveAction
	for rows.Next() {
		m, err := scanCorrectiveAction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan corrective action row: %w", err)
		}
		actions = append(actions, toDomainCorrectiveAction(*m))
	}
	return actions, rows.Err()
}

// UpdateCorrectiveAction overwrites the verification fields of an action.
func (r *PgxChecklistRepository) UpdateCorrectiveAction(ctx context.Context, action domain.CorrectiveAction) error {
	query := `
		UPDATE corrective_actions
		SET action_taken = $2, verified = $3, verified_by = $4, verified_at = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE action_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		action.ActionID,
		action.ActionTaken,
		action.Verified,
		nullString(action.VerifiedBy),
		action.VerifiedAt,
		action.LastUpdatedAt,
		action.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update corrective action %s: %w", action.ActionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const definitionColumns = `definition_id, type, label, position, created_at, created_by, last_updated_at, last_updated_by`

// ListDefinitionsByType retrieves the checklist template for a type ordered by
// position.
func (r *PgxChecklistRepository) ListDefinitionsByType(ctx context.Context, checklistType domain.ChecklistType) ([]domain.ChecklistDefinition, error) {
	query := `SELECT ` + definitionColumns + ` FROM checklist_definitions WHERE type = $1 ORDER BY position;`
	rows, err := r.Pool.Query(ctx, query, string(checklistType))
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist definitions: %w", err)
	}
	defer rows.Close()

	var definitions []domain.ChecklistDefinition
	for rows.Next() {
		var m models.ChecklistDefinition
		err := rows.Scan(
			&m.DefinitionID,
			&m.Type,
			&m.Label,
			&m.Position,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checklist definition row: %w", err)
		}
		definitions = append(definitions, domain.ChecklistDefinition{
			DefinitionID: m.DefinitionID,
			Type:         domain.ChecklistType(m.Type),
			Label:        m.Label,
			Position:     m.Position,
			AuditFields: domain.AuditFields{
				CreatedAt:     m.CreatedAt,
				CreatedBy:     m.CreatedBy,
				LastUpdatedAt: m.LastUpdatedAt,
				LastUpdatedBy: m.LastUpdatedBy,
			},
		})
	}
	return definitions, rows.Err()
}

// SaveDefinition inserts a new checklist template item.
func (r *PgxChecklistRepository) SaveDefinition(ctx context.Context, definition domain.ChecklistDefinition) error {
	query := `
		INSERT INTO checklist_definitions (` + definitionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		definition.DefinitionID,
		string(definition.Type),
		definition.Label,
		definition.Position,
		definition.CreatedAt,
		definition.CreatedBy,
		definition.LastUpdatedAt,
		definition.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save checklist definition %s: %w", definition.DefinitionID, err)
	}
	return nil
}
