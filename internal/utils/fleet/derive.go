// Package fleet holds the pure derivations over fleet entities: checklist
// status classification, the unified maintenance alert feed and driver license
// status.
package fleet

import (
	"fmt"
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
)

// oilChangeAttentionKm is the remaining-km window that raises an ATTENTION
// alert. The boundary is exclusive: exactly this many km left raises nothing.
const oilChangeAttentionKm = 5000

// DeriveChecklistStatus classifies a checklist against its corrective actions.
// No PROBLEM items means OK. Otherwise: every PROBLEM item verified means OK,
// every PROBLEM item with at least one action means CORRECTED, and any PROBLEM
// item with no action at all forces PROBLEM.
func DeriveChecklistStatus(checklist domain.Checklist, actions []domain.CorrectiveAction) domain.ChecklistStatus {
	actionsByItem := make(map[string][]domain.CorrectiveAction)
	for _, a := range actions {
		if a.ChecklistID == checklist.ChecklistID {
			actionsByItem[a.ItemID] = append(actionsByItem[a.ItemID], a)
		}
	}

	hasProblem := false
	allVerified := true
	allCorrected := true
	for _, item := range checklist.Items {
		if item.Status != domain.ItemProblem {
			continue
		}
		hasProblem = true

		itemActions := actionsByItem[item.ItemID]
		if len(itemActions) == 0 {
			allCorrected = false
			allVerified = false
			continue
		}
		verified := false
		for _, a := range itemActions {
			if a.Verified {
				verified = true
				break
			}
		}
		if !verified {
			allVerified = false
		}
	}

	switch {
	case !hasProblem:
		return domain.ChecklistOK
	case !allCorrected:
		return domain.ChecklistProblem
	case allVerified:
		return domain.ChecklistOK
	default:
		return domain.ChecklistCorrected
	}
}

// BuildAlerts merges oil-change alerts for trucks with pending maintenance
// task alerts into one feed, URGENT entries first. The relative input order is
// preserved within each severity.
func BuildAlerts(vehicles []domain.Vehicle, tasks []domain.MaintenanceTask) []domain.Alert {
	var urgent, attention []domain.Alert

	for _, v := range vehicles {
		if !v.IsTruck() {
			continue
		}
		remaining := v.NextOilChangeKm - v.CurrentKm
		switch {
		case remaining <= 0:
			urgent = append(urgent, domain.Alert{
				Severity:    domain.AlertUrgent,
				Source:      domain.AlertOilChange,
				VehicleID:   v.VehicleID,
				Message:     fmt.Sprintf("Troca de óleo vencida para %s", v.Plate),
				RemainingKm: remaining,
			})
		case remaining < oilChangeAttentionKm:
			attention = append(attention, domain.Alert{
				Severity:    domain.AlertAttention,
				Source:      domain.AlertOilChange,
				VehicleID:   v.VehicleID,
				Message:     fmt.Sprintf("Troca de óleo em %d km para %s", remaining, v.Plate),
				RemainingKm: remaining,
			})
		}
	}

	for _, t := range tasks {
		if t.Status != domain.TaskPending {
			continue
		}
		alert := domain.Alert{
			Source:    domain.AlertTask,
			VehicleID: t.VehicleID,
			TaskID:    t.TaskID,
			Message:   t.Description,
		}
		if t.Priority == domain.PriorityHigh {
			alert.Severity = domain.AlertUrgent
			urgent = append(urgent, alert)
		} else {
			alert.Severity = domain.AlertAttention
			attention = append(attention, alert)
		}
	}

	return append(urgent, attention...)
}

// LicenseStatus classifies a driver's CNH expiration against now: expired,
// expiring within 30 days, or valid.
func LicenseStatus(driver domain.Driver, now time.Time) domain.LicenseStatus {
	if driver.CNHExpiration.Before(now) {
		return domain.LicenseExpired
	}
	if driver.CNHExpiration.Before(now.AddDate(0, 0, 30)) {
		return domain.LicenseExpiringSoon
	}
	return domain.LicenseValid
}
