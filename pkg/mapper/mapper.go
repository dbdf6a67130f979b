package mapper

import (
	"github.com/sanchara/sanchara/internal/funding"
	"github.com/sanchara/sanchara/pkg/models"
	"github.com/sanchara/sanchara/pkg/schemas"
)

// ToEventOut shapes a stored event for the API, computing the derived
// funding fields. Derived values are never persisted; they are
// recomputed on every read so they cannot drift from the stored
// amounts.
func ToEventOut(event *models.Event) *schemas.EventOut {
	return &schemas.EventOut{
		ID:                 event.ID,
		UserID:             event.UserID,
		Title:              event.Title,
		Category:           event.Category,
		StartDate:          event.StartDate,
		EndDate:            event.EndDate,
		Description:        event.Description,
		Notes:              event.Notes,
		Status:             event.Status,
		Priority:           event.Priority,
		TimelinePhase:      event.TimelinePhase,
		IsFinancial:        event.IsFinancial,
		EstimatedCost:      event.EstimatedCost,
		SavingsTarget:      event.SavingsTarget,
		ActualCost:         event.ActualCost,
		AmountSaved:        event.AmountSaved,
		LinkedEventIDs:     linkedIDs(event.LinkedEventIDs),
		SavingsProgressPct: funding.Progress(event.IsFinancial, event.SavingsTarget, event.AmountSaved),
		IsFullyFunded:      funding.FullyFunded(event.IsFinancial, event.SavingsTarget, event.AmountSaved),
		CreatedAt:          event.CreatedAt,
		UpdatedAt:          event.UpdatedAt,
	}
}

func linkedIDs(ids models.LinkedEvents) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
