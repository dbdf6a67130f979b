package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sanchara/sanchara/internal/database"
	"github.com/sanchara/sanchara/pkg/models"
	"github.com/sanchara/sanchara/pkg/schemas"
)

// MemoryEventRepository is a map-backed store with the same contract
// as the Postgres repository. It backs the test runtime so no
// database is required.
type MemoryEventRepository struct {
	mu     sync.RWMutex
	events map[string]models.Event
}

func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{events: map[string]models.Event{}}
}

func (r *MemoryEventRepository) Create(_ context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = *event
	return nil
}

func (r *MemoryEventRepository) Get(_ context.Context, userID, id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	event, ok := r.events[id]
	if !ok || event.DeletedAt != nil || event.UserID != userID {
		return nil, database.ErrNotFound
	}
	return &event, nil
}

func (r *MemoryEventRepository) Update(_ context.Context, userID, id string, patch *schemas.EventUpdate) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok || event.DeletedAt != nil || event.UserID != userID {
		return nil, database.ErrNotFound
	}

	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Category != nil {
		event.Category = *patch.Category
	}
	if patch.StartDate != nil {
		event.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		event.EndDate = patch.EndDate
	}
	if patch.Description != nil {
		event.Description = patch.Description
	}
	if patch.Notes != nil {
		event.Notes = patch.Notes
	}
	if patch.Status != nil {
		event.Status = *patch.Status
	}
	if patch.Priority != nil {
		event.Priority = *patch.Priority
		event.PriorityRank = models.PriorityRank(*patch.Priority)
	}
	if patch.TimelinePhase != nil {
		event.TimelinePhase = patch.TimelinePhase
	}
	if patch.IsFinancial != nil {
		event.IsFinancial = *patch.IsFinancial
	}
	if patch.EstimatedCost != nil {
		event.EstimatedCost = patch.EstimatedCost
	}
	if patch.SavingsTarget != nil {
		event.SavingsTarget = patch.SavingsTarget
	}
	if patch.ActualCost != nil {
		event.ActualCost = patch.ActualCost
	}
	if patch.AmountSaved != nil {
		event.AmountSaved = patch.AmountSaved
	}
	if patch.LinkedEventIDs != nil {
		event.LinkedEventIDs = models.LinkedEvents(patch.LinkedEventIDs)
	}
	event.UpdatedAt = time.Now().UTC()

	r.events[id] = event
	return &event, nil
}

func (r *MemoryEventRepository) List(_ context.Context, userID string, opts ListOptions) ([]models.Event, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.collect(userID, func(event models.Event) bool {
		if opts.Status != "" && event.Status != opts.Status {
			return false
		}
		if opts.Category != "" && event.Category != opts.Category {
			return false
		}
		if opts.Year != 0 && event.StartDate.Year() != opts.Year {
			return false
		}
		return true
	})

	sortEvents(matched, opts)

	total := int64(len(matched))
	start := opts.Offset()
	if start >= len(matched) {
		return []models.Event{}, total, nil
	}
	end := start + opts.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// collect returns the user's visible events matching the predicate.
func (r *MemoryEventRepository) collect(userID string, match func(models.Event) bool) []models.Event {
	matched := []models.Event{}
	for _, event := range r.events {
		if event.DeletedAt != nil || event.UserID != userID {
			continue
		}
		if match(event) {
			matched = append(matched, event)
		}
	}
	return matched
}

func sortEvents(events []models.Event, opts ListOptions) {
	desc := strings.EqualFold(opts.SortOrder, OrderDesc)
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if cmp := comparePrimary(a, b, opts.SortBy); cmp != 0 {
			if desc {
				return cmp > 0
			}
			return cmp < 0
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

func comparePrimary(a, b models.Event, sortBy string) int {
	switch sortBy {
	case SortByPriority:
		return a.PriorityRank - b.PriorityRank
	case SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return a.StartDate.Compare(b.StartDate.Time)
	}
}

func (r *MemoryEventRepository) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok || event.DeletedAt != nil || event.UserID != userID {
		return database.ErrNotFound
	}
	now := time.Now().UTC()
	event.DeletedAt = &now
	event.UpdatedAt = now
	r.events[id] = event
	return nil
}

func (r *MemoryEventRepository) OverviewSummary(_ context.Context, userID string) (*schemas.OverviewSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summary := &schemas.OverviewSummary{
		ByStatus:        map[string]int64{},
		ByTimelinePhase: map[string]int64{},
	}
	for _, event := range r.collect(userID, func(models.Event) bool { return true }) {
		summary.TotalEvents++
		summary.ByStatus[event.Status]++
		if event.TimelinePhase != nil && *event.TimelinePhase != "" {
			summary.ByTimelinePhase[*event.TimelinePhase]++
		}
	}
	return summary, nil
}

func (r *MemoryEventRepository) FinancialSummary(_ context.Context, userID string, nextYears int) (*schemas.FinancialSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summary := &schemas.FinancialSummary{NextYears: nextYears}
	today := models.Today()
	horizon := today.AddDate(nextYears, 0, 0)

	for _, event := range r.collect(userID, func(event models.Event) bool { return event.IsFinancial }) {
		target, saved := 0.0, 0.0
		if event.SavingsTarget != nil {
			target = *event.SavingsTarget
		}
		if event.AmountSaved != nil {
			saved = *event.AmountSaved
		}
		summary.TotalSavingsTarget += target
		summary.TotalAmountSaved += saved
		if saved >= target {
			summary.FullyFundedEvents++
		}
		if event.Status != models.StatusCompleted &&
			!event.StartDate.Before(today.Time) && event.StartDate.Before(horizon) {
			summary.UpcomingFinancialEvents++
		}
	}
	return summary, nil
}

func (r *MemoryEventRepository) PurgeDeleted(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var purged int64
	for id, event := range r.events {
		if event.DeletedAt != nil && event.DeletedAt.Before(cutoff) {
			delete(r.events, id)
			purged++
		}
	}
	return purged, nil
}
