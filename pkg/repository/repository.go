package repository

import (
	"context"
	"time"

	"github.com/sanchara/sanchara/pkg/models"
	"github.com/sanchara/sanchara/pkg/schemas"
)

const (
	SortByStartDate = "start_date"
	SortByPriority  = "priority"
	SortByCreatedAt = "created_at"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ListOptions is a validated, normalized description of the list
// filters, sort and page. It is built once by the event service and
// never mutated afterwards.
type ListOptions struct {
	Status    string
	Category  string
	Year      int
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.PageSize
}

// EventRepository is the storage boundary for events. Every operation
// is scoped to a single user; reads never see soft-deleted records.
// Not-found conditions surface as database.ErrNotFound regardless of
// whether the record is missing, already deleted or owned by another
// user.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	Get(ctx context.Context, userID, id string) (*models.Event, error)
	Update(ctx context.Context, userID, id string, patch *schemas.EventUpdate) (*models.Event, error)
	List(ctx context.Context, userID string, opts ListOptions) ([]models.Event, int64, error)
	Delete(ctx context.Context, userID, id string) error

	OverviewSummary(ctx context.Context, userID string) (*schemas.OverviewSummary, error)
	FinancialSummary(ctx context.Context, userID string, nextYears int) (*schemas.FinancialSummary, error)

	// PurgeDeleted permanently removes records soft-deleted before the
	// cutoff. Only the maintenance job calls this.
	PurgeDeleted(ctx context.Context, cutoff time.Time) (int64, error)
}
