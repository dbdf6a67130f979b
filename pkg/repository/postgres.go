package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sanchara/sanchara/internal/database"
	"github.com/sanchara/sanchara/pkg/models"
	"github.com/sanchara/sanchara/pkg/schemas"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresEventRepository struct {
	db *gorm.DB
}

func NewPostgresEventRepository(db *gorm.DB) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

// visible is the single scope helper shared by every read path: owner
// match plus the soft-delete predicate.
func (r *PostgresEventRepository) visible(ctx context.Context, userID string) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Event{}).
		Where("user_id = ?", userID).
		Where("deleted_at IS NULL")
}

func (r *PostgresEventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *PostgresEventRepository) Get(ctx context.Context, userID, id string) (*models.Event, error) {
	var event models.Event
	if err := r.visible(ctx, userID).Where("id = ?", id).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *PostgresEventRepository) Update(ctx context.Context, userID, id string, patch *schemas.EventUpdate) (*models.Event, error) {
	updates := patchUpdates(patch)
	updates["updated_at"] = time.Now().UTC()

	var events []models.Event
	chain := r.db.WithContext(ctx).Model(&events).Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).
		Updates(updates)
	if chain.Error != nil {
		return nil, chain.Error
	}
	if chain.RowsAffected == 0 {
		return nil, database.ErrNotFound
	}
	return &events[0], nil
}

func patchUpdates(patch *schemas.EventUpdate) map[string]interface{} {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.StartDate != nil {
		updates["start_date"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		updates["end_date"] = *patch.EndDate
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Priority != nil {
		updates["priority"] = *patch.Priority
		updates["priority_rank"] = models.PriorityRank(*patch.Priority)
	}
	if patch.TimelinePhase != nil {
		updates["timeline_phase"] = *patch.TimelinePhase
	}
	if patch.IsFinancial != nil {
		updates["is_financial"] = *patch.IsFinancial
	}
	if patch.EstimatedCost != nil {
		updates["estimated_cost"] = *patch.EstimatedCost
	}
	if patch.SavingsTarget != nil {
		updates["savings_target"] = *patch.SavingsTarget
	}
	if patch.ActualCost != nil {
		updates["actual_cost"] = *patch.ActualCost
	}
	if patch.AmountSaved != nil {
		updates["amount_saved"] = *patch.AmountSaved
	}
	if patch.LinkedEventIDs != nil {
		updates["linked_event_ids"] = models.LinkedEvents(patch.LinkedEventIDs)
	}
	return updates
}

func (r *PostgresEventRepository) List(ctx context.Context, userID string, opts ListOptions) ([]models.Event, int64, error) {
	var total int64
	if err := r.listQuery(ctx, userID, opts).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	err := r.listQuery(ctx, userID, opts).
		Order(sortClause(opts)).
		Offset(opts.Offset()).
		Limit(opts.PageSize).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *PostgresEventRepository) listQuery(ctx context.Context, userID string, opts ListOptions) *gorm.DB {
	query := r.visible(ctx, userID)
	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}
	if opts.Category != "" {
		query = query.Where("category = ?", opts.Category)
	}
	if opts.Year != 0 {
		from := models.NewDate(opts.Year, time.January, 1)
		query = query.Where("start_date >= ? AND start_date < ?", from, models.NewDate(opts.Year+1, time.January, 1))
	}
	return query
}

// sortClause builds the composite order: the requested key first, then
// created_at and id so that repeated queries and page boundaries stay
// stable. Priority sorts by its stored rank, not alphabetically.
func sortClause(opts ListOptions) string {
	column := opts.SortBy
	if column == SortByPriority {
		column = "priority_rank"
	}
	dir := strings.ToUpper(opts.SortOrder)
	if column == SortByCreatedAt {
		return fmt.Sprintf("created_at %s, id ASC", dir)
	}
	return fmt.Sprintf("%s %s, created_at ASC, id ASC", column, dir)
}

func (r *PostgresEventRepository) Delete(ctx context.Context, userID, id string) error {
	now := time.Now().UTC()
	chain := r.db.WithContext(ctx).Model(&models.Event{}).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).
		Updates(map[string]interface{}{"deleted_at": now, "updated_at": now})
	if chain.Error != nil {
		return chain.Error
	}
	if chain.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *PostgresEventRepository) OverviewSummary(ctx context.Context, userID string) (*schemas.OverviewSummary, error) {
	var total int64
	if err := r.visible(ctx, userID).Count(&total).Error; err != nil {
		return nil, err
	}

	type groupRow struct {
		Name  string
		Total int64
	}

	var statusRows []groupRow
	err := r.visible(ctx, userID).
		Select("status AS name, COUNT(*) AS total").
		Group("status").
		Scan(&statusRows).Error
	if err != nil {
		return nil, err
	}

	var phaseRows []groupRow
	err = r.visible(ctx, userID).
		Where("timeline_phase IS NOT NULL AND timeline_phase <> ''").
		Select("timeline_phase AS name, COUNT(*) AS total").
		Group("timeline_phase").
		Scan(&phaseRows).Error
	if err != nil {
		return nil, err
	}

	summary := &schemas.OverviewSummary{
		TotalEvents:     total,
		ByStatus:        map[string]int64{},
		ByTimelinePhase: map[string]int64{},
	}
	for _, row := range statusRows {
		summary.ByStatus[row.Name] = row.Total
	}
	for _, row := range phaseRows {
		summary.ByTimelinePhase[row.Name] = row.Total
	}
	return summary, nil
}

func (r *PostgresEventRepository) FinancialSummary(ctx context.Context, userID string, nextYears int) (*schemas.FinancialSummary, error) {
	var agg struct {
		TargetSum   float64
		SavedSum    float64
		FullyFunded int64
	}
	err := r.visible(ctx, userID).
		Where("is_financial = ?", true).
		Select("COALESCE(SUM(savings_target), 0) AS target_sum",
			"COALESCE(SUM(amount_saved), 0) AS saved_sum",
			"COUNT(*) FILTER (WHERE COALESCE(amount_saved, 0) >= COALESCE(savings_target, 0)) AS fully_funded").
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}

	today := models.Today()
	var upcoming int64
	err = r.visible(ctx, userID).
		Where("is_financial = ?", true).
		Where("status <> ?", models.StatusCompleted).
		Where("start_date >= ? AND start_date < ?", today, models.Date{Time: today.AddDate(nextYears, 0, 0)}).
		Count(&upcoming).Error
	if err != nil {
		return nil, err
	}

	return &schemas.FinancialSummary{
		TotalSavingsTarget:      agg.TargetSum,
		TotalAmountSaved:        agg.SavedSum,
		FullyFundedEvents:       agg.FullyFunded,
		UpcomingFinancialEvents: upcoming,
		NextYears:               nextYears,
	}, nil
}

func (r *PostgresEventRepository) PurgeDeleted(ctx context.Context, cutoff time.Time) (int64, error) {
	chain := r.db.WithContext(ctx).
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.Event{})
	return chain.RowsAffected, chain.Error
}
