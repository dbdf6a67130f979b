package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sanchara/sanchara/internal/database"
	"github.com/sanchara/sanchara/pkg/models"
	"github.com/stretchr/testify/suite"
)

const testUser = "demo-user"

type MemoryRepositorySuite struct {
	suite.Suite
	repo *MemoryEventRepository
	ctx  context.Context
}

func TestMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositorySuite))
}

func (s *MemoryRepositorySuite) SetupTest() {
	s.repo = NewMemoryEventRepository()
	s.ctx = context.Background()
}

func (s *MemoryRepositorySuite) seed(event models.Event) models.Event {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.UserID == "" {
		event.UserID = testUser
	}
	if event.Status == "" {
		event.Status = models.StatusPlanned
	}
	if event.Priority == "" {
		event.Priority = models.PriorityMedium
	}
	event.PriorityRank = models.PriorityRank(event.Priority)
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	event.UpdatedAt = event.CreatedAt
	s.Require().NoError(s.repo.Create(s.ctx, &event))
	return event
}

func (s *MemoryRepositorySuite) defaultOpts() ListOptions {
	return ListOptions{
		Page:      1,
		PageSize:  10,
		SortBy:    SortByStartDate,
		SortOrder: OrderAsc,
	}
}

func (s *MemoryRepositorySuite) TestGet() {
	event := s.seed(models.Event{Title: "Marriage", StartDate: models.NewDate(2027, time.February, 10)})

	found, err := s.repo.Get(s.ctx, testUser, event.ID)
	s.NoError(err)
	s.Equal(event.ID, found.ID)
	s.Equal("Marriage", found.Title)

	_, err = s.repo.Get(s.ctx, testUser, uuid.NewString())
	s.ErrorIs(err, database.ErrNotFound)

	_, err = s.repo.Get(s.ctx, "other-user", event.ID)
	s.ErrorIs(err, database.ErrNotFound)
}

func (s *MemoryRepositorySuite) TestList_StatusFilter() {
	s.seed(models.Event{Title: "a", StartDate: models.NewDate(2027, 1, 1), Status: models.StatusCompleted})
	s.seed(models.Event{Title: "b", StartDate: models.NewDate(2027, 2, 1), Status: models.StatusPlanned})
	s.seed(models.Event{Title: "c", StartDate: models.NewDate(2027, 3, 1), Status: models.StatusCompleted})

	opts := s.defaultOpts()
	opts.Status = models.StatusCompleted
	events, total, err := s.repo.List(s.ctx, testUser, opts)
	s.NoError(err)
	s.EqualValues(2, total)
	s.Len(events, 2)
	for _, event := range events {
		s.Equal(models.StatusCompleted, event.Status)
	}
}

func (s *MemoryRepositorySuite) TestList_CategoryAndYearFilter() {
	s.seed(models.Event{Title: "a", Category: "finance", StartDate: models.NewDate(2027, 6, 1)})
	s.seed(models.Event{Title: "b", Category: "finance", StartDate: models.NewDate(2028, 6, 1)})
	s.seed(models.Event{Title: "c", Category: "personal", StartDate: models.NewDate(2027, 7, 1)})

	opts := s.defaultOpts()
	opts.Category = "finance"
	opts.Year = 2027
	events, total, err := s.repo.List(s.ctx, testUser, opts)
	s.NoError(err)
	s.EqualValues(1, total)
	s.Require().Len(events, 1)
	s.Equal("a", events[0].Title)
}

func (s *MemoryRepositorySuite) TestList_TotalBeyondLastPage() {
	for i := 0; i < 3; i++ {
		s.seed(models.Event{Title: "x", StartDate: models.NewDate(2027, time.Month(i+1), 1), Status: models.StatusCompleted})
	}

	opts := s.defaultOpts()
	opts.Status = models.StatusCompleted
	opts.Page = 2
	events, total, err := s.repo.List(s.ctx, testUser, opts)
	s.NoError(err)
	s.Empty(events)
	s.EqualValues(3, total)
}

func (s *MemoryRepositorySuite) TestList_PriorityOrder() {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.seed(models.Event{Title: "low", Priority: models.PriorityLow, StartDate: models.NewDate(2027, 1, 1), CreatedAt: base})
	s.seed(models.Event{Title: "critical", Priority: models.PriorityCritical, StartDate: models.NewDate(2027, 1, 2), CreatedAt: base.Add(time.Second)})
	s.seed(models.Event{Title: "medium", Priority: models.PriorityMedium, StartDate: models.NewDate(2027, 1, 3), CreatedAt: base.Add(2 * time.Second)})
	s.seed(models.Event{Title: "high", Priority: models.PriorityHigh, StartDate: models.NewDate(2027, 1, 4), CreatedAt: base.Add(3 * time.Second)})

	opts := s.defaultOpts()
	opts.SortBy = SortByPriority
	opts.SortOrder = OrderDesc
	events, _, err := s.repo.List(s.ctx, testUser, opts)
	s.NoError(err)
	s.Require().Len(events, 4)
	s.Equal([]string{"critical", "high", "medium", "low"}, titles(events))

	opts.SortOrder = OrderAsc
	events, _, err = s.repo.List(s.ctx, testUser, opts)
	s.NoError(err)
	s.Equal([]string{"low", "medium", "high", "critical"}, titles(events))
}

func (s *MemoryRepositorySuite) TestList_StableTieBreak() {
	sameDay := models.NewDate(2027, 5, 1)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.seed(models.Event{ID: "id-c", Title: "third", StartDate: sameDay, CreatedAt: base.Add(time.Minute)})
	s.seed(models.Event{ID: "id-b", Title: "second", StartDate: sameDay, CreatedAt: base})
	s.seed(models.Event{ID: "id-a", Title: "first", StartDate: sameDay, CreatedAt: base})

	opts := s.defaultOpts()
	first, _, err := s.repo.List(s.ctx, testUser, opts)
	s.NoError(err)
	s.Equal([]string{"first", "second", "third"}, titles(first))

	for i := 0; i < 5; i++ {
		again, _, err := s.repo.List(s.ctx, testUser, opts)
		s.NoError(err)
		s.Equal(titles(first), titles(again))
	}
}

func (s *MemoryRepositorySuite) TestList_PaginationBoundaries() {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		s.seed(models.Event{
			Title:     "event",
			StartDate: models.NewDate(2027, 1, 1),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}

	opts := s.defaultOpts()
	page1, total, err := s.repo.List(s.ctx, testUser, opts)
	s.NoError(err)
	s.EqualValues(15, total)
	s.Len(page1, 10)

	opts.Page = 2
	page2, total, err := s.repo.List(s.ctx, testUser, opts)
	s.NoError(err)
	s.EqualValues(15, total)
	s.Len(page2, 5)

	seen := map[string]bool{}
	for _, event := range append(page1, page2...) {
		s.False(seen[event.ID], "event %s appeared on both pages", event.ID)
		seen[event.ID] = true
	}
}

func (s *MemoryRepositorySuite) TestList_UserScoped() {
	s.seed(models.Event{Title: "mine", StartDate: models.NewDate(2027, 1, 1)})
	s.seed(models.Event{Title: "theirs", UserID: "other-user", StartDate: models.NewDate(2027, 1, 1)})

	events, total, err := s.repo.List(s.ctx, testUser, s.defaultOpts())
	s.NoError(err)
	s.EqualValues(1, total)
	s.Require().Len(events, 1)
	s.Equal("mine", events[0].Title)
}

func (s *MemoryRepositorySuite) TestDelete() {
	event := s.seed(models.Event{Title: "gone", StartDate: models.NewDate(2027, 1, 1)})

	s.NoError(s.repo.Delete(s.ctx, testUser, event.ID))

	events, total, err := s.repo.List(s.ctx, testUser, s.defaultOpts())
	s.NoError(err)
	s.Empty(events)
	s.EqualValues(0, total)

	// Deleting again is indistinguishable from a missing record.
	s.ErrorIs(s.repo.Delete(s.ctx, testUser, event.ID), database.ErrNotFound)
	s.ErrorIs(s.repo.Delete(s.ctx, testUser, uuid.NewString()), database.ErrNotFound)
	s.ErrorIs(s.repo.Delete(s.ctx, "other-user", event.ID), database.ErrNotFound)
}

func (s *MemoryRepositorySuite) TestOverviewSummary() {
	phase := "marriage-phase"
	s.seed(models.Event{Title: "a", StartDate: models.NewDate(2027, 1, 1), Status: models.StatusPlanned, TimelinePhase: &phase})
	s.seed(models.Event{Title: "b", StartDate: models.NewDate(2027, 2, 1), Status: models.StatusPlanned})
	s.seed(models.Event{Title: "c", StartDate: models.NewDate(2027, 3, 1), Status: models.StatusCompleted})
	deleted := s.seed(models.Event{Title: "d", StartDate: models.NewDate(2027, 4, 1)})
	s.Require().NoError(s.repo.Delete(s.ctx, testUser, deleted.ID))

	summary, err := s.repo.OverviewSummary(s.ctx, testUser)
	s.NoError(err)
	s.EqualValues(3, summary.TotalEvents)
	s.EqualValues(2, summary.ByStatus[models.StatusPlanned])
	s.EqualValues(1, summary.ByStatus[models.StatusCompleted])
	s.NotContains(summary.ByStatus, models.StatusInProgress)
	s.Equal(map[string]int64{phase: 1}, summary.ByTimelinePhase)
}

func (s *MemoryRepositorySuite) TestFinancialSummary() {
	target, saved := 1000.0, 250.0
	today := models.Today()
	s.seed(models.Event{
		Title:         "A",
		StartDate:     models.Date{Time: today.AddDate(0, 1, 0)},
		IsFinancial:   true,
		SavingsTarget: &target,
		AmountSaved:   &saved,
	})
	s.seed(models.Event{Title: "B", StartDate: models.Date{Time: today.AddDate(1, 0, 0)}})

	summary, err := s.repo.FinancialSummary(s.ctx, testUser, 5)
	s.NoError(err)
	s.Equal(1000.0, summary.TotalSavingsTarget)
	s.Equal(250.0, summary.TotalAmountSaved)
	s.EqualValues(0, summary.FullyFundedEvents)
	s.EqualValues(1, summary.UpcomingFinancialEvents)
	s.Equal(5, summary.NextYears)
}

func (s *MemoryRepositorySuite) TestFinancialSummary_UpcomingWindow() {
	target := 100.0
	today := models.Today()
	// Inside the window but already completed.
	s.seed(models.Event{
		Title: "done", StartDate: models.Date{Time: today.AddDate(0, 2, 0)},
		Status: models.StatusCompleted, IsFinancial: true, SavingsTarget: &target,
	})
	// Beyond the horizon.
	s.seed(models.Event{
		Title: "far", StartDate: models.Date{Time: today.AddDate(6, 0, 0)},
		IsFinancial: true, SavingsTarget: &target,
	})
	// Inside the window.
	s.seed(models.Event{
		Title: "soon", StartDate: models.Date{Time: today.AddDate(1, 0, 0)},
		IsFinancial: true, SavingsTarget: &target,
	})

	summary, err := s.repo.FinancialSummary(s.ctx, testUser, 5)
	s.NoError(err)
	s.EqualValues(1, summary.UpcomingFinancialEvents)
}

func (s *MemoryRepositorySuite) TestPurgeDeleted() {
	old := s.seed(models.Event{Title: "old", StartDate: models.NewDate(2020, 1, 1)})
	fresh := s.seed(models.Event{Title: "fresh", StartDate: models.NewDate(2020, 1, 1)})
	s.Require().NoError(s.repo.Delete(s.ctx, testUser, old.ID))

	past := time.Now().UTC().Add(-time.Hour)
	oldEvent := s.repo.events[old.ID]
	oldEvent.DeletedAt = &past
	s.repo.events[old.ID] = oldEvent

	purged, err := s.repo.PurgeDeleted(s.ctx, time.Now().UTC().Add(-time.Minute))
	s.NoError(err)
	s.EqualValues(1, purged)
	s.NotContains(s.repo.events, old.ID)
	s.Contains(s.repo.events, fresh.ID)
}

func titles(events []models.Event) []string {
	out := make([]string, 0, len(events))
	for _, event := range events {
		out = append(out, event.Title)
	}
	return out
}
