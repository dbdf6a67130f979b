package services

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sanchara/sanchara/pkg/repository"
	"github.com/sanchara/sanchara/pkg/schemas"
	"github.com/sanchara/sanchara/pkg/types"
	"go.uber.org/zap"
)

const (
	defaultNextYears = 5
	maxNextYears     = 40
)

// SummaryService produces the cross-cutting rollups. Both operate on
// the full visible event set for a user, never a single page.
type SummaryService struct {
	repo   repository.EventRepository
	logger *zap.SugaredLogger
}

func NewSummaryService(repo repository.EventRepository, logger *zap.SugaredLogger) *SummaryService {
	return &SummaryService{repo: repo, logger: logger}
}

func (ss *SummaryService) Overview(ctx context.Context, userID string) (*schemas.OverviewSummary, *types.AppError) {
	summary, err := ss.repo.OverviewSummary(ctx, userID)
	if err != nil {
		return nil, &types.AppError{Error: err, Code: http.StatusInternalServerError}
	}
	return summary, nil
}

func (ss *SummaryService) Financial(ctx context.Context, userID, nextYearsRaw string) (*schemas.FinancialSummary, *types.AppError) {
	nextYears := defaultNextYears
	if nextYearsRaw != "" {
		parsed, err := strconv.Atoi(nextYearsRaw)
		if err != nil || parsed < 1 || parsed > maxNextYears {
			return nil, types.NewValidationError("next_years", "must be between 1 and 40")
		}
		nextYears = parsed
	}

	summary, err := ss.repo.FinancialSummary(ctx, userID, nextYears)
	if err != nil {
		return nil, &types.AppError{Error: err, Code: http.StatusInternalServerError}
	}
	return summary, nil
}
