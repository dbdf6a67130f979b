package services

import (
	"strconv"

	"github.com/sanchara/sanchara/pkg/models"
	"github.com/sanchara/sanchara/pkg/repository"
	"github.com/sanchara/sanchara/pkg/schemas"
	"github.com/sanchara/sanchara/pkg/types"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// buildListOptions normalizes raw list parameters into a validated
// ListOptions. Invalid values are rejected with the offending field
// named; absent values take the documented defaults.
func buildListOptions(q *schemas.EventQuery) (repository.ListOptions, *types.AppError) {
	opts := repository.ListOptions{
		Page:      1,
		PageSize:  defaultPageSize,
		SortBy:    repository.SortByStartDate,
		SortOrder: repository.OrderAsc,
	}

	if q.Status != "" {
		if !models.ValidStatus(q.Status) {
			return opts, types.NewValidationError("status", "must be one of planned, in-progress, completed")
		}
		opts.Status = q.Status
	}

	opts.Category = q.Category

	if q.Year != "" {
		year, err := strconv.Atoi(q.Year)
		if err != nil || len(q.Year) != 4 {
			return opts, types.NewValidationError("year", "must be a four-digit year")
		}
		opts.Year = year
	}

	if q.Page != "" {
		page, err := strconv.Atoi(q.Page)
		if err != nil || page < 1 {
			return opts, types.NewValidationError("page", "must be a positive integer")
		}
		opts.Page = page
	}

	if q.PageSize != "" {
		size, err := strconv.Atoi(q.PageSize)
		if err != nil || size < 1 || size > maxPageSize {
			return opts, types.NewValidationError("page_size", "must be between 1 and 100")
		}
		opts.PageSize = size
	}

	switch q.Sort {
	case "", repository.SortByStartDate, repository.SortByPriority, repository.SortByCreatedAt:
		if q.Sort != "" {
			opts.SortBy = q.Sort
		}
	default:
		return opts, types.NewValidationError("sort", "must be one of start_date, priority, created_at")
	}

	switch q.Order {
	case "", repository.OrderAsc, repository.OrderDesc:
		if q.Order != "" {
			opts.SortOrder = q.Order
		}
	default:
		return opts, types.NewValidationError("order", "must be asc or desc")
	}

	return opts, nil
}
