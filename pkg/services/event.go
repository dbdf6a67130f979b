package services

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sanchara/sanchara/internal/database"
	"github.com/sanchara/sanchara/pkg/mapper"
	"github.com/sanchara/sanchara/pkg/models"
	"github.com/sanchara/sanchara/pkg/repository"
	"github.com/sanchara/sanchara/pkg/schemas"
	"github.com/sanchara/sanchara/pkg/types"
	"go.uber.org/zap"
)

var errEventNotFound = errors.New("event not found")

type EventService struct {
	repo     repository.EventRepository
	logger   *zap.SugaredLogger
	validate *validator.Validate
}

func NewEventService(repo repository.EventRepository, logger *zap.SugaredLogger) *EventService {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &EventService{repo: repo, logger: logger, validate: validate}
}

func (es *EventService) ListEvents(ctx context.Context, userID string, q *schemas.EventQuery) (*schemas.EventListResponse, *types.AppError) {
	opts, apperr := buildListOptions(q)
	if apperr != nil {
		return nil, apperr
	}

	events, total, err := es.repo.List(ctx, userID, opts)
	if err != nil {
		return nil, &types.AppError{Error: err, Code: http.StatusInternalServerError}
	}

	items := make([]schemas.EventOut, 0, len(events))
	for i := range events {
		items = append(items, *mapper.ToEventOut(&events[i]))
	}
	return &schemas.EventListResponse{
		Items:    items,
		Page:     opts.Page,
		PageSize: opts.PageSize,
		Total:    total,
	}, nil
}

func (es *EventService) CreateEvent(ctx context.Context, userID string, payload *schemas.EventIn) (*schemas.EventOut, *types.AppError) {
	if apperr := es.validateStruct(payload); apperr != nil {
		return nil, apperr
	}

	status := payload.Status
	if status == "" {
		status = models.StatusPlanned
	}
	priority := payload.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	if apperr := validateDateOrder(payload.StartDate, payload.EndDate); apperr != nil {
		return nil, apperr
	}
	if apperr := validateFinancial(payload.IsFinancial, payload.SavingsTarget); apperr != nil {
		return nil, apperr
	}
	if apperr := validateCompletionTiming(status, payload.StartDate, payload.EndDate); apperr != nil {
		return nil, apperr
	}

	now := time.Now().UTC()
	event := &models.Event{
		ID:             uuid.NewString(),
		UserID:         userID,
		Title:          payload.Title,
		Category:       normalizeCategory(payload.Category),
		StartDate:      payload.StartDate,
		EndDate:        payload.EndDate,
		Description:    payload.Description,
		Notes:          payload.Notes,
		Status:         status,
		Priority:       priority,
		PriorityRank:   models.PriorityRank(priority),
		TimelinePhase:  payload.TimelinePhase,
		IsFinancial:    payload.IsFinancial,
		EstimatedCost:  payload.EstimatedCost,
		SavingsTarget:  payload.SavingsTarget,
		ActualCost:     payload.ActualCost,
		AmountSaved:    payload.AmountSaved,
		LinkedEventIDs: models.LinkedEvents(payload.LinkedEventIDs),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := es.repo.Create(ctx, event); err != nil {
		if database.IsKeyConflictErr(err) {
			return nil, &types.AppError{Error: database.ErrKeyConflict, Code: http.StatusConflict}
		}
		return nil, &types.AppError{Error: err, Code: http.StatusInternalServerError}
	}

	es.logger.Infow("event created", "id", event.ID, "user", userID)
	return mapper.ToEventOut(event), nil
}

func (es *EventService) GetEvent(ctx context.Context, userID, id string) (*schemas.EventOut, *types.AppError) {
	event, err := es.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, storageError(err)
	}
	return mapper.ToEventOut(event), nil
}

func (es *EventService) UpdateEvent(ctx context.Context, userID, id string, patch *schemas.EventUpdate) (*schemas.EventOut, *types.AppError) {
	existing, err := es.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, storageError(err)
	}

	if apperr := es.validateStruct(patch); apperr != nil {
		return nil, apperr
	}
	if patch.Category != nil {
		normalized := normalizeCategory(*patch.Category)
		patch.Category = &normalized
	}

	// Invariants hold on the merged record, not just the patch.
	nextStart := existing.StartDate
	if patch.StartDate != nil {
		nextStart = *patch.StartDate
	}
	nextEnd := existing.EndDate
	if patch.EndDate != nil {
		nextEnd = patch.EndDate
	}
	nextStatus := existing.Status
	if patch.Status != nil {
		nextStatus = *patch.Status
	}
	nextFinancial := existing.IsFinancial
	if patch.IsFinancial != nil {
		nextFinancial = *patch.IsFinancial
	}
	nextTarget := existing.SavingsTarget
	if patch.SavingsTarget != nil {
		nextTarget = patch.SavingsTarget
	}

	if apperr := validateDateOrder(nextStart, nextEnd); apperr != nil {
		return nil, apperr
	}
	if apperr := validateFinancial(nextFinancial, nextTarget); apperr != nil {
		return nil, apperr
	}
	if apperr := validateCompletionTiming(nextStatus, nextStart, nextEnd); apperr != nil {
		return nil, apperr
	}

	updated, err := es.repo.Update(ctx, userID, id, patch)
	if err != nil {
		return nil, storageError(err)
	}
	return mapper.ToEventOut(updated), nil
}

func (es *EventService) DeleteEvent(ctx context.Context, userID, id string) *types.AppError {
	if err := es.repo.Delete(ctx, userID, id); err != nil {
		return storageError(err)
	}
	es.logger.Infow("event deleted", "id", id, "user", userID)
	return nil
}

func (es *EventService) validateStruct(payload interface{}) *types.AppError {
	err := es.validate.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return types.NewValidationError(fe.Field(), validationMessage(fe))
	}
	return &types.AppError{Error: err, Code: http.StatusBadRequest}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "must not be negative"
	case "min":
		return "must not be empty"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return "general"
	}
	return category
}

func validateDateOrder(start models.Date, end *models.Date) *types.AppError {
	if end != nil && end.Before(start.Time) {
		return types.NewValidationError("end_date", "cannot be earlier than start_date")
	}
	return nil
}

func validateFinancial(isFinancial bool, savingsTarget *float64) *types.AppError {
	if isFinancial && savingsTarget == nil {
		return types.NewValidationError("savings_target", "required for financial events")
	}
	return nil
}

func validateCompletionTiming(status string, start models.Date, end *models.Date) *types.AppError {
	if status != models.StatusCompleted {
		return nil
	}
	effective := start
	if end != nil {
		effective = *end
	}
	if effective.After(models.Today().Time) {
		return types.NewValidationError("status", "completed events cannot have a future start/end date")
	}
	return nil
}

func storageError(err error) *types.AppError {
	if database.IsRecordNotFoundErr(err) {
		return &types.AppError{Error: errEventNotFound, Code: http.StatusNotFound}
	}
	return &types.AppError{Error: err, Code: http.StatusInternalServerError}
}
