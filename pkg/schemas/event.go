package schemas

import (
	"time"

	"github.com/sanchara/sanchara/pkg/models"
)

// EventQuery carries the raw list parameters as received from the
// caller. Values are validated and normalized by the event service
// before they reach storage.
type EventQuery struct {
	Status   string
	Category string
	Year     string
	Page     string
	PageSize string
	Sort     string
	Order    string
}

type EventIn struct {
	Title          string       `json:"title" validate:"required,max=200"`
	Category       string       `json:"category" validate:"max=100"`
	StartDate      models.Date  `json:"start_date" validate:"required"`
	EndDate        *models.Date `json:"end_date"`
	Description    *string      `json:"description" validate:"omitempty,max=2000"`
	Notes          *string      `json:"notes" validate:"omitempty,max=4000"`
	Status         string       `json:"status" validate:"omitempty,oneof=planned in-progress completed"`
	Priority       string       `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	TimelinePhase  *string      `json:"timeline_phase" validate:"omitempty,max=120"`
	IsFinancial    bool         `json:"is_financial"`
	EstimatedCost  *float64     `json:"estimated_cost" validate:"omitempty,gte=0"`
	SavingsTarget  *float64     `json:"savings_target" validate:"omitempty,gte=0"`
	ActualCost     *float64     `json:"actual_cost" validate:"omitempty,gte=0"`
	AmountSaved    *float64     `json:"amount_saved" validate:"omitempty,gte=0"`
	LinkedEventIDs []string     `json:"linked_event_ids"`
}

type EventUpdate struct {
	Title          *string      `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Category       *string      `json:"category,omitempty" validate:"omitempty,max=100"`
	StartDate      *models.Date `json:"start_date,omitempty"`
	EndDate        *models.Date `json:"end_date,omitempty"`
	Description    *string      `json:"description,omitempty" validate:"omitempty,max=2000"`
	Notes          *string      `json:"notes,omitempty" validate:"omitempty,max=4000"`
	Status         *string      `json:"status,omitempty" validate:"omitempty,oneof=planned in-progress completed"`
	Priority       *string      `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	TimelinePhase  *string      `json:"timeline_phase,omitempty" validate:"omitempty,max=120"`
	IsFinancial    *bool        `json:"is_financial,omitempty"`
	EstimatedCost  *float64     `json:"estimated_cost,omitempty" validate:"omitempty,gte=0"`
	SavingsTarget  *float64     `json:"savings_target,omitempty" validate:"omitempty,gte=0"`
	ActualCost     *float64     `json:"actual_cost,omitempty" validate:"omitempty,gte=0"`
	AmountSaved    *float64     `json:"amount_saved,omitempty" validate:"omitempty,gte=0"`
	LinkedEventIDs []string     `json:"linked_event_ids,omitempty"`
}

type EventOut struct {
	ID                 string       `json:"id"`
	UserID             string       `json:"user_id"`
	Title              string       `json:"title"`
	Category           string       `json:"category"`
	StartDate          models.Date  `json:"start_date"`
	EndDate            *models.Date `json:"end_date,omitempty"`
	Description        *string      `json:"description,omitempty"`
	Notes              *string      `json:"notes,omitempty"`
	Status             string       `json:"status"`
	Priority           string       `json:"priority"`
	TimelinePhase      *string      `json:"timeline_phase,omitempty"`
	IsFinancial        bool         `json:"is_financial"`
	EstimatedCost      *float64     `json:"estimated_cost,omitempty"`
	SavingsTarget      *float64     `json:"savings_target,omitempty"`
	ActualCost         *float64     `json:"actual_cost,omitempty"`
	AmountSaved        *float64     `json:"amount_saved,omitempty"`
	LinkedEventIDs     []string     `json:"linked_event_ids"`
	SavingsProgressPct float64      `json:"savings_progress_pct"`
	IsFullyFunded      bool         `json:"is_fully_funded"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

type EventListResponse struct {
	Items    []EventOut `json:"items"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	Total    int64      `json:"total"`
}
