package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	StatusPlanned    = "planned"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

var priorityRanks = map[string]int{
	PriorityLow:      1,
	PriorityMedium:   2,
	PriorityHigh:     3,
	PriorityCritical: 4,
}

// PriorityRank maps a priority to its sort rank. Unknown values fall
// back to the medium rank.
func PriorityRank(priority string) int {
	if rank, ok := priorityRanks[priority]; ok {
		return rank
	}
	return priorityRanks[PriorityMedium]
}

func ValidStatus(status string) bool {
	return status == StatusPlanned || status == StatusInProgress || status == StatusCompleted
}

func ValidPriority(priority string) bool {
	_, ok := priorityRanks[priority]
	return ok
}

type Event struct {
	ID             string       `gorm:"type:uuid;primaryKey"`
	UserID         string       `gorm:"type:text;not null;index"`
	Title          string       `gorm:"type:text;not null"`
	Category       string       `gorm:"type:text;not null;default:general;index"`
	StartDate      Date         `gorm:"type:date;not null;index"`
	EndDate        *Date        `gorm:"type:date"`
	Description    *string      `gorm:"type:text"`
	Notes          *string      `gorm:"type:text"`
	Status         string       `gorm:"type:text;not null;default:planned;index"`
	Priority       string       `gorm:"type:text;not null;default:medium"`
	PriorityRank   int          `gorm:"type:smallint;not null;default:2"`
	TimelinePhase  *string      `gorm:"type:text;index"`
	IsFinancial    bool         `gorm:"not null;default:false"`
	EstimatedCost  *float64     `gorm:"type:numeric"`
	SavingsTarget  *float64     `gorm:"type:numeric"`
	ActualCost     *float64     `gorm:"type:numeric"`
	AmountSaved    *float64     `gorm:"type:numeric"`
	LinkedEventIDs LinkedEvents `gorm:"type:jsonb"`
	CreatedAt      time.Time    `gorm:"default:timezone('utc'::text, now())"`
	UpdatedAt      time.Time    `gorm:"default:timezone('utc'::text, now())"`
	DeletedAt      *time.Time   `gorm:"index"`
}

type LinkedEvents []string

func (l LinkedEvents) Value() (driver.Value, error) {
	if l == nil {
		l = LinkedEvents{}
	}
	return json.Marshal(l)
}

func (l *LinkedEvents) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("cannot scan %T into LinkedEvents", value)
}
