package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrInvalidTimeRange = errors.New("the start time can't be greater or equal to the end time")

// Proposition is a user's self-reported availability window on a given
// date. The user account lives in the auth module; only the foreign key is
// carried here and the database cascades deletion with the user.
type Proposition struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Date      DateOnly  `gorm:"type:date;not null" json:"date"`
	StartTime TimeOfDay `gorm:"type:time;not null" json:"start_time"`
	EndTime   TimeOfDay `gorm:"type:time;not null" json:"end_time"`
	CreatedAt time.Time `gorm:"column:created;autoCreateTime;<-:create" json:"created"`
}

func (Proposition) TableName() string {
	return "scheduler_proposition"
}

// BeforeSave enforces the time ordering rule on every insert and update.
// The migration adds a matching CHECK constraint so rows written through
// other paths cannot violate it either.
func (p *Proposition) BeforeSave(tx *gorm.DB) error {
	if !p.StartTime.Before(p.EndTime) {
		return ErrInvalidTimeRange
	}
	return nil
}

type PaginatedPropositionsResponse struct {
	Data       []Proposition `json:"data"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

type CreatePropositionRequest struct {
	Date      DateOnly  `json:"date" binding:"required"`
	StartTime TimeOfDay `json:"start_time" binding:"required"`
	EndTime   TimeOfDay `json:"end_time" binding:"required"`
}

type UpdatePropositionRequest struct {
	Date      *DateOnly  `json:"date,omitempty"`
	StartTime *TimeOfDay `json:"start_time,omitempty"`
	EndTime   *TimeOfDay `json:"end_time,omitempty"`
}
