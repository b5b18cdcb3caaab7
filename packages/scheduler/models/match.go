package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrMatchTitleRequired = errors.New("match title is required")
	ErrMatchDateRequired  = errors.New("default match date is required")
	ErrNegativeScore      = errors.New("scores cannot be negative")
)

type Match struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	OpponentID       *uint     `json:"opponent_id"`
	ScoreOpponent    *int      `gorm:"check:score_opponent >= 0" json:"score_opponent"`
	Score            *int      `gorm:"check:score >= 0" json:"score"`
	DefaultMatchDate time.Time `gorm:"not null" json:"default_match_date"`
	CreatedAt        time.Time `gorm:"column:created;autoCreateTime;<-:create" json:"created"`

	// Relationships
	Opponent    *Team        `gorm:"foreignKey:OpponentID;references:ID;constraint:OnDelete:SET NULL" json:"opponent,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:MatchID;references:ID;constraint:OnDelete:CASCADE" json:"appointment,omitempty"`
}

func (Match) TableName() string {
	return "scheduler_match"
}

// BeforeSave rejects invalid field values before any insert or update
// reaches the database.
func (m *Match) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrMatchTitleRequired
	}
	if m.DefaultMatchDate.IsZero() {
		return ErrMatchDateRequired
	}
	if (m.Score != nil && *m.Score < 0) || (m.ScoreOpponent != nil && *m.ScoreOpponent < 0) {
		return ErrNegativeScore
	}
	return nil
}

type PaginatedMatchesResponse struct {
	Data       []Match `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalPages int     `json:"totalPages"`
}

type CreateMatchRequest struct {
	Title            string    `json:"title" binding:"required"`
	OpponentID       *uint     `json:"opponent_id,omitempty"`
	ScoreOpponent    *int      `json:"score_opponent,omitempty" binding:"omitempty,gte=0"`
	Score            *int      `json:"score,omitempty" binding:"omitempty,gte=0"`
	DefaultMatchDate time.Time `json:"default_match_date" binding:"required"`
}

// UpdateMatchRequest carries partial updates. An absent opponent_id leaves
// the opponent untouched; opponent_id 0 clears it.
type UpdateMatchRequest struct {
	Title            *string    `json:"title,omitempty"`
	OpponentID       *uint      `json:"opponent_id,omitempty"`
	ScoreOpponent    *int       `json:"score_opponent,omitempty" binding:"omitempty,gte=0"`
	Score            *int       `json:"score,omitempty" binding:"omitempty,gte=0"`
	DefaultMatchDate *time.Time `json:"default_match_date,omitempty"`
}
