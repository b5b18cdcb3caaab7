package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrTeamNameRequired = errors.New("team name is required")
	ErrSkillOutOfRange  = errors.New("skill must be between 1 and 10")
)

type Team struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Skill     *int      `gorm:"check:skill BETWEEN 1 AND 10" json:"skill"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"column:created;autoCreateTime;<-:create" json:"created"`
}

func (Team) TableName() string {
	return "scheduler_team"
}

// BeforeSave rejects invalid field values before any insert or update
// reaches the database.
func (t *Team) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrTeamNameRequired
	}
	if t.Skill != nil && (*t.Skill < 1 || *t.Skill > 10) {
		return ErrSkillOutOfRange
	}
	return nil
}

type PaginatedTeamsResponse struct {
	Data       []Team `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}

type CreateTeamRequest struct {
	Name  string `json:"name" binding:"required"`
	Skill *int   `json:"skill,omitempty" binding:"omitempty,min=1,max=10"`
	Notes string `json:"notes,omitempty"`
}

type UpdateTeamRequest struct {
	Name  *string `json:"name,omitempty"`
	Skill *int    `json:"skill,omitempty" binding:"omitempty,min=1,max=10"`
	Notes *string `json:"notes,omitempty"`
}
