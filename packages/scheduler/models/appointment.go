package models

import "time"

// Appointment is the concrete calendar slot for a match, distinct from the
// match's own default date. Exactly one exists per match; its lifecycle is
// owned by the match (created alongside it, removed with it).
type Appointment struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchDate *time.Time `json:"match_date"`
	MatchID   uint       `gorm:"uniqueIndex;not null" json:"match_id"`
	CreatedAt time.Time  `gorm:"column:created;autoCreateTime;<-:create" json:"created"`

	// Relationships
	Match *Match `gorm:"foreignKey:MatchID;references:ID" json:"match,omitempty"`
}

func (Appointment) TableName() string {
	return "scheduler_appointment"
}

type PaginatedAppointmentsResponse struct {
	Data       []Appointment `json:"data"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// RescheduleAppointmentRequest sets or clears the concrete slot. A null
// match_date puts the appointment back into the unscheduled state.
type RescheduleAppointmentRequest struct {
	MatchDate *time.Time `json:"match_date"`
}
