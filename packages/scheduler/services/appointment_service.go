package services

import (
	"errors"

	"scheduler/models"

	"gorm.io/gorm"
)

type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{
		db: db,
	}
}

func (s *AppointmentService) GetAppointmentByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment

	result := s.db.Preload("Match").First(&appointment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("appointment not found")
		}
		return nil, result.Error
	}

	return &appointment, nil
}

func (s *AppointmentService) GetAppointmentByMatch(matchID uint) (*models.Appointment, error) {
	var appointment models.Appointment

	result := s.db.Preload("Match").Where("match_id = ?", matchID).First(&appointment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("appointment not found")
		}
		return nil, result.Error
	}

	return &appointment, nil
}

// Reschedule sets or clears the concrete calendar slot.
func (s *AppointmentService) Reschedule(id uint, req models.RescheduleAppointmentRequest) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("appointment not found")
		}
		return nil, err
	}

	appointment.MatchDate = req.MatchDate

	if err := s.db.Save(&appointment).Error; err != nil {
		return nil, err
	}

	return s.GetAppointmentByID(id)
}

// GetAllAppointments lists calendar slots, most recently scheduled first.
// Unscheduled slots sort last; ties fall back to the match's default date.
func (s *AppointmentService) GetAllAppointments(page int, pageSize int) (*models.PaginatedAppointmentsResponse, error) {
	var appointments []models.Appointment
	var total int64

	if err := s.db.Model(&models.Appointment{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := s.db.Preload("Match").
		Joins("JOIN scheduler_match ON scheduler_match.id = scheduler_appointment.match_id").
		Order("scheduler_appointment.match_date DESC NULLS LAST, scheduler_match.default_match_date DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&appointments).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedAppointmentsResponse{
		Data:       appointments,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
