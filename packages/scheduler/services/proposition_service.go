package services

import (
	"errors"
	"time"

	"scheduler/models"

	"gorm.io/gorm"
)

type PropositionService struct {
	db *gorm.DB
}

func NewPropositionService(db *gorm.DB) *PropositionService {
	return &PropositionService{
		db: db,
	}
}

func (s *PropositionService) CreateProposition(userID uint, req models.CreatePropositionRequest) (*models.Proposition, error) {
	proposition := &models.Proposition{
		UserID:    userID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := s.db.Create(proposition).Error; err != nil {
		return nil, err
	}

	return proposition, nil
}

func (s *PropositionService) GetPropositionByID(id uint) (*models.Proposition, error) {
	var proposition models.Proposition

	result := s.db.First(&proposition, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("proposition not found")
		}
		return nil, result.Error
	}

	return &proposition, nil
}

// UpdateProposition modifies a window. Only the owner (or an admin) may
// touch it; the time ordering rule re-runs on the merged record.
func (s *PropositionService) UpdateProposition(id uint, userID uint, isAdmin bool, req models.UpdatePropositionRequest) (*models.Proposition, error) {
	proposition, err := s.GetPropositionByID(id)
	if err != nil {
		return nil, err
	}

	if proposition.UserID != userID && !isAdmin {
		return nil, errors.New("proposition does not belong to user")
	}

	if req.Date != nil {
		proposition.Date = *req.Date
	}
	if req.StartTime != nil {
		proposition.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		proposition.EndTime = *req.EndTime
	}

	if err := s.db.Save(proposition).Error; err != nil {
		return nil, err
	}

	return proposition, nil
}

func (s *PropositionService) DeleteProposition(id uint, userID uint, isAdmin bool) error {
	proposition, err := s.GetPropositionByID(id)
	if err != nil {
		return err
	}

	if proposition.UserID != userID && !isAdmin {
		return errors.New("proposition does not belong to user")
	}

	return s.db.Delete(proposition).Error
}

func (s *PropositionService) GetAllPropositions(page int, pageSize int) (*models.PaginatedPropositionsResponse, error) {
	return s.listPropositions(s.db.Model(&models.Proposition{}), page, pageSize)
}

func (s *PropositionService) GetPropositionsByUser(userID uint, page int, pageSize int) (*models.PaginatedPropositionsResponse, error) {
	return s.listPropositions(s.db.Model(&models.Proposition{}).Where("user_id = ?", userID), page, pageSize)
}

func (s *PropositionService) listPropositions(query *gorm.DB, page int, pageSize int) (*models.PaginatedPropositionsResponse, error) {
	var propositions []models.Proposition
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := query.Order("start_time DESC, end_time DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&propositions).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedPropositionsResponse{
		Data:       propositions,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// PurgeOlderThan deletes availability windows whose date fell before the
// cutoff. Called by the retention job.
func (s *PropositionService) PurgeOlderThan(cutoff time.Time) (int64, error) {
	result := s.db.Where("date < ?", cutoff.Format("2006-01-02")).Delete(&models.Proposition{})
	return result.RowsAffected, result.Error
}
