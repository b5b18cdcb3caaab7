package services

import (
	"errors"

	"scheduler/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{
		db: db,
	}
}

// CreateMatch inserts the match and its appointment inside one transaction,
// so a match is never observable without its calendar slot.
func (s *MatchService) CreateMatch(req models.CreateMatchRequest) (*models.Match, error) {
	if req.OpponentID != nil {
		var opponent models.Team
		if err := s.db.First(&opponent, *req.OpponentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("opponent team not found")
			}
			return nil, err
		}
	}

	match := models.Match{
		Title:            req.Title,
		OpponentID:       req.OpponentID,
		ScoreOpponent:    req.ScoreOpponent,
		Score:            req.Score,
		DefaultMatchDate: req.DefaultMatchDate,
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&match).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := ensureAppointment(tx, match.ID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetMatchByID(match.ID)
}

// ensureAppointment creates the match's appointment if none exists yet.
// The conditional insert plus the unique index on match_id keep the
// one-appointment-per-match invariant even under concurrent saves.
func ensureAppointment(tx *gorm.DB, matchID uint) error {
	appointment := models.Appointment{MatchID: matchID}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}},
		DoNothing: true,
	}).Create(&appointment).Error
}

func (s *MatchService) GetMatchByID(id uint) (*models.Match, error) {
	var match models.Match

	result := s.db.Preload("Opponent").Preload("Appointment").First(&match, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("match not found")
		}
		return nil, result.Error
	}

	return &match, nil
}

func (s *MatchService) UpdateMatch(id uint, req models.UpdateMatchRequest) (*models.Match, error) {
	var match models.Match
	if err := s.db.First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("match not found")
		}
		return nil, err
	}

	if req.Title != nil {
		match.Title = *req.Title
	}
	if req.OpponentID != nil {
		if *req.OpponentID == 0 {
			// Zero clears the opponent; the match keeps running without one
			match.OpponentID = nil
		} else {
			var opponent models.Team
			if err := s.db.First(&opponent, *req.OpponentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, errors.New("opponent team not found")
				}
				return nil, err
			}
			match.OpponentID = req.OpponentID
		}
	}
	if req.ScoreOpponent != nil {
		match.ScoreOpponent = req.ScoreOpponent
	}
	if req.Score != nil {
		match.Score = req.Score
	}
	if req.DefaultMatchDate != nil {
		match.DefaultMatchDate = *req.DefaultMatchDate
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Save(&match).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// Repair path: a match saved through any route always ends up with
	// exactly one appointment.
	if err := ensureAppointment(tx, match.ID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetMatchByID(match.ID)
}

// DeleteMatch removes the match; the database cascades the deletion to its
// appointment.
func (s *MatchService) DeleteMatch(id uint) error {
	result := s.db.Delete(&models.Match{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("match not found")
	}

	return nil
}

func (s *MatchService) GetAllMatches(page int, pageSize int) (*models.PaginatedMatchesResponse, error) {
	var matches []models.Match
	var total int64

	if err := s.db.Model(&models.Match{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := s.db.Preload("Opponent").Preload("Appointment").
		Order("title DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&matches).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedMatchesResponse{
		Data:       matches,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
